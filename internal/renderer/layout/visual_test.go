package layout

import "testing"

// sliceSource serves lines from a string slice for tests.
type sliceSource []string

func (s sliceSource) LineText(line int) string {
	if line < 0 || line >= len(s) {
		return ""
	}
	return s[line]
}

func newTestMap(lines ...string) *VisualMap {
	return NewVisualMap(sliceSource(lines), NewTabExpander(4))
}

func TestVisualColumnPlainText(t *testing.T) {
	m := newTestMap("hello")
	for col := 0; col <= 5; col++ {
		if got := m.VisualColumn(0, col); got != col {
			t.Errorf("VisualColumn(0, %d) = %d, want %d", col, got, col)
		}
	}
}

func TestVisualColumnTab(t *testing.T) {
	m := newTestMap("\tab")
	tests := []struct {
		col  int
		want int
	}{
		{0, 0},
		{1, 4}, // tab spans cells 0-3
		{2, 5},
		{3, 6},
	}
	for _, tt := range tests {
		if got := m.VisualColumn(0, tt.col); got != tt.want {
			t.Errorf("VisualColumn(0, %d) = %d, want %d", tt.col, got, tt.want)
		}
	}
}

func TestVisualColumnMidLineTab(t *testing.T) {
	// "ab\tc": the tab starts at cell 2 and spans to the stop at 4.
	m := newTestMap("ab\tc")
	tests := []struct {
		col  int
		want int
	}{
		{2, 2},
		{3, 4},
		{4, 5},
	}
	for _, tt := range tests {
		if got := m.VisualColumn(0, tt.col); got != tt.want {
			t.Errorf("VisualColumn(0, %d) = %d, want %d", tt.col, got, tt.want)
		}
	}
}

func TestVisualColumnVirtualSpace(t *testing.T) {
	m := newTestMap("ab")
	if got := m.VisualColumn(0, 7); got != 7 {
		t.Errorf("VisualColumn(0, 7) = %d, want 7", got)
	}
}

func TestVisualColumnWideRunes(t *testing.T) {
	// CJK characters occupy two cells each.
	m := newTestMap("你好x")
	tests := []struct {
		col  int
		want int
	}{
		{0, 0},
		{1, 2},
		{2, 4},
		{3, 5},
	}
	for _, tt := range tests {
		if got := m.VisualColumn(0, tt.col); got != tt.want {
			t.Errorf("VisualColumn(0, %d) = %d, want %d", tt.col, got, tt.want)
		}
	}
}

func TestVisualColumnGraphemeCluster(t *testing.T) {
	// e + combining acute is a single one-cell cluster.
	m := newTestMap("éx")
	if got := m.VisualColumn(0, 1); got != 1 {
		t.Errorf("VisualColumn(0, 1) = %d, want 1", got)
	}
	if got := m.VisualColumn(0, 2); got != 2 {
		t.Errorf("VisualColumn(0, 2) = %d, want 2", got)
	}
}

func TestLogicalColumnPlainText(t *testing.T) {
	m := newTestMap("hello")
	for vis := 0; vis <= 5; vis++ {
		if got := m.LogicalColumn(0, vis); got != vis {
			t.Errorf("LogicalColumn(0, %d) = %d, want %d", vis, got, vis)
		}
	}
}

func TestLogicalColumnInsideTabSpan(t *testing.T) {
	// Cells 0-3 belong to the tab; cell 4 is 'a'.
	m := newTestMap("\tab")
	tests := []struct {
		vis  int
		want int
	}{
		{0, 0},
		{1, 0},
		{3, 0},
		{4, 1},
		{5, 2},
	}
	for _, tt := range tests {
		if got := m.LogicalColumn(0, tt.vis); got != tt.want {
			t.Errorf("LogicalColumn(0, %d) = %d, want %d", tt.vis, got, tt.want)
		}
	}
}

func TestLogicalColumnInsideWideRune(t *testing.T) {
	m := newTestMap("你x")
	if got := m.LogicalColumn(0, 1); got != 0 {
		t.Errorf("LogicalColumn(0, 1) = %d, want 0 (inside wide rune)", got)
	}
	if got := m.LogicalColumn(0, 2); got != 1 {
		t.Errorf("LogicalColumn(0, 2) = %d, want 1", got)
	}
}

func TestLogicalColumnVirtualSpace(t *testing.T) {
	m := newTestMap("abc")
	if got := m.LogicalColumn(0, 8); got != 8 {
		t.Errorf("LogicalColumn(0, 8) = %d, want 8", got)
	}
}

func TestLogicalVisualRoundTrip(t *testing.T) {
	m := newTestMap("ab\tcd\t你 éf")
	for col := 0; col < 12; col++ {
		vis := m.VisualColumn(0, col)
		if got := m.LogicalColumn(0, vis); got != col {
			t.Errorf("round trip at column %d: visual %d maps back to %d", col, vis, got)
		}
	}
}

func TestNextVirtualColumn(t *testing.T) {
	m := newTestMap("abc")
	if got := m.NextVirtualColumn(0, 1); got != 2 {
		t.Errorf("NextVirtualColumn(0, 1) = %d, want 2", got)
	}
	if got := m.NextVirtualColumn(0, 5); got != 6 {
		t.Errorf("NextVirtualColumn(0, 5) = %d, want 6", got)
	}
	if got := m.NextVirtualColumn(0, -3); got != 0 {
		t.Errorf("NextVirtualColumn(0, -3) = %d, want 0", got)
	}
}

func TestLineWidth(t *testing.T) {
	m := newTestMap("\tab", "你好", "")
	tests := []struct {
		line int
		want int
	}{
		{0, 6},
		{1, 4},
		{2, 0},
		{9, 0}, // out of range
	}
	for _, tt := range tests {
		if got := m.LineWidth(tt.line); got != tt.want {
			t.Errorf("LineWidth(%d) = %d, want %d", tt.line, got, tt.want)
		}
	}
}

func TestExpandLine(t *testing.T) {
	m := newTestMap("a\tb")
	if got := m.ExpandLine(0); got != "a   b" {
		t.Errorf("ExpandLine(0) = %q, want %q", got, "a   b")
	}
}
