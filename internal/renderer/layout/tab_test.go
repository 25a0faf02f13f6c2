package layout

import "testing"

func TestNextTabStop(t *testing.T) {
	te := NewTabExpander(4)
	tests := []struct {
		col  int
		want int
	}{
		{0, 4},
		{1, 4},
		{3, 4},
		{4, 8},
		{7, 8},
	}
	for _, tt := range tests {
		if got := te.NextTabStop(tt.col); got != tt.want {
			t.Errorf("NextTabStop(%d) = %d, want %d", tt.col, got, tt.want)
		}
	}
}

func TestTabStopOffset(t *testing.T) {
	te := NewTabExpander(4)
	tests := []struct {
		col  int
		want int
	}{
		{0, 4},
		{1, 3},
		{3, 1},
		{4, 4},
	}
	for _, tt := range tests {
		if got := te.TabStopOffset(tt.col); got != tt.want {
			t.Errorf("TabStopOffset(%d) = %d, want %d", tt.col, got, tt.want)
		}
	}
}

func TestPrevTabStop(t *testing.T) {
	te := NewTabExpander(4)
	tests := []struct {
		col  int
		want int
	}{
		{0, 0},
		{3, 0},
		{4, 0},
		{5, 4},
		{8, 4},
		{9, 8},
	}
	for _, tt := range tests {
		if got := te.PrevTabStop(tt.col); got != tt.want {
			t.Errorf("PrevTabStop(%d) = %d, want %d", tt.col, got, tt.want)
		}
	}
}

func TestInvalidTabWidthDefaults(t *testing.T) {
	te := NewTabExpander(0)
	if te.TabWidth() != 4 {
		t.Errorf("expected default tab width 4, got %d", te.TabWidth())
	}
	te.SetTabWidth(-2)
	if te.TabWidth() != 1 {
		t.Errorf("SetTabWidth should floor at 1, got %d", te.TabWidth())
	}
}
