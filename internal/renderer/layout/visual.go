package layout

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// LineSource supplies line text for visual measurement. The buffer
// package's Buffer satisfies it.
type LineSource interface {
	// LineText returns the text of a line without its newline.
	// Out-of-range lines return "".
	LineText(line int) string
}

// VisualMap converts between logical columns (grapheme cluster indexes)
// and visual columns (screen cells). Tabs span to the next tab stop,
// wide characters span two cells, and logical columns past the end of a
// line extrapolate into virtual space one cell per column.
type VisualMap struct {
	src  LineSource
	tabs *TabExpander
}

// NewVisualMap creates a visual map over the given line source.
func NewVisualMap(src LineSource, tabs *TabExpander) *VisualMap {
	if tabs == nil {
		tabs = DefaultTabExpander()
	}
	return &VisualMap{src: src, tabs: tabs}
}

// Tabs returns the underlying tab expander.
func (m *VisualMap) Tabs() *TabExpander {
	return m.tabs
}

// cellWidth returns the number of cells a cluster occupies when its
// first cell is at the given visual column. Zero-width clusters still
// occupy one cell so every logical column is addressable by the caret.
func (m *VisualMap) cellWidth(cluster string, visual int) int {
	if cluster == "\t" {
		return m.tabs.TabStopOffset(visual)
	}
	w := runewidth.StringWidth(cluster)
	if w < 1 {
		w = 1
	}
	return w
}

// VisualColumn returns the visual column at which the given logical
// column renders on the line. Logical columns past the end of the line
// map to virtual columns one cell wide.
func (m *VisualMap) VisualColumn(line, logicalColumn int) int {
	if logicalColumn <= 0 {
		return 0
	}
	rest := m.src.LineText(line)
	state := -1
	col := 0
	visual := 0
	for col < logicalColumn && len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		visual += m.cellWidth(cluster, visual)
		col++
	}
	if col < logicalColumn {
		// Virtual space past the line end.
		visual += logicalColumn - col
	}
	return visual
}

// LogicalColumn returns the logical column whose rendering covers the
// given visual column. A visual column inside a multi-cell cluster maps
// to that cluster's logical column; visual columns past the end of the
// line extend into virtual space.
func (m *VisualMap) LogicalColumn(line, visualColumn int) int {
	if visualColumn <= 0 {
		return 0
	}
	rest := m.src.LineText(line)
	state := -1
	col := 0
	visual := 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w := m.cellWidth(cluster, visual)
		if visualColumn < visual+w {
			return col
		}
		visual += w
		col++
	}
	return col + (visualColumn - visual)
}

// NextVirtualColumn returns the next addressable caret column after the
// given logical column. Within the line this is the next cluster
// boundary; past the end it advances one virtual cell.
func (m *VisualMap) NextVirtualColumn(line, logicalColumn int) int {
	if logicalColumn < 0 {
		return 0
	}
	return logicalColumn + 1
}

// LineWidth returns the total visual width of a line.
func (m *VisualMap) LineWidth(line int) int {
	rest := m.src.LineText(line)
	state := -1
	visual := 0
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		visual += m.cellWidth(cluster, visual)
	}
	return visual
}

// ExpandLine returns a line's text with tabs replaced by spaces,
// suitable for cell-per-column rendering.
func (m *VisualMap) ExpandLine(line int) string {
	rest := m.src.LineText(line)
	state := -1
	visual := 0
	out := make([]byte, 0, len(rest))
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if cluster == "\t" {
			n := m.tabs.TabStopOffset(visual)
			for i := 0; i < n; i++ {
				out = append(out, ' ')
			}
			visual += n
			continue
		}
		out = append(out, cluster...)
		visual += m.cellWidth(cluster, visual)
	}
	return string(out)
}
