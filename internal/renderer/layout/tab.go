// Package layout converts between logical columns and visual columns for
// the caret model and the renderer, accounting for tab stops, wide
// characters, and grapheme clusters.
package layout

// TabExpander provides tab stop arithmetic.
type TabExpander struct {
	tabWidth int
}

// NewTabExpander creates a tab expander with the given tab width.
func NewTabExpander(tabWidth int) *TabExpander {
	if tabWidth < 1 {
		tabWidth = 4
	}
	return &TabExpander{tabWidth: tabWidth}
}

// DefaultTabExpander returns a tab expander with the default tab width of 4.
func DefaultTabExpander() *TabExpander {
	return NewTabExpander(4)
}

// TabWidth returns the current tab width.
func (t *TabExpander) TabWidth() int {
	return t.tabWidth
}

// SetTabWidth sets the tab width.
func (t *TabExpander) SetTabWidth(width int) {
	if width < 1 {
		width = 1
	}
	t.tabWidth = width
}

// NextTabStop returns the next tab stop column after the given column.
func (t *TabExpander) NextTabStop(col int) int {
	return col + t.tabWidth - (col % t.tabWidth)
}

// TabStopOffset returns how many cells a tab at the given column spans.
func (t *TabExpander) TabStopOffset(col int) int {
	return t.tabWidth - (col % t.tabWidth)
}

// IsTabStop returns true if the given column is a tab stop.
func (t *TabExpander) IsTabStop(col int) bool {
	return col%t.tabWidth == 0
}

// PrevTabStop returns the previous tab stop column before the given column.
// Returns 0 if already at or before the first tab stop.
func (t *TabExpander) PrevTabStop(col int) int {
	if col <= 0 {
		return 0
	}
	if col%t.tabWidth == 0 {
		return col - t.tabWidth
	}
	return (col / t.tabWidth) * t.tabWidth
}
