package caret

// LineIndex resolves lines and character offsets for the caret.
// The interface mirrors the buffer package's line lookup so concrete
// buffers satisfy it directly; the caret never stores text itself.
type LineIndex interface {
	// LineCount returns the number of lines. Always at least 1 for a
	// well-formed document.
	LineCount() int

	// LineStart returns the character offset of the start of a line.
	// Out-of-range lines return 0.
	LineStart(line int) int

	// EditableLength returns the number of characters on a line that are
	// available for caret placement, excluding the line break.
	// Out-of-range lines return 0.
	EditableLength(line int) int

	// LineForOffset returns the line owning the given character offset,
	// clamped into the valid line range.
	LineForOffset(offset int) int
}

// VisualMapper converts between logical columns (character indexes) and
// visual columns (screen cells after tab expansion and wide characters).
type VisualMapper interface {
	// VisualColumn returns the visual column at which the given logical
	// column renders. Logical columns past the end of the line map to
	// virtual columns one cell wide.
	VisualColumn(line, logicalColumn int) int

	// LogicalColumn returns the logical column whose rendering covers the
	// given visual column. A visual column inside a multi-column cluster
	// (such as a tab span) maps to that cluster's logical column; visual
	// columns past the end of the line extend into virtual space.
	LogicalColumn(line, visualColumn int) int

	// NextVirtualColumn returns the next addressable caret column after
	// the given logical column.
	NextVirtualColumn(line, logicalColumn int) int
}

// FoldRegion describes one folded-range candidate covering an offset.
// This mirrors the folding package's region type to avoid a dependency on
// the concrete fold store.
type FoldRegion struct {
	// Start is the character offset of the region's visible start.
	Start int

	// Folded reports whether the region is currently collapsed.
	Folded bool
}

// FoldIndex exposes the folding model to the caret. A caret must never
// rest strictly inside a collapsed region.
type FoldIndex interface {
	// RegionsCovering returns the regions whose span strictly contains
	// the given offset. An offset on a region boundary is not covered.
	RegionsCovering(offset int) []FoldRegion

	// EnsureUnfolded expands any collapsed region strictly containing the
	// given offset so the caret stays visible.
	EnsureUnfolded(offset int)
}
