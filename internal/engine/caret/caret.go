package caret

// Caret is the single editing cursor of a session. Line and column are
// the authoritative position; the offset is derived on demand. The zero
// value is not usable; construct with New.
type Caret struct {
	lines  LineIndex
	visual VisualMapper
	folds  FoldIndex // may be nil

	line   int
	column int

	// desiredColumn is the last user-intended visual column. It is
	// recomputed on horizontal moves and column assignment, and only
	// consumed on pure vertical moves.
	desiredColumn int

	mode               Mode
	allowBehindLineEnd bool
	visible            bool
	autoScroll         bool
	preserveSelection  bool
	detached           bool

	staleHandler func(error)

	nextListenerID    int
	positionListeners []positionListener
	modeListeners     []modeListener
}

// Option configures a Caret during construction.
type Option func(*Caret)

// WithFoldIndex attaches a folding model. Without one, fold-aware
// repositioning is a no-op.
func WithFoldIndex(fi FoldIndex) Option {
	return func(c *Caret) {
		c.folds = fi
	}
}

// WithStaleHandler installs a diagnostic callback invoked when a mutation
// is skipped because the caret's line is stale or the caret is detached.
// The default is silence; the clamped fallback behavior is unaffected
// either way.
func WithStaleHandler(fn func(error)) Option {
	return func(c *Caret) {
		c.staleHandler = fn
	}
}

// WithBehindLineEnd enables virtual positioning past the line end from
// the start.
func WithBehindLineEnd(allow bool) Option {
	return func(c *Caret) {
		c.allowBehindLineEnd = allow
	}
}

// New creates a caret at (0, 0) over the given line index and visual
// mapper.
func New(lines LineIndex, visual VisualMapper, opts ...Option) *Caret {
	c := &Caret{
		lines:      lines,
		visual:     visual,
		mode:       ModeInsert,
		visible:    true,
		autoScroll: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Accessors

// Line returns the caret's line number.
func (c *Caret) Line() int {
	return c.line
}

// Column returns the caret's logical column.
func (c *Caret) Column() int {
	return c.column
}

// DesiredColumn returns the stored visual column used to restore the
// horizontal position after vertical moves.
func (c *Caret) DesiredColumn() int {
	return c.desiredColumn
}

// Offset returns the caret's absolute character offset, derived from the
// line and column. The column contribution is clamped to the line's
// editable length even when behind-line-end positioning is allowed. A
// stale line contributes nothing.
func (c *Caret) Offset() int {
	return c.offsetFor(c.line, c.column)
}

func (c *Caret) offsetFor(line, column int) int {
	start := 0
	length := 0
	if line >= 0 && line < c.lines.LineCount() {
		start = c.lines.LineStart(line)
		length = c.lines.EditableLength(line)
	}
	if column > length {
		column = length
	}
	if column < 0 {
		column = 0
	}
	return start + column
}

// Location returns the caret's position in all three coordinate spaces.
func (c *Caret) Location() Position {
	return Position{Line: c.line, Column: c.column, Offset: c.Offset()}
}

// IsDetached reports whether the owning session has ended.
func (c *Caret) IsDetached() bool {
	return c.detached
}

// Detach marks the caret inert. Subsequent mutations are ignored.
// Called by the owning session when it ends.
func (c *Caret) Detach() {
	c.detached = true
}

// Mutating operations

// SetLine moves the caret to the given line, preserving the desired
// visual column and re-deriving the logical column from it. The line is
// not range-checked here; out-of-range lines leave the column untouched
// and are repaired by CheckCaretPosition.
func (c *Caret) SetLine(line int) {
	if c.detached {
		c.stale(ErrDetached)
		return
	}
	old := c.Location()
	c.line = line
	c.restoreColumn()
	c.settle(old)
}

// SetColumn moves the caret to the given logical column on its current
// line, clamping per the behind-line-end policy and recomputing the
// desired visual column.
func (c *Caret) SetColumn(column int) {
	if c.detached {
		c.stale(ErrDetached)
		return
	}
	old := c.Location()
	c.column = c.applyColumnPolicy(column)
	c.updateDesiredColumn()
	c.settle(old)
}

// SetLocation moves the caret to (line, column) as one atomic update:
// the column is clamped per policy, the desired visual column is
// recomputed, and at most one notification fires.
func (c *Caret) SetLocation(line, column int) {
	if c.detached {
		c.stale(ErrDetached)
		return
	}
	old := c.Location()
	c.line = line
	c.column = c.applyColumnPolicy(column)
	c.updateDesiredColumn()
	c.settle(old)
}

// SetOffset moves the caret to the location owning the given character
// offset. Equivalent to SetLocation on the unique (line, column) pair
// the offset maps to; the desired visual column is recomputed.
func (c *Caret) SetOffset(offset int) {
	if c.detached {
		c.stale(ErrDetached)
		return
	}
	old := c.Location()
	c.resolveOffset(offset)
	c.updateDesiredColumn()
	c.settle(old)
}

// SetToOffsetWithDesiredColumn moves the caret to the location owning
// the given offset but, unlike SetOffset, keeps the stored desired
// column and reconciles the logical column against it. This lands at a
// known offset while preserving sticky horizontal position, e.g. when
// repositioning after a document edit.
func (c *Caret) SetToOffsetWithDesiredColumn(offset int) {
	if c.detached {
		c.stale(ErrDetached)
		return
	}
	old := c.Location()
	c.resolveOffset(offset)
	c.restoreColumn()
	c.settle(old)
}

// SetToDesiredColumn overwrites the desired visual column and re-derives
// the logical column from it on the current line. Used by pure vertical
// movement, which keeps the line-independent desired column stable while
// the line changes.
func (c *Caret) SetToDesiredColumn(desiredColumn int) {
	if c.detached {
		c.stale(ErrDetached)
		return
	}
	if desiredColumn < 0 {
		desiredColumn = 0
	}
	old := c.Location()
	c.desiredColumn = desiredColumn
	c.restoreColumn()
	c.settle(old)
}

// CheckCaretPosition clamps the caret back into the document after an
// external structural change (for example a line deletion). Idempotent.
func (c *Caret) CheckCaretPosition() {
	if c.detached {
		return
	}
	old := c.Location()
	count := c.lines.LineCount()
	if c.line >= count {
		c.line = count - 1
	}
	if c.line < 0 {
		c.line = 0
	}
	if !c.allowBehindLineEnd {
		if length := c.lines.EditableLength(c.line); c.column > length {
			c.column = length
		}
	}
	if c.column < 0 {
		c.column = 0
	}
	c.settle(old)
}

// MoveCaretBeforeFoldings snaps the caret out of collapsed fold regions:
// if the current offset lies strictly inside folded ranges, the caret
// moves to the smallest of their start offsets. The owning session calls
// this whenever a fold operation completes.
func (c *Caret) MoveCaretBeforeFoldings() {
	if c.detached || c.folds == nil {
		return
	}
	offset := c.Offset()
	target := offset
	for _, r := range c.folds.RegionsCovering(offset) {
		if r.Folded && r.Start < target {
			target = r.Start
		}
	}
	if target != offset {
		c.SetOffset(target)
	}
}

// Flags

// Visible reports whether the caret should be rendered.
func (c *Caret) Visible() bool {
	return c.visible
}

// SetVisible sets caret visibility. Position semantics are unaffected.
func (c *Caret) SetVisible(v bool) {
	c.visible = v
}

// AutoScrollToCaret reports whether views should scroll to keep the
// caret on screen.
func (c *Caret) AutoScrollToCaret() bool {
	return c.autoScroll
}

// SetAutoScrollToCaret sets the auto-scroll flag.
func (c *Caret) SetAutoScrollToCaret(v bool) {
	c.autoScroll = v
}

// PreserveSelection reports whether moves should keep an existing
// selection.
func (c *Caret) PreserveSelection() bool {
	return c.preserveSelection
}

// SetPreserveSelection sets the preserve-selection flag.
func (c *Caret) SetPreserveSelection(v bool) {
	c.preserveSelection = v
}

// AllowCaretBehindLineEnd reports whether the column may exceed the
// line's editable length.
func (c *Caret) AllowCaretBehindLineEnd() bool {
	return c.allowBehindLineEnd
}

// SetAllowCaretBehindLineEnd sets the behind-line-end policy. Disabling
// it re-clamps the caret immediately.
func (c *Caret) SetAllowCaretBehindLineEnd(allow bool) {
	if c.detached {
		return
	}
	c.allowBehindLineEnd = allow
	if !allow {
		c.CheckCaretPosition()
	}
}

// Internal reconciliation

// lineValid reports whether the caret's current line exists.
func (c *Caret) lineValid(line int) bool {
	return line >= 0 && line < c.lines.LineCount()
}

// resolveOffset assigns the (line, column) pair owning the given offset,
// with the column clamped per the behind-line-end policy.
func (c *Caret) resolveOffset(offset int) {
	if offset < 0 {
		offset = 0
	}
	line := c.lines.LineForOffset(offset)
	c.line = line
	c.column = c.applyColumnPolicy(offset - c.lines.LineStart(line))
}

// applyColumnPolicy clamps a prospective column per the behind-line-end
// policy. Negative columns always clamp to 0; the upper bound applies
// only when behind-line-end positioning is disabled and the line exists.
func (c *Caret) applyColumnPolicy(column int) int {
	if column < 0 {
		return 0
	}
	if c.allowBehindLineEnd || !c.lineValid(c.line) {
		return column
	}
	if length := c.lines.EditableLength(c.line); column > length {
		return length
	}
	return column
}

// updateDesiredColumn derives the desired visual column from the current
// logical column. No-op when the line is stale.
func (c *Caret) updateDesiredColumn() {
	if !c.lineValid(c.line) {
		c.stale(ErrStaleLine)
		return
	}
	column := c.column
	if !c.allowBehindLineEnd {
		if length := c.lines.EditableLength(c.line); column > length {
			column = length
		}
	}
	if column < 0 {
		column = 0
	}
	c.desiredColumn = c.visual.VisualColumn(c.line, column)
}

// restoreColumn re-derives the logical column from the stored desired
// visual column. This is the two-phase reconciliation that produces
// sticky vertical movement. The two phases are asymmetric:
//
// Undershoot: when the desired column falls strictly inside a
// multi-column cluster (a tab spanning several cells), the naive logical
// column renders before the desired column. Advance to the next virtual
// column instead of silently losing the deficit.
//
// Overshoot: when the derived column lands past the line's editable
// length, clamp it — unless behind-line-end positioning is allowed, in
// which case the mapper's virtual columns already place the caret past
// the end at the desired cell.
//
// No-op when the line is stale.
func (c *Caret) restoreColumn() {
	if !c.lineValid(c.line) {
		c.stale(ErrStaleLine)
		return
	}
	column := c.visual.LogicalColumn(c.line, c.desiredColumn)
	if c.visual.VisualColumn(c.line, column) < c.desiredColumn {
		column = c.visual.NextVirtualColumn(c.line, column)
	}
	if !c.allowBehindLineEnd {
		if length := c.lines.EditableLength(c.line); column > length {
			column = length
		}
	}
	if column < 0 {
		column = 0
	}
	c.column = column
}

// settle finishes a public mutation: if the location changed, the fold
// index is asked to keep the new offset visible and exactly one
// position-changed notification fires.
func (c *Caret) settle(old Position) {
	now := c.Location()
	if now == old {
		return
	}
	if c.folds != nil {
		c.folds.EnsureUnfolded(now.Offset)
	}
	c.notifyPosition(PositionChange{Old: old, New: now})
}

// stale reports a skipped computation to the diagnostic handler, if any.
func (c *Caret) stale(err error) {
	if c.staleHandler != nil {
		c.staleHandler(err)
	}
}
