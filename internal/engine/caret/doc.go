// Package caret provides the caret position model for text editing.
//
// The caret package tracks a single editing cursor and keeps its location
// consistent across three coordinate spaces:
//
//   - Absolute character offset into the buffer
//   - (line, logical column) pairs, where a logical column is a character
//     index within the line
//   - Visual columns, accounting for tab expansion and wide characters
//
// Position Model:
//
// Line and column are the authoritative state; the offset is always
// derived as LineStart(line) + min(column, EditableLength(line)). The
// column is clamped into the line's editable range unless behind-line-end
// positioning is enabled, in which case it may exceed the line length and
// represent a virtual position past the visible text. The derived offset
// is clamped either way.
//
// Desired Column:
//
// The caret remembers the last user-intended visual column. Horizontal
// moves and direct column assignment recompute it; pure vertical moves
// only consume it, restoring the horizontal position when the caret
// passes through shorter lines. The restore step rounds forward when the
// stored visual column falls inside a multi-column cluster such as a tab,
// and clamps when it falls past the end of a line.
//
// Collaborators:
//
// The caret owns no text and renders nothing. It consumes three
// interfaces: LineIndex (line lookup), VisualMapper (logical/visual
// column conversion), and an optional FoldIndex (collapsed ranges). The
// concrete implementations live in the buffer, layout, and folding
// packages.
//
// Notifications:
//
// Observers register callbacks for position and mode changes. Delivery is
// synchronous, at most once per public mutating call, and carries the
// prior location. Errors are never raised for out-of-range positions; the
// caret clamps silently so it always stays renderable.
//
// Thread Safety:
//
// A Caret is owned by a single editing session and performs no locking.
// The owner serializes all access.
package caret
