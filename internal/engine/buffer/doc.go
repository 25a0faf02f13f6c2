// Package buffer provides a thread-safe, line-indexed text buffer measured
// in character units. It is the concrete line index consumed by the caret
// position model.
//
// The buffer package provides:
//
//   - Thread-safe read/write access via sync.RWMutex
//   - Character-based addressing where one character is one user-perceived
//     character (a Unicode grapheme cluster) and a line break counts as a
//     single character
//   - Line lookup: start offset, editable length, and owning line for any
//     character offset
//   - Text editing with line ending normalization and revision tracking
//
// Basic usage:
//
//	buf := buffer.NewFromString("alpha\nbeta\n")
//
//	buf.LineCount()       // 3 (trailing newline opens an empty line)
//	buf.EditableLength(1) // 4
//	buf.LineForOffset(7)  // 1
//
//	buf.Insert(5, " one") // "alpha one\nbeta\n"
//
// Coordinate System:
//
// All offsets and lengths are expressed in grapheme clusters, not bytes.
// This keeps the buffer's units aligned with the caret model's logical
// columns: a combining sequence or an emoji is one character, exactly as a
// user perceives it when moving the cursor. Byte positions never escape
// this package.
//
// Thread Safety:
//
// All Buffer methods are thread-safe. Read operations acquire a read lock,
// while write operations acquire an exclusive write lock.
package buffer
