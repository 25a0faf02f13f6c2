package buffer

import (
	"errors"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/rivo/uniseg"
)

// Errors returned by buffer operations.
var (
	ErrOffsetOutOfRange = errors.New("offset out of range")
	ErrRangeInvalid     = errors.New("invalid range")
)

// LineEnding specifies the line ending style of external text.
type LineEnding uint8

const (
	LineEndingLF   LineEnding = iota // Unix: \n
	LineEndingCRLF                   // Windows: \r\n
	LineEndingCR                     // Old Mac: \r
)

// String returns the string representation of the line ending.
func (le LineEnding) String() string {
	switch le {
	case LineEndingLF:
		return "\\n"
	case LineEndingCRLF:
		return "\\r\\n"
	case LineEndingCR:
		return "\\r"
	default:
		return "\\n"
	}
}

// Sequence returns the actual line ending characters.
func (le LineEnding) Sequence() string {
	switch le {
	case LineEndingLF:
		return "\n"
	case LineEndingCRLF:
		return "\r\n"
	case LineEndingCR:
		return "\r"
	default:
		return "\n"
	}
}

// lineSpan describes one line of the buffer text.
// byteStart and byteEnd delimit the line's text without its newline.
type lineSpan struct {
	byteStart int
	byteEnd   int
	cells     int // editable length in grapheme clusters
}

// Buffer is a line-indexed text buffer addressed in character units.
// All methods are thread-safe.
type Buffer struct {
	mu         sync.RWMutex
	text       string // normalized to LF internally
	spans      []lineSpan
	starts     []int // character offset of each line start; starts[0] == 0
	length     int   // total length in characters
	revisionID RevisionID
	lineEnding LineEnding
}

// New creates a new empty buffer. An empty buffer has one empty line.
func New(opts ...Option) *Buffer {
	b := &Buffer{
		revisionID: NewRevisionID(),
		lineEnding: LineEndingLF,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.reindex()
	return b
}

// NewFromString creates a buffer with initial content.
func NewFromString(s string, opts ...Option) *Buffer {
	b := New(opts...)
	b.text = normalizeLineEndings(s)
	b.reindex()
	return b
}

// NewFromReader creates a buffer from an io.Reader.
func NewFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewFromString(string(data), opts...), nil
}

// normalizeLineEndings converts CRLF and CR sequences to LF.
// The buffer always stores LF internally; the configured line ending
// applies only when exporting text.
func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}

// clusterCount returns the number of grapheme clusters in s.
func clusterCount(s string) int {
	return uniseg.GraphemeClusterCount(s)
}

// reindex rebuilds the line spans and character start offsets from text.
// Caller must hold the write lock (or have exclusive access during init).
func (b *Buffer) reindex() {
	b.spans = b.spans[:0]
	b.starts = b.starts[:0]

	byteStart := 0
	charStart := 0
	for {
		rel := strings.IndexByte(b.text[byteStart:], '\n')
		var byteEnd int
		if rel < 0 {
			byteEnd = len(b.text)
		} else {
			byteEnd = byteStart + rel
		}
		cells := clusterCount(b.text[byteStart:byteEnd])
		b.spans = append(b.spans, lineSpan{byteStart: byteStart, byteEnd: byteEnd, cells: cells})
		b.starts = append(b.starts, charStart)
		if rel < 0 {
			b.length = charStart + cells
			return
		}
		byteStart = byteEnd + 1 // skip the newline byte
		charStart += cells + 1  // a line break is one character
	}
}

// Read Operations

// Text returns the full buffer content using the configured line ending.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.lineEnding == LineEndingLF {
		return b.text
	}
	return strings.ReplaceAll(b.text, "\n", b.lineEnding.Sequence())
}

// Len returns the total buffer length in characters.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.length
}

// LineCount returns the number of lines. Always at least 1.
func (b *Buffer) LineCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.spans)
}

// LineText returns the text of a specific line (without newline).
// Returns "" if the line is out of range.
func (b *Buffer) LineText(line int) string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.spans) {
		return ""
	}
	sp := b.spans[line]
	return b.text[sp.byteStart:sp.byteEnd]
}

// EditableLength returns the length of a line in characters, excluding
// its newline. Returns 0 if the line is out of range.
func (b *Buffer) EditableLength(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.spans) {
		return 0
	}
	return b.spans[line].cells
}

// LineStart returns the character offset of the start of a line.
// Returns 0 if the line is out of range.
func (b *Buffer) LineStart(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.starts) {
		return 0
	}
	return b.starts[line]
}

// LineEnd returns the character offset just past the last editable
// character of a line (before its newline).
func (b *Buffer) LineEnd(line int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if line < 0 || line >= len(b.spans) {
		return 0
	}
	return b.starts[line] + b.spans[line].cells
}

// LineForOffset returns the line owning the given character offset.
// Offsets are clamped into the buffer range, so the result is always a
// valid line number.
func (b *Buffer) LineForOffset(offset int) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineForOffsetLocked(offset)
}

func (b *Buffer) lineForOffsetLocked(offset int) int {
	if offset <= 0 {
		return 0
	}
	if offset >= b.length {
		return len(b.starts) - 1
	}
	// First line whose start is beyond offset, minus one.
	i := sort.SearchInts(b.starts, offset+1)
	return i - 1
}

// IsEmpty returns true if the buffer has no content.
func (b *Buffer) IsEmpty() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.text) == 0
}

// RevisionID returns the current revision ID.
func (b *Buffer) RevisionID() RevisionID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.revisionID
}

// LineEnding returns the buffer's line ending style.
func (b *Buffer) LineEnding() LineEnding {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lineEnding
}

// byteForOffset converts a character offset to a byte index into text.
// Caller must hold at least the read lock. Offset must be in [0, length].
func (b *Buffer) byteForOffset(offset int) int {
	line := b.lineForOffsetLocked(offset)
	sp := b.spans[line]
	col := offset - b.starts[line]
	if col >= sp.cells {
		// At the end of the line's editable text.
		return sp.byteEnd
	}
	rest := b.text[sp.byteStart:sp.byteEnd]
	idx := sp.byteStart
	state := -1
	for i := 0; i < col; i++ {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		idx += len(cluster)
	}
	return idx
}

// Write Operations

// Insert inserts text at the given character offset.
// Returns the character offset just past the inserted text.
func (b *Buffer) Insert(offset int, text string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if offset < 0 || offset > b.length {
		return 0, ErrOffsetOutOfRange
	}

	text = normalizeLineEndings(text)
	bp := b.byteForOffset(offset)
	b.text = b.text[:bp] + text + b.text[bp:]
	b.reindex()
	b.revisionID = NewRevisionID()

	return offset + clusterCount(text), nil
}

// Delete removes text in the given character range [start, end).
func (b *Buffer) Delete(start, end int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if start < 0 || start > end || end > b.length {
		return ErrRangeInvalid
	}

	bs := b.byteForOffset(start)
	be := b.byteForOffset(end)
	b.text = b.text[:bs] + b.text[be:]
	b.reindex()
	b.revisionID = NewRevisionID()

	return nil
}

// Replace replaces text in the given character range with new text.
// Returns the character offset just past the replacement text.
func (b *Buffer) Replace(start, end int, text string) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if start < 0 || start > end || end > b.length {
		return 0, ErrRangeInvalid
	}

	text = normalizeLineEndings(text)
	bs := b.byteForOffset(start)
	be := b.byteForOffset(end)
	b.text = b.text[:bs] + text + b.text[be:]
	b.reindex()
	b.revisionID = NewRevisionID()

	return start + clusterCount(text), nil
}
