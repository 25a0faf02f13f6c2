// Package session owns one editing session: it wires a buffer, a fold
// index, a visual map, and the caret together, and keeps the caret
// consistent across document edits and fold operations.
package session

import (
	"errors"
	"fmt"

	"github.com/dshills/caretkit/internal/config"
	"github.com/dshills/caretkit/internal/engine/buffer"
	"github.com/dshills/caretkit/internal/engine/caret"
	"github.com/dshills/caretkit/internal/engine/folding"
	"github.com/dshills/caretkit/internal/renderer/layout"
)

// Session is the single owner of a caret and its collaborators. All
// methods must be called from the goroutine that owns the session.
type Session struct {
	buf    *buffer.Buffer
	folds  *folding.Index
	visual *layout.VisualMap
	crt    *caret.Caret
	closed bool
}

// foldAdapter narrows the folding index to the caret's FoldIndex
// interface.
type foldAdapter struct {
	idx *folding.Index
}

func (a foldAdapter) RegionsCovering(offset int) []caret.FoldRegion {
	covering := a.idx.Covering(offset)
	if len(covering) == 0 {
		return nil
	}
	out := make([]caret.FoldRegion, len(covering))
	for i, r := range covering {
		out[i] = caret.FoldRegion{Start: r.Start, Folded: r.Folded}
	}
	return out
}

func (a foldAdapter) EnsureUnfolded(offset int) {
	a.idx.EnsureUnfolded(offset)
}

// New creates a session over the given buffer, configured per cfg.
func New(buf *buffer.Buffer, cfg config.Config, opts ...caret.Option) *Session {
	folds := folding.NewIndex()
	visual := layout.NewVisualMap(buf, layout.NewTabExpander(cfg.Editor.TabWidth))

	caretOpts := []caret.Option{
		caret.WithFoldIndex(foldAdapter{idx: folds}),
		caret.WithBehindLineEnd(cfg.Caret.AllowBehindLineEnd),
	}
	caretOpts = append(caretOpts, opts...)

	crt := caret.New(buf, visual, caretOpts...)
	crt.SetMode(caret.ModeFromString(cfg.Caret.Style))
	crt.SetAutoScrollToCaret(cfg.Caret.AutoScroll)

	return &Session{
		buf:    buf,
		folds:  folds,
		visual: visual,
		crt:    crt,
	}
}

// Buffer returns the session's buffer.
func (s *Session) Buffer() *buffer.Buffer {
	return s.buf
}

// Caret returns the session's caret.
func (s *Session) Caret() *caret.Caret {
	return s.crt
}

// Folds returns the session's fold index.
func (s *Session) Folds() *folding.Index {
	return s.folds
}

// VisualMap returns the session's visual-column mapper.
func (s *Session) VisualMap() *layout.VisualMap {
	return s.visual
}

// IsClosed reports whether the session has ended.
func (s *Session) IsClosed() bool {
	return s.closed
}

// Close ends the session and detaches the caret. Further edits fail and
// further caret mutations are ignored.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.crt.Detach()
}

// ErrSessionClosed is returned by edits on a closed session.
var ErrSessionClosed = errors.New("session is closed")

// Insert inserts text at the caret and places the caret after it.
func (s *Session) Insert(text string) error {
	if s.closed {
		return ErrSessionClosed
	}
	end, err := s.buf.Insert(s.crt.Offset(), text)
	if err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	s.crt.SetOffset(end)
	return nil
}

// DeleteRange deletes [start, end) and places the caret at the start of
// the deleted range.
func (s *Session) DeleteRange(start, end int) error {
	if s.closed {
		return ErrSessionClosed
	}
	if err := s.buf.Delete(start, end); err != nil {
		return fmt.Errorf("delete: %w", err)
	}
	// SetOffset re-resolves against the shrunk document, so a single
	// caret mutation both repositions and repairs.
	s.crt.SetOffset(start)
	return nil
}

// DeleteBackward deletes the character before the caret.
func (s *Session) DeleteBackward() error {
	offset := s.crt.Offset()
	if offset == 0 {
		return nil
	}
	return s.DeleteRange(offset-1, offset)
}

// DeleteForward deletes the character at the caret.
func (s *Session) DeleteForward() error {
	offset := s.crt.Offset()
	if offset >= s.buf.Len() {
		return nil
	}
	return s.DeleteRange(offset, offset+1)
}

// Fold collapses [start, end) and snaps the caret out of it if needed.
func (s *Session) Fold(start, end int) error {
	if s.closed {
		return ErrSessionClosed
	}
	if err := s.folds.Fold(start, end); err != nil {
		return fmt.Errorf("fold: %w", err)
	}
	s.crt.MoveCaretBeforeFoldings()
	return nil
}

// FoldLines collapses the lines [first, last] as one region spanning
// from the end of first's text to the end of last.
func (s *Session) FoldLines(first, last int) error {
	if s.closed {
		return ErrSessionClosed
	}
	count := s.buf.LineCount()
	if first < 0 || last < first || last >= count {
		return fmt.Errorf("fold lines %d-%d: %w", first, last, folding.ErrRegionInvalid)
	}
	start := s.buf.LineEnd(first)
	end := s.buf.LineEnd(last)
	if start >= end {
		return fmt.Errorf("fold lines %d-%d: %w", first, last, folding.ErrRegionInvalid)
	}
	return s.Fold(start, end)
}

// Unfold expands the region [start, end).
func (s *Session) Unfold(start, end int) {
	s.folds.Unfold(start, end)
}

// UnfoldAll expands every region.
func (s *Session) UnfoldAll() {
	s.folds.UnfoldAll()
}
