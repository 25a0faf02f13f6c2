package caret

import "testing"

func TestMoveDownAndUp(t *testing.T) {
	c, _ := newTestCaret("abcdefghij\nxyz\n0123456789")
	c.SetLocation(0, 8)
	c.MoveDown(1)
	c.MoveDown(1)
	c.MoveUp(1)
	c.MoveUp(1)
	if got := c.Column(); got != 8 {
		t.Errorf("Column = %d, want 8 after down-down-up-up", got)
	}
}

func TestMoveDownClampsAtLastLine(t *testing.T) {
	c, _ := newTestCaret("ab\ncd")
	c.MoveDown(10)
	if got := c.Line(); got != 1 {
		t.Errorf("Line = %d, want 1", got)
	}
	c.MoveDown(1)
	if got := c.Line(); got != 1 {
		t.Errorf("Line = %d, want 1 (already at bottom)", got)
	}
}

func TestMoveUpClampsAtFirstLine(t *testing.T) {
	c, _ := newTestCaret("ab\ncd")
	c.SetLine(1)
	c.MoveUp(10)
	if got := c.Line(); got != 0 {
		t.Errorf("Line = %d, want 0", got)
	}
}

func TestMoveRightWrapsToNextLine(t *testing.T) {
	c, _ := newTestCaret("ab\ncd")
	c.SetLocation(0, 2)
	c.MoveRight(1)
	if c.Line() != 1 || c.Column() != 0 {
		t.Errorf("position = (%d, %d), want (1, 0)", c.Line(), c.Column())
	}
}

func TestMoveLeftWrapsToPreviousLine(t *testing.T) {
	c, _ := newTestCaret("ab\ncd")
	c.SetLocation(1, 0)
	c.MoveLeft(1)
	if c.Line() != 0 || c.Column() != 2 {
		t.Errorf("position = (%d, %d), want (0, 2)", c.Line(), c.Column())
	}
}

func TestMoveLeftClampsAtDocumentStart(t *testing.T) {
	c, _ := newTestCaret("ab")
	c.MoveLeft(5)
	if got := c.Offset(); got != 0 {
		t.Errorf("Offset = %d, want 0", got)
	}
}

func TestMoveRightClampsAtDocumentEnd(t *testing.T) {
	c, _ := newTestCaret("ab\ncd")
	c.MoveRight(100)
	if c.Line() != 1 || c.Column() != 2 {
		t.Errorf("position = (%d, %d), want (1, 2)", c.Line(), c.Column())
	}
}

func TestMoveHorizontalRecomputesDesired(t *testing.T) {
	c, _ := newTestCaret("abcdefghij\nxyz")
	c.SetLocation(0, 8)
	c.MoveLeft(3)
	if got := c.DesiredColumn(); got != 5 {
		t.Errorf("DesiredColumn = %d, want 5", got)
	}
}

func TestMoveToLineBoundaries(t *testing.T) {
	c, _ := newTestCaret("hello\nworld")
	c.SetLocation(1, 2)
	c.MoveToLineEnd()
	if got := c.Column(); got != 5 {
		t.Errorf("Column = %d, want 5", got)
	}
	c.MoveToLineStart()
	if got := c.Column(); got != 0 {
		t.Errorf("Column = %d, want 0", got)
	}
}

func TestMoveToDocumentBoundaries(t *testing.T) {
	c, _ := newTestCaret("hello\nworld")
	c.MoveToDocumentEnd()
	if c.Line() != 1 || c.Column() != 5 {
		t.Errorf("position = (%d, %d), want (1, 5)", c.Line(), c.Column())
	}
	c.MoveToDocumentStart()
	if c.Line() != 0 || c.Column() != 0 {
		t.Errorf("position = (%d, %d), want (0, 0)", c.Line(), c.Column())
	}
}

func TestMoveZeroOrNegativeIsNoOp(t *testing.T) {
	c, _ := newTestCaret("hello\nworld")
	c.SetLocation(1, 2)
	before := c.Location()
	c.MoveUp(0)
	c.MoveDown(-1)
	c.MoveLeft(0)
	c.MoveRight(-2)
	if got := c.Location(); got != before {
		t.Errorf("no-op moves changed position: %v -> %v", before, got)
	}
}
