package caret

import "fmt"

// Position is a caret location expressed in all three coordinate spaces.
// Line and Column are authoritative; Offset is derived and always clamped
// into the line's editable range.
type Position struct {
	Line   int // 0-indexed line number
	Column int // 0-indexed logical column in characters
	Offset int // absolute character offset
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d:%d@%d)", p.Line, p.Column, p.Offset)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other,
// ordering by line first, then column.
func (p Position) Compare(other Position) int {
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// IsZero returns true if this is the zero position.
func (p Position) IsZero() bool {
	return p.Line == 0 && p.Column == 0
}
