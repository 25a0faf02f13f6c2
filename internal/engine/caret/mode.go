package caret

// Mode represents the caret's editing/rendering mode. It is orthogonal to
// position.
type Mode uint8

const (
	// ModeInsert is a thin bar caret (typing inserts text).
	ModeInsert Mode = iota
	// ModeBlock is a filled block caret (overwrite/command handling).
	ModeBlock
	// ModeUnderscore is an underscore caret.
	ModeUnderscore
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeInsert:
		return "insert"
	case ModeBlock:
		return "block"
	case ModeUnderscore:
		return "underscore"
	default:
		return "insert"
	}
}

// ModeFromString converts a string name to a caret mode.
// Unrecognized names map to ModeInsert.
func ModeFromString(s string) Mode {
	switch s {
	case "insert", "bar", "line":
		return ModeInsert
	case "block":
		return ModeBlock
	case "underscore", "underline":
		return ModeUnderscore
	default:
		return ModeInsert
	}
}

// Mode returns the caret's current mode.
func (c *Caret) Mode() Mode {
	return c.mode
}

// SetMode sets the caret's mode, firing a mode-changed notification when
// the mode actually changes.
func (c *Caret) SetMode(m Mode) {
	if c.detached || m == c.mode {
		return
	}
	old := c.mode
	c.mode = m
	c.notifyMode(ModeChange{Old: old, New: m})
}

// IsInInsertMode returns true iff the mode is ModeInsert.
func (c *Caret) IsInInsertMode() bool {
	return c.mode == ModeInsert
}

// SetInsertMode switches between insert and block mode. Disabling insert
// mode always selects ModeBlock.
func (c *Caret) SetInsertMode(on bool) {
	if on {
		c.SetMode(ModeInsert)
	} else {
		c.SetMode(ModeBlock)
	}
}
