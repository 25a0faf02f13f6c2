package caret

// Movement operations built on the position setters. Vertical moves
// consume the desired column; horizontal moves recompute it.

// MoveUp moves the caret up by n lines, clamped at the first line.
func (c *Caret) MoveUp(n int) {
	if n <= 0 {
		return
	}
	line := c.line - n
	if line < 0 {
		line = 0
	}
	if line != c.line {
		c.SetLine(line)
	}
}

// MoveDown moves the caret down by n lines, clamped at the last line.
func (c *Caret) MoveDown(n int) {
	if n <= 0 {
		return
	}
	line := c.line + n
	if last := c.lines.LineCount() - 1; line > last {
		line = last
	}
	if line != c.line {
		c.SetLine(line)
	}
}

// MoveLeft moves the caret back by n characters, wrapping across line
// breaks.
func (c *Caret) MoveLeft(n int) {
	if n <= 0 {
		return
	}
	offset := c.Offset() - n
	if offset < 0 {
		offset = 0
	}
	c.SetOffset(offset)
}

// MoveRight moves the caret forward by n characters, wrapping across
// line breaks. Past the end of the document the offset resolution clamps
// onto the last line; with behind-line-end positioning enabled the
// remainder becomes a virtual column.
func (c *Caret) MoveRight(n int) {
	if n <= 0 {
		return
	}
	c.SetOffset(c.Offset() + n)
}

// MoveToLineStart moves the caret to column 0 of its current line.
func (c *Caret) MoveToLineStart() {
	c.SetColumn(0)
}

// MoveToLineEnd moves the caret just past the last editable character of
// its current line.
func (c *Caret) MoveToLineEnd() {
	c.SetColumn(c.lines.EditableLength(c.line))
}

// MoveToDocumentStart moves the caret to the very first position.
func (c *Caret) MoveToDocumentStart() {
	c.SetLocation(0, 0)
}

// MoveToDocumentEnd moves the caret past the last character of the last
// line.
func (c *Caret) MoveToDocumentEnd() {
	last := c.lines.LineCount() - 1
	c.SetLocation(last, c.lines.EditableLength(last))
}
