package scan

// Cursor is a read position in a byte sequence terminated by a zero byte or
// by the end of the slice, whichever comes first. Peek never reads past the
// terminator.
//
// Cursors are values: copying one snapshots the position.
type Cursor struct {
	text []byte
	pos  int
}

// NewCursor returns a cursor at pos. A pos outside the text is clamped to the
// nearest end.
func NewCursor(text []byte, pos int) Cursor {
	switch {
	case pos < 0:
		pos = 0
	case pos > len(text):
		pos = len(text)
	}

	return Cursor{
		text: text,
		pos:  pos,
	}
}

// Pos returns the offset of the cursor from the start of the text.
func (c Cursor) Pos() int {
	return c.pos
}

// Peek returns the current byte or 0 at the terminator.
func (c Cursor) Peek() byte {
	if c.pos >= len(c.text) {
		return 0
	}

	return c.text[c.pos]
}

// Next advances past the current byte. It does nothing at the terminator.
func (c *Cursor) Next() {
	if c.Peek() != 0 {
		c.pos++
	}
}

// Skip returns a cursor n bytes ahead, stopping at the terminator.
func (c Cursor) Skip(n int) Cursor {
	for ; n > 0; n-- {
		c.Next()
	}

	return c
}
