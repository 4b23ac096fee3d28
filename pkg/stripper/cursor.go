package stripper

// lineCursor walks a line sequence front to back.
type lineCursor struct {
	lines []string
	pos   int
}

func newLineCursor(lines []string) *lineCursor {
	return &lineCursor{lines: lines}
}

// AtEnd reports whether every line has been consumed.
func (c *lineCursor) AtEnd() bool {
	return c.pos >= len(c.lines)
}

// Peek returns the next line without consuming it.
// It returns "" and false at the end.
func (c *lineCursor) Peek() (string, bool) {
	if c.AtEnd() {
		return "", false
	}
	return c.lines[c.pos], true
}

// Next consumes and returns the next line.
// It returns "" and false at the end.
func (c *lineCursor) Next() (string, bool) {
	line, ok := c.Peek()
	if ok {
		c.pos++
	}
	return line, ok
}

// LineNum returns the 1-based number of the most recently consumed line.
func (c *lineCursor) LineNum() int {
	return c.pos
}
