package jot

// cursor is a lightweight scan position over an input text. Copying a
// cursor snapshots the position; speculative sub-parses advance a copy
// and assign it back only when the whole construct matched.
type cursor struct {
	input string
	pos   int
}

func newCursor(input string) cursor {
	return cursor{input: input}
}

// atEnd reports whether the input is exhausted.
func (c *cursor) atEnd() bool {
	return c.pos >= len(c.input)
}

// peek returns the next byte without consuming it.
func (c *cursor) peek() (byte, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	return c.input[c.pos], true
}

// next consumes and returns the next byte.
func (c *cursor) next() (byte, bool) {
	if c.pos >= len(c.input) {
		return 0, false
	}
	b := c.input[c.pos]
	c.pos++
	return b, true
}

// consumeIf consumes the next byte only when it equals b.
func (c *cursor) consumeIf(b byte) bool {
	if c.pos < len(c.input) && c.input[c.pos] == b {
		c.pos++
		return true
	}
	return false
}

// consumeIfFunc consumes the next byte only when pred holds for it.
func (c *cursor) consumeIfFunc(pred func(byte) bool) bool {
	if c.pos < len(c.input) && pred(c.input[c.pos]) {
		c.pos++
		return true
	}
	return false
}

// skipWhile consumes bytes while pred holds.
func (c *cursor) skipWhile(pred func(byte) bool) {
	for c.pos < len(c.input) && pred(c.input[c.pos]) {
		c.pos++
	}
}

// ============================================================
// Character Classes
// ============================================================

// isWhitespace reports whether b is JSON whitespace. Exactly space,
// tab, newline, and carriage return count; no other character does.
func isWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isNonZeroDigit(b byte) bool {
	return b >= '1' && b <= '9'
}

// hexValue returns the numeric value of a hex digit byte.
func hexValue(b byte) (uint16, bool) {
	switch {
	case b >= '0' && b <= '9':
		return uint16(b - '0'), true
	case b >= 'a' && b <= 'f':
		return uint16(b-'a') + 10, true
	case b >= 'A' && b <= 'F':
		return uint16(b-'A') + 10, true
	default:
		return 0, false
	}
}
