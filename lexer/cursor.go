package lexer

import "unicode/utf8"

// --- Character cursor ------------------------------------------------------

// Cursor is a Unicode-aware character stream with one-character lookahead and
// lookbehind and a mutable position. The lexer reads and advances the cursor
// but does not own the backing text.
//
// Positions handed out by Mark are opaque and only valid for the cursor they
// came from.
type Cursor struct {
	runes []rune
	pos   int
}

// NewCursor creates a cursor over the given input text. Invalid UTF-8 bytes
// decode to U+FFFD.
func NewCursor(input string) *Cursor {
	return &Cursor{runes: []rune(input)}
}

// Current returns the character at the cursor position, or false at end of
// input.
func (c *Cursor) Current() (rune, bool) {
	if c.pos >= len(c.runes) {
		return utf8.RuneError, false
	}
	return c.runes[c.pos], true
}

// PeekNext returns the character just after the cursor position, or false if
// there is none.
func (c *Cursor) PeekNext() (rune, bool) {
	if c.pos+1 >= len(c.runes) {
		return utf8.RuneError, false
	}
	return c.runes[c.pos+1], true
}

// Previous returns the character just before the cursor position, or false if
// there is none.
func (c *Cursor) Previous() (rune, bool) {
	if c.pos == 0 || c.pos-1 >= len(c.runes) {
		return utf8.RuneError, false
	}
	return c.runes[c.pos-1], true
}

// Advance moves the cursor one character forward. Advancing past the end of
// input is a no-op.
func (c *Cursor) Advance() {
	if c.pos < len(c.runes) {
		c.pos++
	}
}

// Mark returns the current position, to be restored later with ResetTo.
func (c *Cursor) Mark() int {
	return c.pos
}

// ResetTo rewinds (or forwards) the cursor to a position previously handed
// out by Mark.
func (c *Cursor) ResetTo(mark int) {
	if mark < 0 {
		mark = 0
	} else if mark > len(c.runes) {
		mark = len(c.runes)
	}
	c.pos = mark
}
