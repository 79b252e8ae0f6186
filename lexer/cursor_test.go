package lexer

import "testing"

func TestCursorWalk(t *testing.T) {
	c := NewCursor("Füße")
	if r, ok := c.Current(); !ok || r != 'F' {
		t.Errorf("expected current to be 'F', got %q", r)
	}
	if _, ok := c.Previous(); ok {
		t.Errorf("expected no previous character at start of input")
	}
	if r, ok := c.PeekNext(); !ok || r != 'ü' {
		t.Errorf("expected lookahead 'ü', got %q", r)
	}
	c.Advance()
	c.Advance()
	if r, ok := c.Current(); !ok || r != 'ß' {
		t.Errorf("expected current to be 'ß', got %q", r)
	}
	if r, ok := c.Previous(); !ok || r != 'ü' {
		t.Errorf("expected lookbehind 'ü', got %q", r)
	}
	c.Advance()
	c.Advance()
	if _, ok := c.Current(); ok {
		t.Errorf("expected end of input")
	}
	c.Advance() // no-op past the end
	if _, ok := c.Current(); ok {
		t.Errorf("expected end of input to be sticky")
	}
}

func TestCursorMark(t *testing.T) {
	c := NewCursor("abc")
	mark := c.Mark()
	c.Advance()
	c.Advance()
	c.ResetTo(mark)
	if r, ok := c.Current(); !ok || r != 'a' {
		t.Errorf("expected rewind to 'a', got %q", r)
	}
}

func TestCursorEmpty(t *testing.T) {
	c := NewCursor("")
	if _, ok := c.Current(); ok {
		t.Errorf("expected no current character on empty input")
	}
	if _, ok := c.PeekNext(); ok {
		t.Errorf("expected no lookahead on empty input")
	}
}
