package jot

import "testing"

func TestCursor_PeekNext(t *testing.T) {
	c := newCursor("ab")

	b, ok := c.peek()
	if !ok || b != 'a' {
		t.Fatalf("peek = %c, %v", b, ok)
	}
	// peek does not consume
	b, ok = c.peek()
	if !ok || b != 'a' {
		t.Fatalf("second peek = %c, %v", b, ok)
	}

	b, ok = c.next()
	if !ok || b != 'a' {
		t.Fatalf("next = %c, %v", b, ok)
	}
	b, ok = c.next()
	if !ok || b != 'b' {
		t.Fatalf("next = %c, %v", b, ok)
	}

	if !c.atEnd() {
		t.Error("cursor should be at end")
	}
	if _, ok := c.next(); ok {
		t.Error("next past end should report not ok")
	}
	if _, ok := c.peek(); ok {
		t.Error("peek past end should report not ok")
	}
}

func TestCursor_ConsumeIf(t *testing.T) {
	c := newCursor("x9")

	if c.consumeIf('y') {
		t.Error("consumeIf should not match y")
	}
	if !c.consumeIf('x') {
		t.Error("consumeIf should match x")
	}
	if !c.consumeIfFunc(isDigit) {
		t.Error("consumeIfFunc should match digit")
	}
	if c.consumeIf('9') {
		t.Error("consumeIf past end should fail")
	}
}

func TestCursor_SkipWhile(t *testing.T) {
	c := newCursor("   \t\r\n123")
	c.skipWhile(isWhitespace)

	b, ok := c.peek()
	if !ok || b != '1' {
		t.Errorf("Expected to land on 1, got %c", b)
	}

	c.skipWhile(isDigit)
	if !c.atEnd() {
		t.Error("Expected end after digits")
	}
}

func TestCursor_SnapshotRestore(t *testing.T) {
	c := newCursor("abc")
	c.next()

	// a plain struct copy snapshots the position
	save := c
	c.next()
	c.next()
	if !c.atEnd() {
		t.Fatal("expected end")
	}

	c = save
	b, ok := c.peek()
	if !ok || b != 'b' {
		t.Errorf("Expected restored cursor at b, got %c", b)
	}
}

func TestCharacterClasses(t *testing.T) {
	for _, b := range []byte{' ', '\t', '\n', '\r'} {
		if !isWhitespace(b) {
			t.Errorf("isWhitespace(%q) should be true", b)
		}
	}
	for _, b := range []byte{'\v', '\f', 0x00, 'a', 0xa0} {
		if isWhitespace(b) {
			t.Errorf("isWhitespace(%q) should be false", b)
		}
	}

	if !isDigit('0') || !isDigit('9') || isDigit('a') || isDigit('/') || isDigit(':') {
		t.Error("isDigit boundary failure")
	}
	if isNonZeroDigit('0') || !isNonZeroDigit('1') || !isNonZeroDigit('9') {
		t.Error("isNonZeroDigit boundary failure")
	}
}

func TestHexValue(t *testing.T) {
	tests := []struct {
		input    byte
		expected uint16
		ok       bool
	}{
		{'0', 0, true},
		{'9', 9, true},
		{'a', 10, true},
		{'f', 15, true},
		{'A', 10, true},
		{'F', 15, true},
		{'g', 0, false},
		{'G', 0, false},
		{'`', 0, false},
		{'@', 0, false},
		{' ', 0, false},
	}

	for _, tt := range tests {
		got, ok := hexValue(tt.input)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("hexValue(%q) = %d, %v, want %d, %v", tt.input, got, ok, tt.expected, tt.ok)
		}
	}
}
