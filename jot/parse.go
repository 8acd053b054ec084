package jot

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrMalformed is the only error Parse returns. Malformed syntax,
// truncated input, bad escapes, and bad surrogate sequences all
// collapse into it; no position or detail is reported.
var ErrMalformed = errors.New("jot: malformed JSON input")

// ParseOptions configures the parser behavior.
type ParseOptions struct {
	// MaxDepth bounds object/array nesting. Zero means unlimited,
	// which matches plain Parse; inputs nested deeper fail with
	// ErrMalformed.
	MaxDepth int
}

// DefaultParseOptions returns the options plain Parse uses.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{}
}

// Parse parses JSON text into a Value. The whole input, less leading
// and trailing whitespace, must be consumed by exactly one value;
// anything else fails with ErrMalformed.
func Parse(input string) (*Value, error) {
	return ParseWithOptions(input, DefaultParseOptions())
}

// ParseWithOptions parses with full options.
func ParseWithOptions(input string, opts ParseOptions) (*Value, error) {
	p := &parser{cur: newCursor(input), maxDepth: opts.MaxDepth}

	p.cur.skipWhile(isWhitespace)
	v, ok := p.parseValue()
	if !ok {
		return nil, ErrMalformed
	}
	p.cur.skipWhile(isWhitespace)
	if !p.cur.atEnd() {
		return nil, ErrMalformed
	}
	return v, nil
}

// Valid reports whether input is a single well-formed JSON document.
func Valid(input string) bool {
	_, err := Parse(input)
	return err == nil
}

type parser struct {
	cur      cursor
	depth    int
	maxDepth int
}

// pushDepth tracks container nesting; false once past the bound.
func (p *parser) pushDepth() bool {
	p.depth++
	return p.maxDepth == 0 || p.depth <= p.maxDepth
}

func (p *parser) popDepth() {
	p.depth--
}

// parseValue parses any value, dispatching on the next byte.
func (p *parser) parseValue() (*Value, bool) {
	b, ok := p.cur.peek()
	if !ok {
		return nil, false
	}
	switch {
	case b == '{':
		return p.parseObject()
	case b == '[':
		return p.parseArray()
	case b == '"':
		s, ok := p.parseString()
		if !ok {
			return nil, false
		}
		return Str(s), true
	case b == '-' || isDigit(b):
		return p.parseNumber()
	case b == 'f':
		return p.parseKeyword("false", Bool(false))
	case b == 'n':
		return p.parseKeyword("null", Null())
	case b == 't':
		return p.parseKeyword("true", Bool(true))
	default:
		return nil, false
	}
}

// parseObject parses {"key":value,...}. Duplicate keys overwrite.
func (p *parser) parseObject() (*Value, bool) {
	if !p.pushDepth() {
		return nil, false
	}
	defer p.popDepth()

	p.cur.next() // consume {
	p.cur.skipWhile(isWhitespace)

	obj := Obj()
	if p.cur.consumeIf('}') {
		return obj, true
	}
	for {
		key, ok := p.parseString()
		if !ok {
			return nil, false
		}
		p.cur.skipWhile(isWhitespace)
		if !p.cur.consumeIf(':') {
			return nil, false
		}
		p.cur.skipWhile(isWhitespace)
		val, ok := p.parseValue()
		if !ok {
			return nil, false
		}
		obj.Set(key, val)
		p.cur.skipWhile(isWhitespace)

		b, ok := p.cur.next()
		if !ok {
			return nil, false
		}
		switch b {
		case '}':
			return obj, true
		case ',':
			// another entry is required; a closing } here fails
			p.cur.skipWhile(isWhitespace)
		default:
			return nil, false
		}
	}
}

// parseArray parses [value,...].
func (p *parser) parseArray() (*Value, bool) {
	if !p.pushDepth() {
		return nil, false
	}
	defer p.popDepth()

	p.cur.next() // consume [
	p.cur.skipWhile(isWhitespace)

	arr := Arr()
	if p.cur.consumeIf(']') {
		return arr, true
	}
	for {
		val, ok := p.parseValue()
		if !ok {
			return nil, false
		}
		arr.Append(val)
		p.cur.skipWhile(isWhitespace)

		b, ok := p.cur.next()
		if !ok {
			return nil, false
		}
		switch b {
		case ']':
			return arr, true
		case ',':
			p.cur.skipWhile(isWhitespace)
		default:
			return nil, false
		}
	}
}

// parseString parses a quoted string literal, resolving escapes and
// UTF-16 surrogate pairs into scalar values. A lead surrogate is held
// pending until the next code unit: a trail completes the pair, while
// anything else (including end of string) flushes the lead as one
// U+FFFD replacement character. An isolated trail also becomes U+FFFD.
func (p *parser) parseString() (string, bool) {
	if b, ok := p.cur.next(); !ok || b != '"' {
		return "", false
	}

	var sb strings.Builder
	pending := -1 // pending lead surrogate unit, -1 when none

	flushPending := func() {
		if pending >= 0 {
			sb.WriteRune(utf8.RuneError)
			pending = -1
		}
	}

	for {
		b, ok := p.cur.next()
		if !ok {
			return "", false
		}
		switch {
		case b == '"':
			flushPending()
			return sb.String(), true

		case b == '\\':
			esc, ok := p.cur.next()
			if !ok {
				return "", false
			}
			switch esc {
			case '"', '\\', '/':
				flushPending()
				sb.WriteByte(esc)
			case 'b':
				flushPending()
				sb.WriteByte('\b')
			case 'f':
				flushPending()
				sb.WriteByte('\f')
			case 'n':
				flushPending()
				sb.WriteByte('\n')
			case 'r':
				flushPending()
				sb.WriteByte('\r')
			case 't':
				flushPending()
				sb.WriteByte('\t')
			case 'u':
				unit, ok := p.parseFourHex()
				if !ok {
					return "", false
				}
				switch {
				case isLeadSurrogate(unit):
					flushPending()
					pending = int(unit)
				case isTrailSurrogate(unit):
					if pending >= 0 {
						sb.WriteRune(composeSurrogates(uint16(pending), unit))
						pending = -1
					} else {
						sb.WriteRune(utf8.RuneError)
					}
				default:
					flushPending()
					sb.WriteRune(rune(unit))
				}
			default:
				return "", false
			}

		case b <= 0x19:
			// raw control characters are never permitted
			return "", false

		default:
			flushPending()
			sb.WriteByte(b)
		}
	}
}

// parseFourHex reads exactly four hex digits as one UTF-16 code unit.
func (p *parser) parseFourHex() (uint16, bool) {
	var unit uint16
	for i := 0; i < 4; i++ {
		b, ok := p.cur.next()
		if !ok {
			return 0, false
		}
		d, ok := hexValue(b)
		if !ok {
			return 0, false
		}
		unit = unit<<4 | d
	}
	return unit, true
}

// parseNumber parses a numeric literal. The fractional and exponent
// suffixes are speculative: each is taken all-or-nothing on a cursor
// copy and committed only if it fully matches, so "1." consumes just
// the "1".
func (p *parser) parseNumber() (*Value, bool) {
	c := p.cur
	start := c.pos

	c.consumeIf('-')

	// integer part: a single 0, or a 1-9 digit followed by any digits
	if !c.consumeIf('0') {
		if !c.consumeIfFunc(isNonZeroDigit) {
			return nil, false
		}
		c.skipWhile(isDigit)
	}

	if frac := c; frac.consumeIf('.') && frac.consumeIfFunc(isDigit) {
		frac.skipWhile(isDigit)
		c = frac
	}

	if exp := c; exp.consumeIf('e') || exp.consumeIf('E') {
		if !exp.consumeIf('+') {
			exp.consumeIf('-')
		}
		if exp.consumeIfFunc(isDigit) {
			exp.skipWhile(isDigit)
			c = exp
		}
	}

	// Out-of-range literals saturate to ±Inf or zero; the scanned
	// substring is otherwise always a valid float literal.
	n, err := strconv.ParseFloat(c.input[start:c.pos], 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return nil, false
	}
	p.cur = c
	return Number(n), true
}

// parseKeyword matches a fixed literal byte-for-byte.
func (p *parser) parseKeyword(kw string, v *Value) (*Value, bool) {
	for i := 0; i < len(kw); i++ {
		b, ok := p.cur.next()
		if !ok || b != kw[i] {
			return nil, false
		}
	}
	return v, true
}
