package jot

import (
	"bytes"
	"math"
	"strconv"
	"sync"
)

// renderBufPool recycles render buffers across calls. Buffers that
// grew past maxPooledRenderBuf are dropped instead of pinned.
var renderBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 256)
		return &b
	},
}

const maxPooledRenderBuf = 64 * 1024

// Render converts a Value to compact JSON text. It is total: every
// Value renders, with non-finite numbers becoming null.
func Render(v *Value) string {
	bp := renderBufPool.Get().(*[]byte)
	b := AppendRender((*bp)[:0], v)
	out := string(b)
	if cap(b) <= maxPooledRenderBuf {
		*bp = b
		renderBufPool.Put(bp)
	}
	return out
}

// AppendRender appends the compact JSON rendering of v to dst and
// returns the extended buffer. No whitespace is ever emitted.
func AppendRender(dst []byte, v *Value) []byte {
	if v == nil {
		return append(dst, "null"...)
	}
	switch v.kind {
	case KindBool:
		if v.boolVal {
			return append(dst, "true"...)
		}
		return append(dst, "false"...)

	case KindNumber:
		return appendNumber(dst, v.numVal)

	case KindString:
		return appendString(dst, v.strVal)

	case KindObject:
		dst = append(dst, '{')
		for i, m := range v.members {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendString(dst, m.Key)
			dst = append(dst, ':')
			dst = AppendRender(dst, m.Value)
		}
		return append(dst, '}')

	case KindArray:
		dst = append(dst, '[')
		for i, e := range v.elems {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = AppendRender(dst, e)
		}
		return append(dst, ']')

	default:
		return append(dst, "null"...)
	}
}

// String renders the value as compact JSON.
func (v *Value) String() string {
	return Render(v)
}

const hexLower = "0123456789abcdef"

// appendString appends a quoted string. The seven short escapes are
// used where they exist, remaining control characters in 0x00-0x19
// become \u00xx with lowercase hex, and everything else is emitted
// literally, including non-ASCII text.
func appendString(dst []byte, s string) []byte {
	dst = append(dst, '"')
	for i := 0; i < len(s); i++ {
		b := s[i]
		switch b {
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		default:
			if b <= 0x19 {
				dst = append(dst, '\\', 'u', '0', '0', hexLower[b>>4], hexLower[b&0xf])
			} else {
				dst = append(dst, b)
			}
		}
	}
	return append(dst, '"')
}

// appendNumber renders f the way JavaScript's Number#toString does:
// shortest round-trip digits, fixed notation while the decimal point
// lands within (-6, 21], scientific notation outside that range with
// an unpadded exponent. Non-finite values render as null.
func appendNumber(dst []byte, f float64) []byte {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return append(dst, "null"...)
	}

	var scratch [32]byte
	mant := strconv.AppendFloat(scratch[:0], f, 'e', -1, 64)

	if mant[0] == '-' {
		dst = append(dst, '-')
		mant = mant[1:]
	}

	// split "d.ddde±xx" into its digits and decimal exponent
	e := bytes.IndexByte(mant, 'e')
	exp, _ := strconv.Atoi(string(mant[e+1:]))

	var digScratch [20]byte
	digits := append(digScratch[:0], mant[0])
	if mant[1] == '.' {
		digits = append(digits, mant[2:e]...)
	}

	k := len(digits)
	n := exp + 1 // decimal point sits after the first n digits

	switch {
	case n >= k && n <= 21:
		// whole number, zero-padded out to the decimal point
		dst = append(dst, digits...)
		for i := k; i < n; i++ {
			dst = append(dst, '0')
		}

	case n > 0 && n <= 21:
		dst = append(dst, digits[:n]...)
		dst = append(dst, '.')
		dst = append(dst, digits[n:]...)

	case n > -6 && n <= 0:
		dst = append(dst, '0', '.')
		for i := n; i < 0; i++ {
			dst = append(dst, '0')
		}
		dst = append(dst, digits...)

	default:
		dst = append(dst, digits[0])
		if k > 1 {
			dst = append(dst, '.')
			dst = append(dst, digits[1:]...)
		}
		dst = append(dst, 'e')
		if n-1 >= 0 {
			dst = append(dst, '+')
		}
		dst = strconv.AppendInt(dst, int64(n-1), 10)
	}
	return dst
}
