package jot

// UTF-16 surrogate handling for \uXXXX escape decoding. A code point
// above U+FFFF arrives as a lead/trail pair of 16-bit code units.

const (
	surrLead  = 0xd800 // lead range [0xd800, 0xdc00)
	surrTrail = 0xdc00 // trail range [0xdc00, 0xe000)
	surrEnd   = 0xe000
)

// isLeadSurrogate reports whether u is a UTF-16 lead surrogate.
func isLeadSurrogate(u uint16) bool {
	return u >= surrLead && u < surrTrail
}

// isTrailSurrogate reports whether u is a UTF-16 trail surrogate.
func isTrailSurrogate(u uint16) bool {
	return u >= surrTrail && u < surrEnd
}

// composeSurrogates combines a valid lead/trail pair into one code
// point. The caller guarantees both units are in range.
func composeSurrogates(lead, trail uint16) rune {
	return (rune(lead-surrLead)<<10 | rune(trail-surrTrail)) + 0x10000
}
