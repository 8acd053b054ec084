package jot

import "testing"

func TestSurrogateRanges(t *testing.T) {
	tests := []struct {
		unit  uint16
		lead  bool
		trail bool
	}{
		{0x0000, false, false},
		{0x0041, false, false},
		{0xd7ff, false, false},
		{0xd800, true, false},
		{0xdbff, true, false},
		{0xdc00, false, true},
		{0xdfff, false, true},
		{0xe000, false, false},
		{0xffff, false, false},
	}

	for _, tt := range tests {
		if got := isLeadSurrogate(tt.unit); got != tt.lead {
			t.Errorf("isLeadSurrogate(%#04x) = %v, want %v", tt.unit, got, tt.lead)
		}
		if got := isTrailSurrogate(tt.unit); got != tt.trail {
			t.Errorf("isTrailSurrogate(%#04x) = %v, want %v", tt.unit, got, tt.trail)
		}
	}
}

func TestComposeSurrogates(t *testing.T) {
	tests := []struct {
		lead     uint16
		trail    uint16
		expected rune
	}{
		{0xd800, 0xdc00, 0x10000},  // first supplementary code point
		{0xd83d, 0xde00, 0x1f600},  // 😀
		{0xd834, 0xdd1e, 0x1d11e},  // 𝄞
		{0xdbff, 0xdfff, 0x10ffff}, // last code point
	}

	for _, tt := range tests {
		if got := composeSurrogates(tt.lead, tt.trail); got != tt.expected {
			t.Errorf("composeSurrogates(%#04x, %#04x) = %#x, want %#x",
				tt.lead, tt.trail, got, tt.expected)
		}
	}
}
