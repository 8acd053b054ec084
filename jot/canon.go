package jot

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// ============================================================
// Canonical Form
// ============================================================

// CanonicalRender renders v as compact JSON with object members
// sorted by key at every level. Member order is the only thing Render
// leaves unspecified, so two structurally equal trees always produce
// identical canonical text.
func CanonicalRender(v *Value) string {
	bp := renderBufPool.Get().(*[]byte)
	b := appendCanonical((*bp)[:0], v)
	out := string(b)
	if cap(b) <= maxPooledRenderBuf {
		*bp = b
		renderBufPool.Put(bp)
	}
	return out
}

func appendCanonical(dst []byte, v *Value) []byte {
	if v == nil {
		return append(dst, "null"...)
	}
	switch v.kind {
	case KindObject:
		dst = append(dst, '{')
		for i, m := range sortMembers(v.members) {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendString(dst, m.Key)
			dst = append(dst, ':')
			dst = appendCanonical(dst, m.Value)
		}
		return append(dst, '}')

	case KindArray:
		dst = append(dst, '[')
		for i, e := range v.elems {
			if i > 0 {
				dst = append(dst, ',')
			}
			dst = appendCanonical(dst, e)
		}
		return append(dst, ']')

	default:
		return AppendRender(dst, v)
	}
}

// sortMembers returns a sorted copy of object members.
func sortMembers(members []Member) []Member {
	if len(members) <= 1 {
		return members
	}

	sorted := make([]Member, len(members))
	copy(sorted, members)

	// Simple insertion sort (good for small objects)
	for i := 1; i < len(sorted); i++ {
		j := i
		for j > 0 && sorted[j].Key < sorted[j-1].Key {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
			j--
		}
	}

	return sorted
}

// ============================================================
// Canonical Hash
// ============================================================

// CanonicalHash returns a 64-bit fingerprint of the canonical
// rendering as 16 lowercase hex digits. Structurally equal trees hash
// identically regardless of member order.
func CanonicalHash(v *Value) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(CanonicalRender(v)))
}
