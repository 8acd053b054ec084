// Package jot implements a minimal JSON parser and serializer around
// a dynamically typed value tree.
//
// jot favors all-or-nothing correctness over diagnostics:
//   - Parse consumes the entire input or fails
//   - One opaque error (ErrMalformed), no positions, no messages
//   - No partial trees, no recovery, no repair
//   - Render is total: every Value renders, nothing errors
//
// # Data Model
//
// A Value is one of six kinds: null, bool, number, string, object,
// array. Numbers are float64; integers are not distinguished. Objects
// keep member insertion order and overwrite on duplicate keys.
//
// # Parsing
//
//	v, err := jot.Parse(`{"name":"Ada","tags":["x","y"]}`)
//	if err != nil {
//		// err is jot.ErrMalformed
//	}
//	name, _ := v.Get("name").AsStr()
//
// String escapes are decoded fully, including \uXXXX surrogate pairs;
// unpaired surrogates become U+FFFD rather than failing.
//
// # Rendering
//
// Render produces compact JSON with JavaScript-style numbers:
//
//	jot.Render(jot.Number(1))      // "1"
//	jot.Render(jot.Number(1e-123)) // "1e-123"
//	jot.Render(jot.Number(math.NaN())) // "null"
//
// CanonicalRender additionally sorts object members by key, and
// CanonicalHash fingerprints that form for cheap tree comparison.
//
// # Compatibility Quirks
//
// Two deliberate departures from RFC 8259, kept for parity with
// JavaScript's JSON.stringify:
//   - non-finite numbers render as null instead of failing
//   - only control characters 0x00-0x19 are escaped (and rejected
//     when raw in input); 0x1a-0x1f pass through
package jot
