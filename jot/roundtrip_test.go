package jot

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// TestRoundTrip_Documents verifies render(parse(text)) re-parses to a
// structurally equal tree, and that the rendered form is stable.
func TestRoundTrip_Documents(t *testing.T) {
	docs := []string{
		`null`,
		`true`,
		`false`,
		`0`,
		`-17`,
		`3.25`,
		`1e-123`,
		`""`,
		`"hello"`,
		`"esc \" \\ \/ \b \f \n \r \t"`,
		`"unicode Aé♞"`,
		`"pair 😀"`,
		`"héllo 日本語 😀"`,
		`{}`,
		`[]`,
		`[1,2,3]`,
		`["a",null,true,0.5]`,
		`{"a":1,"b":"two"}`,
		`{"nested":{"list":[{"deep":null}],"n":-2.5e3}}`,
		`[[[[]]]]`,
		`{"a":{"b":{"c":{}}}}`,
		"\t{\n \"spaced\" :\r [ 1 , 2 ]\n}\t",
	}

	for _, doc := range docs {
		t.Run(doc, func(t *testing.T) {
			first, err := Parse(doc)
			require.NoError(t, err, "initial parse")

			rendered := Render(first)
			second, err := Parse(rendered)
			require.NoError(t, err, "re-parse of %q", rendered)

			require.True(t, first.Equal(second),
				"round-trip changed the tree: %q -> %q", doc, rendered)
			require.Equal(t, rendered, Render(second), "rendering is not stable")
		})
	}
}

// TestRoundTrip_Idempotence verifies render(parse(render(v))) equals v
// for constructed trees without non-finite numbers.
func TestRoundTrip_Idempotence(t *testing.T) {
	values := []*Value{
		Null(),
		Bool(true),
		Number(0),
		Number(math.Copysign(0, -1)),
		Number(math.Pi),
		Number(5e-324),
		Number(math.MaxFloat64),
		Str(""),
		Str("with \"escapes\" and \x01 control"),
		Str("😀 literal"),
		Arr(),
		Obj(),
		Arr(Number(1), Arr(Number(2), Arr(Number(3)))),
		Obj(
			Field("z", Str("last")),
			Field("a", Arr(Null(), Bool(false))),
			Field("m", Obj(Field("inner", Number(-0.125)))),
		),
	}

	for _, v := range values {
		rendered := Render(v)
		parsed, err := Parse(rendered)
		require.NoError(t, err, "parse of %q", rendered)
		require.True(t, parsed.Equal(v), "idempotence broken for %q", rendered)
		require.Equal(t, rendered, Render(parsed))
	}
}

// TestRoundTrip_NumberExactness verifies the shortest-round-trip
// property: rendering any finite float and re-parsing it recovers the
// identical bits.
func TestRoundTrip_NumberExactness(t *testing.T) {
	floats := []float64{
		0, 1, -1, 0.1, 0.2, 0.3, 1.0 / 3.0, math.Pi, math.E,
		math.Sqrt2, 1e21, 1e-7, 123456.789, 2.2250738585072014e-308,
		5e-324, math.MaxFloat64, -math.MaxFloat64, 9007199254740993,
	}

	for _, f := range floats {
		rendered := Render(Number(f))
		parsed, err := Parse(rendered)
		require.NoError(t, err, "parse of %q", rendered)

		n, err := parsed.AsNumber()
		require.NoError(t, err)
		require.Equal(t, math.Float64bits(f), math.Float64bits(n),
			"bits changed through %q", rendered)
	}
}

func TestRoundTrip_NegativeZeroSign(t *testing.T) {
	rendered := Render(Number(math.Copysign(0, -1)))
	require.Equal(t, "-0", rendered)

	parsed, err := Parse(rendered)
	require.NoError(t, err)
	n, err := parsed.AsNumber()
	require.NoError(t, err)
	require.True(t, math.Signbit(n), "sign bit lost through render/parse")
}

// TestRoundTrip_SurrogateNormalization verifies escaped pairs come out
// as literal characters on the way back.
func TestRoundTrip_SurrogateNormalization(t *testing.T) {
	v, err := Parse(`"😀"`)
	require.NoError(t, err)
	require.Equal(t, `"😀"`, Render(v))

	v, err = Parse(`"\uD800"`)
	require.NoError(t, err)
	require.Equal(t, "\"�\"", Render(v))
}

func TestRoundTrip_DuplicateKeys(t *testing.T) {
	v, err := Parse(`{"a":1,"b":0,"a":2}`)
	require.NoError(t, err)
	require.Equal(t, `{"a":2,"b":0}`, Render(v))
}

// TestRoundTrip_GoBridge runs documents through the Go-native bridge
// in both directions and diffs the plain-Go shapes.
func TestRoundTrip_GoBridge(t *testing.T) {
	docs := []string{
		`{"name":"ada","tags":["x","y"],"score":1.5,"ok":true,"none":null}`,
		`[{"a":[]},{"b":{}}]`,
		`"plain"`,
		`null`,
	}

	for _, doc := range docs {
		v, err := Parse(doc)
		require.NoError(t, err)

		native := ToGo(v)
		back, err := FromGo(native)
		require.NoError(t, err)

		if diff := cmp.Diff(native, ToGo(back)); diff != "" {
			t.Errorf("bridge round-trip mismatch (-want +got):\n%s", diff)
		}
		require.True(t, v.Equal(back), "tree changed through bridge for %q", doc)
	}
}
