package settings

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type plainNode struct {
	value any
}

func (p plainNode) Plain() any { return p.value }

type recordingDecoder struct {
	calls int
	out   any
	err   error
}

func (d *recordingDecoder) DecodeComplex(_ Field, _ any) (any, error) {
	d.calls++
	return d.out, d.err
}

// ── PrepareFieldValue ─────────────────────────────────────────────────────────

// TestPrepareFieldValue_NilIsAbsent verifies that an absent value stays absent
// and the decoder is not called.
func TestPrepareFieldValue_NilIsAbsent(t *testing.T) {
	dec := &recordingDecoder{}

	got, err := PrepareFieldValue(dec, Field{Name: "tags", Kind: KindSequence}, nil, true)
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.Zero(t, dec.calls)
}

// TestPrepareFieldValue_ScalarPassesThrough verifies that scalar values of
// scalar fields are not decoded.
func TestPrepareFieldValue_ScalarPassesThrough(t *testing.T) {
	dec := &recordingDecoder{}

	got, err := PrepareFieldValue(dec, Field{Name: "port"}, 8080, false)
	require.NoError(t, err)
	assert.Equal(t, 8080, got)
	assert.Zero(t, dec.calls)
}

// TestPrepareFieldValue_ComplexField verifies that a complex field triggers
// decoding even when the value itself is not complex.
func TestPrepareFieldValue_ComplexField(t *testing.T) {
	dec := &recordingDecoder{out: []any{"a"}}

	got, err := PrepareFieldValue(dec, Field{Name: "tags", Kind: KindSequence}, `["a"]`, false)
	require.NoError(t, err)
	assert.Equal(t, []any{"a"}, got)
	assert.Equal(t, 1, dec.calls)
}

// TestPrepareFieldValue_ComplexValue verifies that a complex value triggers
// decoding even for a scalar field.
func TestPrepareFieldValue_ComplexValue(t *testing.T) {
	dec := &recordingDecoder{out: map[string]any{"a": 1}}

	got, err := PrepareFieldValue(dec, Field{Name: "raw"}, "ignored", true)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1}, got)
	assert.Equal(t, 1, dec.calls)
}

// TestPrepareFieldValue_DecodeError verifies that decoder errors are returned
// with the field key.
func TestPrepareFieldValue_DecodeError(t *testing.T) {
	dec := &recordingDecoder{err: ErrDecode}

	_, err := PrepareFieldValue(dec, Field{Name: "tags", Alias: "TAGS", Kind: KindSequence}, "x", false)
	require.ErrorIs(t, err, ErrDecode)
	assert.Contains(t, err.Error(), `"TAGS"`)
}

// TestPrepareFieldValue_NormalizesPlainers verifies that Plainer values left
// by the decoder are converted to plain values.
func TestPrepareFieldValue_NormalizesPlainers(t *testing.T) {
	dec := &recordingDecoder{out: map[string]any{
		"nested": plainNode{value: map[string]any{"port": 1}},
	}}

	got, err := PrepareFieldValue(dec, Field{Name: "db", Kind: KindMapping}, "x", true)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"nested": map[string]any{"port": 1}}, got)
}

// ── Normalize ─────────────────────────────────────────────────────────────────

// TestNormalize_Recursive verifies that Plainers are resolved at any depth
// inside maps and slices.
func TestNormalize_Recursive(t *testing.T) {
	in := []any{
		plainNode{value: "a"},
		map[string]any{"b": plainNode{value: []any{plainNode{value: 2}}}},
	}

	got := Normalize(in)
	assert.Equal(t, []any{"a", map[string]any{"b": []any{2}}}, got)
}

// TestNormalize_CopiesContainers verifies that the input containers are not
// shared with the result.
func TestNormalize_CopiesContainers(t *testing.T) {
	in := map[string]any{"a": 1}

	got := Normalize(in).(map[string]any)
	got["a"] = 2

	assert.Equal(t, 1, in["a"])
}

// ── DecodeJSON ────────────────────────────────────────────────────────────────

// TestDecodeJSON_Object verifies that a JSON object decodes to a mapping.
func TestDecodeJSON_Object(t *testing.T) {
	got, err := DecodeJSON(`{"a": 1}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": float64(1)}, got)
}

// TestDecodeJSON_Invalid verifies that invalid JSON fails with ErrDecode and
// keeps the underlying syntax error reachable.
func TestDecodeJSON_Invalid(t *testing.T) {
	_, err := DecodeJSON("not json")
	require.ErrorIs(t, err, ErrDecode)

	var syntaxErr *json.SyntaxError
	assert.ErrorAs(t, err, &syntaxErr)
}

// TestStringDecoder verifies that string values are JSON-decoded and other
// values are kept.
func TestStringDecoder(t *testing.T) {
	got, err := stringDecoder{}.DecodeComplex(Field{}, `[1, 2]`)
	require.NoError(t, err)
	assert.Equal(t, []any{float64(1), float64(2)}, got)

	got, err = stringDecoder{}.DecodeComplex(Field{}, []any{"x"})
	require.NoError(t, err)
	assert.Equal(t, []any{"x"}, got)
}
