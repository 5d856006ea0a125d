package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nestedSettings struct {
	Host string `settings:"host"`
}

type schemaSettings struct {
	Port       int               `settings:"port,required"`
	Name       string            `settings:"name" alias:"SERVICE_NAME"`
	Region     string            `settings:"region" validation_alias:"REGION"`
	Timeout    time.Duration     `settings:"timeout"`
	StartedAt  time.Time         `settings:"started_at"`
	Key        []byte            `settings:"key"`
	Tags       []string          `settings:"tags"`
	Limits     [2]int            `settings:"limits"`
	Labels     map[string]string `settings:"labels"`
	Database   nestedSettings    `settings:"database"`
	Replica    *nestedSettings   `settings:"replica"`
	Untagged   string
	Skipped    string `settings:"-"`
	unexported string
}

// ── FromStruct ────────────────────────────────────────────────────────────────

// TestFromStruct_Fields verifies that every exported, non-skipped field is
// described in declaration order with its tags and kind.
func TestFromStruct_Fields(t *testing.T) {
	schema, err := FromStruct(&schemaSettings{})
	require.NoError(t, err)

	want := []Field{
		{Name: "port", Kind: KindScalar, Required: true},
		{Name: "name", Alias: "SERVICE_NAME", Kind: KindScalar},
		{Name: "region", ValidationAlias: "REGION", Kind: KindScalar},
		{Name: "timeout", Kind: KindScalar},
		{Name: "started_at", Kind: KindScalar},
		{Name: "key", Kind: KindScalar},
		{Name: "tags", Kind: KindSequence},
		{Name: "limits", Kind: KindSequence},
		{Name: "labels", Kind: KindMapping},
		{Name: "database", Kind: KindMapping},
		{Name: "replica", Kind: KindMapping},
		{Name: "Untagged", Kind: KindScalar},
	}
	assert.Equal(t, want, schema.Fields)
}

// TestFromStruct_RejectsNonPointer verifies that a struct value is rejected.
func TestFromStruct_RejectsNonPointer(t *testing.T) {
	_, err := FromStruct(schemaSettings{})
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

// TestFromStruct_RejectsNilPointer verifies that a nil pointer is rejected.
func TestFromStruct_RejectsNilPointer(t *testing.T) {
	var s *schemaSettings
	_, err := FromStruct(s)
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

// TestFromStruct_RejectsPointerToNonStruct verifies that a pointer to a
// non-struct type is rejected.
func TestFromStruct_RejectsPointerToNonStruct(t *testing.T) {
	n := 1
	_, err := FromStruct(&n)
	assert.ErrorIs(t, err, ErrInvalidSchema)
}

// ── Field ─────────────────────────────────────────────────────────────────────

// TestField_Key verifies the resolution order alias > validation alias > name.
func TestField_Key(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"name only", Field{Name: "port"}, "port"},
		{"alias", Field{Name: "port", Alias: "PORT_NUMBER"}, "PORT_NUMBER"},
		{"validation alias", Field{Name: "port", ValidationAlias: "listen_port"}, "listen_port"},
		{"alias wins", Field{Name: "port", Alias: "a", ValidationAlias: "b"}, "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.field.Key())
		})
	}
}

// TestField_IsComplex verifies that only mappings and sequences are complex.
func TestField_IsComplex(t *testing.T) {
	assert.False(t, Field{Kind: KindScalar}.IsComplex())
	assert.True(t, Field{Kind: KindMapping}.IsComplex())
	assert.True(t, Field{Kind: KindSequence}.IsComplex())
}

// TestKind_String verifies the kind names.
func TestKind_String(t *testing.T) {
	assert.Equal(t, "scalar", KindScalar.String())
	assert.Equal(t, "mapping", KindMapping.String())
	assert.Equal(t, "sequence", KindSequence.String())
}

// ── Schema.Field ──────────────────────────────────────────────────────────────

// TestSchema_Field verifies lookup by resolved key and by declared name.
func TestSchema_Field(t *testing.T) {
	schema := Schema{Fields: []Field{
		{Name: "port"},
		{Name: "name", Alias: "SERVICE_NAME"},
	}}

	f, ok := schema.Field("SERVICE_NAME")
	require.True(t, ok)
	assert.Equal(t, "name", f.Name)

	f, ok = schema.Field("name")
	require.True(t, ok)
	assert.Equal(t, "SERVICE_NAME", f.Key())

	_, ok = schema.Field("missing")
	assert.False(t, ok)
}
