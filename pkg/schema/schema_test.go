package schema_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/llmtools/pkg/llmutils"
	"github.com/effective-security/llmtools/pkg/schema"
	"github.com/invopop/jsonschema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type SearchType string

// Search represents a search request with various parameters.
type Search struct {
	Query string     `json:"query" jsonschema:"title=Query,description=Query to search for relevant content"`
	Type  SearchType `json:"type,omitempty" jsonschema:"enum=web,enum=image"`
	Args  []*KVPair  `json:"args,omitempty"`
}

// KVPair represents a key-value pair.
type KVPair struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type node struct {
	Name     string  `json:"name"`
	Children []*node `json:"children"`
}

type withFunc struct {
	Name string       `json:"name"`
	Fn   func() error `json:"fn"`
}

type withIgnoredFunc struct {
	Name string       `json:"name"`
	Fn   func() error `json:"-"`
}

func TestForType_Basic(t *testing.T) {
	t.Parallel()

	tcases := []struct {
		v   any
		exp string
	}{
		{v: "", exp: `{"type":"string"}`},
		{v: 0, exp: `{"type":"integer"}`},
		{v: uint8(0), exp: `{"type":"integer"}`},
		{v: 1.5, exp: `{"type":"number"}`},
		{v: true, exp: `{"type":"boolean"}`},
		{v: []string{}, exp: `{"items":{"type":"string"},"type":"array"}`},
		{v: map[string]int{}, exp: `{"additionalProperties":{"type":"integer"},"type":"object"}`},
		{v: time.Time{}, exp: `{"type":"string","format":"date-time"}`},
	}
	for _, tc := range tcases {
		s, err := schema.ForType(reflect.TypeOf(tc.v))
		require.NoError(t, err)
		assert.Equal(t, tc.exp, llmutils.ToJSON(s), "%T", tc.v)
	}

	// pointer is described by its element
	str := "x"
	s, err := schema.ForType(reflect.TypeOf(&str))
	require.NoError(t, err)
	assert.Equal(t, "string", s.Type)
}

func TestForType_Struct(t *testing.T) {
	t.Parallel()

	s, err := schema.ForType(reflect.TypeOf(Search{}))
	require.NoError(t, err)
	assert.Equal(t, "object", s.Type)
	assert.Empty(t, s.Definitions)
	assert.Empty(t, s.Version)
	assert.Equal(t, []string{"query"}, s.Required)

	query, ok := s.Properties.Get("query")
	require.True(t, ok)
	assert.Equal(t, "Query to search for relevant content", query.Description)

	typ, ok := s.Properties.Get("type")
	require.True(t, ok)
	assert.Equal(t, []any{"web", "image"}, typ.Enum)

	args, ok := s.Properties.Get("args")
	require.True(t, ok)
	require.NotNil(t, args.Items)
	assert.Equal(t, "object", args.Items.Type)
	assert.Empty(t, args.Items.Ref)

	// cached
	s2, err := schema.ForType(reflect.TypeOf(Search{}))
	require.NoError(t, err)
	assert.Same(t, s, s2)
}

func TestForType_Interface(t *testing.T) {
	t.Parallel()

	s, err := schema.ForType(reflect.TypeOf((*context.Context)(nil)).Elem())
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, "true", llmutils.ToJSON(s))
}

func TestForType_Unsupported(t *testing.T) {
	t.Parallel()

	for _, v := range []any{
		func() {},
		make(chan int),
		complex(1, 2),
		node{},
		withFunc{},
		[]func(){},
	} {
		_, err := schema.ForType(reflect.TypeOf(v))
		assert.True(t, errors.Is(err, schema.ErrUnsupportedType), "%T", v)
	}

	_, err := schema.ForType(nil)
	assert.True(t, errors.Is(err, schema.ErrUnsupportedType))

	s, err := schema.ForType(reflect.TypeOf(withIgnoredFunc{}))
	require.NoError(t, err)
	assert.Equal(t, 1, s.Properties.Len())
}

func TestWithDescription(t *testing.T) {
	t.Parallel()

	s := &jsonschema.Schema{Type: "string"}
	assert.Same(t, s, schema.WithDescription(s, ""))
	assert.Nil(t, schema.WithDescription(nil, "desc"))

	d := schema.WithDescription(s, "City name")
	assert.Equal(t, "City name", d.Description)
	assert.Equal(t, "string", d.Type)
	assert.Empty(t, s.Description)
}

func TestObject(t *testing.T) {
	t.Parallel()

	// properties are kept for functions without arguments
	o := schema.Object(nil, nil)
	assert.Equal(t, `{"properties":{},"type":"object"}`, llmutils.ToJSON(o))

	props := jsonschema.NewProperties()
	props.Set("city", &jsonschema.Schema{Type: "string"})
	props.Set("days", &jsonschema.Schema{Type: "integer"})
	o = schema.Object(props, []string{"city", "days"})
	assert.Equal(t, `{"properties":{"city":{"type":"string"},"days":{"type":"integer"}},"type":"object","required":["city","days"]}`, llmutils.ToJSON(o))

	m, err := schema.ToMap(o)
	require.NoError(t, err)
	assert.Equal(t, "object", m["type"])
	assert.Len(t, m["properties"], 2)

	m, err = schema.ToMap(nil)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestFromAny(t *testing.T) {
	t.Parallel()

	s := schema.MustFromAny(map[string]any{
		"type": "string",
		"enum": []string{"metric", "imperial"},
	})
	assert.Equal(t, "string", s.Type)
	assert.Equal(t, []any{"metric", "imperial"}, s.Enum)

	_, err := schema.FromAny(make(chan int))
	assert.Error(t, err)
	assert.Panics(t, func() {
		schema.MustFromAny(func() {})
	})
}
