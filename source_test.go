package reify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reify "github.com/reifylab/reify"
	"github.com/reifylab/reify/dsl"
)

func TestParseFrom_JSONBytes(t *testing.T) {
	schema := dsl.Object().
		Field("name", dsl.String()).
		Field("age", dsl.Int()).
		Build()

	out, err := reify.ParseFrom(schema, reify.JSONBytes([]byte(`{"name":"ada","age":36,"extra":true}`)))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"name": "ada", "age": int64(36)}, out)
}

func TestParseFrom_JSONBytesDecodeFailure(t *testing.T) {
	_, err := reify.ParseFrom(dsl.String(), reify.JSONBytes([]byte(`{oops`)))
	require.Error(t, err)

	ie, ok := reify.AsInvalidInput(err)
	require.True(t, ok)
	assert.Equal(t, reify.StatusBadRequest, ie.StatusCode)
	assert.Contains(t, ie.Message, "Invalid JSON")
}

func TestParseFrom_YAMLBytes(t *testing.T) {
	schema := dsl.Object().
		Field("host", dsl.String()).
		Field("port", dsl.Int()).
		Build()

	out, err := reify.ParseFrom(schema, reify.YAMLBytes([]byte("host: localhost\nport: 8080\n")))
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"host": "localhost", "port": int64(8080)}, out)

	_, err = reify.ParseFrom(schema, reify.YAMLBytes([]byte("{host: [")))
	require.Error(t, err)
	ie, ok := reify.AsInvalidInput(err)
	require.True(t, ok)
	assert.Contains(t, ie.Message, "Invalid YAML")
}

func TestParseFrom_JSONPath(t *testing.T) {
	doc := []byte(`{"req":{"body":{"username":true,"tags":["a","b"]}}}`)

	// the path becomes the root name in error messages
	_, err := reify.ParseFrom(dsl.String(), reify.JSONPath(doc, "req.body.username"))
	require.Error(t, err)
	assert.Equal(t, `Invalid string "req.body.username", got boolean (true/false)`, err.Error())

	out, err := reify.ParseFrom(dsl.Array(dsl.String()), reify.JSONPath(doc, "req.body.tags"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, out)

	_, err = reify.ParseFrom(dsl.String(), reify.JSONPath(doc, "req.body.missing"))
	require.Error(t, err)
	assert.Equal(t, `Invalid value "req.body.missing", got null`, err.Error())
}

func TestParseFrom_ExplicitContextWinsOverPathName(t *testing.T) {
	doc := []byte(`{"a":true}`)
	_, err := reify.ParseFrom(dsl.String(), reify.JSONPath(doc, "a"), reify.Context{Name: "field"})
	require.Error(t, err)
	assert.Equal(t, `Invalid string "field", got boolean (true/false)`, err.Error())
}

func TestSafeParseAndIs(t *testing.T) {
	p := dsl.Int()

	out, ok := reify.SafeParse(p, "42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), out)

	_, ok = reify.SafeParse(p, "4.2")
	assert.False(t, ok)

	assert.True(t, reify.Is(p, 7))
	assert.False(t, reify.Is(p, "seven"))
}
