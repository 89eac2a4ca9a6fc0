package dsl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	reify "github.com/reifylab/reify"
	"github.com/reifylab/reify/dsl"
)

func TestDict(t *testing.T) {
	p := dsl.Dict(dsl.DictOptions{Value: dsl.Number()})

	out, err := p.Parse(map[string]any{"a": "1", "b": 2.5})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"a": 1.0, "b": 2.5}, out)

	out, err = p.Parse(map[string]any{})
	require.NoError(t, err)
	assert.Empty(t, out)

	_, err = p.Parse([]any{})
	require.Error(t, err)
	assert.Equal(t, "Invalid object, got array", err.Error())
}

func TestDict_ValueErrors(t *testing.T) {
	p := dsl.Dict(dsl.DictOptions{Value: dsl.Number()})

	_, err := p.Parse(map[string]any{"price": true})
	require.Error(t, err)
	assert.Equal(t, `Invalid number "price", got boolean (true/false) in value`, err.Error())

	_, err = p.Parse(map[string]any{"price": true}, reify.Context{Name: "rates"})
	require.Error(t, err)
	assert.Equal(t, `Invalid number "rates.price", got boolean (true/false) in value`, err.Error())
}

func TestDict_KeyErrors(t *testing.T) {
	p := dsl.Dict(dsl.DictOptions{
		Key:   dsl.String(dsl.StringOptions{MinLength: reify.Ptr(2)}),
		Value: dsl.Number(),
	})

	_, err := p.Parse(map[string]any{"a": 1.0})
	require.Error(t, err)
	assert.Equal(t, `Invalid string "a", minLength should be 2, got "a" in key`, err.Error())
}

func TestDict_DeterministicFirstFailure(t *testing.T) {
	p := dsl.Dict(dsl.DictOptions{Value: dsl.Number()})

	// keys are visited sorted, so "aa" is always reported before "zz"
	for i := 0; i < 10; i++ {
		_, err := p.Parse(map[string]any{"zz": true, "aa": true})
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"aa"`)
	}
}

func TestDict_Type(t *testing.T) {
	p := dsl.Dict(dsl.DictOptions{Value: dsl.Boolean()})
	assert.Equal(t, "{ [key: string]: boolean }", p.Type())
}

func TestDict_RequiresValueParser(t *testing.T) {
	assert.Panics(t, func() { dsl.Dict(dsl.DictOptions{}) })
}

func TestRecord_Alias(t *testing.T) {
	p := dsl.Record(dsl.DictOptions{Value: dsl.String()})
	out, err := p.Parse(map[string]any{"k": "v"})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": "v"}, out)
}
