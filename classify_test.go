package reify_test

import (
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	reify "github.com/reifylab/reify"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		in   any
		want reify.Kind
	}{
		{nil, reify.KindNull},
		{math.NaN(), reify.KindNaN},
		{float32(math.NaN()), reify.KindNaN},
		{true, reify.KindBool},
		{3.14, reify.KindNumber},
		{int64(7), reify.KindNumber},
		{uint8(7), reify.KindNumber},
		{json.Number("12"), reify.KindNumber},
		{"hi", reify.KindString},
		{[]any{1}, reify.KindArray},
		{[]string{"a"}, reify.KindArray},
		{map[string]any{}, reify.KindObject},
		{map[string]int{}, reify.KindObject},
		{struct{}{}, reify.KindObject},
		{time.Now(), reify.KindDate},
		{func() {}, reify.KindOther},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, reify.Classify(tt.in), "Classify(%#v)", tt.in)
	}
}

func TestTypeName(t *testing.T) {
	assert.Equal(t, "null", reify.TypeName(nil))
	assert.Equal(t, "NaN", reify.TypeName(math.NaN()))
	assert.Equal(t, "boolean (true/false)", reify.TypeName(false))
	assert.Equal(t, "number", reify.TypeName(1.5))
	assert.Equal(t, "string", reify.TypeName("x"))
	assert.Equal(t, "empty string", reify.TypeName(""))
	assert.Equal(t, "array", reify.TypeName([]any{}))
	assert.Equal(t, "object", reify.TypeName(map[string]any{}))
	assert.Equal(t, "date", reify.TypeName(time.Now()))
}

func TestAsNumber(t *testing.T) {
	f, ok := reify.AsNumber(int32(-9))
	assert.True(t, ok)
	assert.Equal(t, -9.0, f)

	f, ok = reify.AsNumber(json.Number("2.5"))
	assert.True(t, ok)
	assert.Equal(t, 2.5, f)

	_, ok = reify.AsNumber("42")
	assert.False(t, ok, "numeric strings are a parser policy, not a number")
	_, ok = reify.AsNumber(nil)
	assert.False(t, ok)
}
