package dsl

import (
	"reflect"

	reify "github.com/reifylab/reify"
)

// raise builds the InvalidInputError for a failed parse at the current
// context. Every primitive and combinator fails through here.
func raise(ctx reify.Context, expectedType, reason string) error {
	return reify.NewInvalidInput(ctx, expectedType, reason)
}

// anySliceReflect converts a typed slice into []any. JSON decoding always
// yields []any; this covers values handed in directly by Go callers.
func anySliceReflect(v any) []any {
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// equalLoose compares an input value with an expected value, bridging the
// numeric representations different decoders produce (float64 vs int vs
// json.Number) before falling back to deep equality.
func equalLoose(v, want any) bool {
	if vf, ok := reify.AsNumber(v); ok {
		if wf, ok := reify.AsNumber(want); ok {
			return vf == wf
		}
		return false
	}
	return reflect.DeepEqual(v, want)
}
