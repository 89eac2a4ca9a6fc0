package dsl

import (
	"math/rand"
	"strings"

	reify "github.com/reifylab/reify"
)

// Literal accepts exactly the given value and nothing else. Its type
// signature is the JSON rendering of the value, e.g. `"guest"` or `42`.
func Literal[T comparable](want T) *reify.Parser[T] {
	typ := reify.JSONString(want)
	fn := func(v any, ctx reify.Context) (T, error) {
		var zero T
		if !equalLoose(v, want) {
			return zero, raise(ctx, typ, "got "+reify.TypeName(v))
		}
		return want, nil
	}
	fixed := func() T { return want }
	return reify.NewParser(typ, fn).WithSamples(fixed, fixed)
}

// ValuesOptions configures the enum parser.
type ValuesOptions[T comparable] struct {
	Sample reify.SampleOptions[T]
}

// Values accepts any member of the allowed set. The type signature is the
// literal union of the members, e.g. `"x" | "y"`.
func Values[T comparable](allowed []T, opts ...ValuesOptions[T]) *reify.Parser[T] {
	if len(allowed) == 0 {
		panic("dsl: Values requires at least one allowed value")
	}
	var opt ValuesOptions[T]
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}

	fn := func(v any, ctx reify.Context) (T, error) {
		for _, a := range allowed {
			if equalLoose(v, a) {
				return a, nil
			}
		}
		var zero T
		return zero, raise(ctx, "value", valuesReason(anySlice(allowed), v))
	}

	sample, random := reify.ResolveSamples(opt.Sample,
		func() T { return allowed[0] },
		func() T { return allowed[rand.Intn(len(allowed))] },
	)
	return reify.NewParser(valuesSignature(anySlice(allowed)), fn).WithSamples(sample, random)
}

// Enums is an alias for Values.
func Enums[T comparable](allowed []T, opts ...ValuesOptions[T]) *reify.Parser[T] {
	return Values(allowed, opts...)
}

// valuesAny is the dynamically-typed enum used by sample inference, where the
// member type is only known at runtime.
func valuesAny(allowed []any) *reify.Parser[any] {
	fn := func(v any, ctx reify.Context) (any, error) {
		for _, a := range allowed {
			if equalLoose(v, a) {
				return a, nil
			}
		}
		return nil, raise(ctx, "value", valuesReason(allowed, v))
	}
	sample := func() any { return allowed[0] }
	random := func() any { return allowed[rand.Intn(len(allowed))] }
	return reify.NewParser(valuesSignature(allowed), fn).WithSamples(sample, random)
}

func valuesReason(allowed []any, got any) string {
	return "should be one of " + reify.JSONString(allowed) + ", got " + reify.JSONString(got)
}

func valuesSignature(allowed []any) string {
	parts := make([]string, len(allowed))
	for i, a := range allowed {
		parts[i] = reify.JSONString(a)
	}
	return strings.Join(parts, " | ")
}

func anySlice[T any](in []T) []any {
	out := make([]any, len(in))
	for i := range in {
		out[i] = in[i]
	}
	return out
}
