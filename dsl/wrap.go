package dsl

import (
	"math/rand"

	reify "github.com/reifylab/reify"
)

// Optional tags a parser so the object combinator tolerates the field's
// absence (and treats null as absence). The tag lives on a new wrapper value;
// the wrapped parser is never mutated. Outside an object, an optional parser
// behaves exactly like the parser it wraps.
func Optional[T any](p *reify.Parser[T]) *reify.Parser[T] {
	return p.WithTag(reify.TagOptional)
}

// OptionalAny is the type-erased variant of Optional.
func OptionalAny(p reify.AnyParser) reify.AnyParser {
	return p.Retag(reify.TagOptional)
}

// Nullable passes null through as the value nil and delegates everything else
// to the wrapped parser, reporting failures as "nullable <type>".
func Nullable[T any](p *reify.Parser[T]) *reify.Parser[any] {
	return NullableAny(p)
}

// NullableAny is the type-erased variant of Nullable.
func NullableAny(p reify.AnyParser) *reify.Parser[any] {
	fn := func(v any, ctx reify.Context) (any, error) {
		if reify.Classify(v) == reify.KindNull {
			return nil, nil
		}
		return p.ParseAny(v, ctx.PushTypePrefix("nullable"))
	}
	sample := func() any { return p.SampleAny() }
	random := func() any {
		if rand.Intn(4) == 0 {
			return nil
		}
		return p.RandomAny()
	}
	return reify.NewParser("", fn).
		WithType(func() string { return "null | " + reify.ParserTypeOf(p) }).
		WithSamples(sample, random)
}
