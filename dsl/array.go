package dsl

import (
	"fmt"
	"math/rand"

	reify "github.com/reifylab/reify"
)

// ArrayOptions configures array combinators.
type ArrayOptions struct {
	// MinLength/MaxLength bound the element count.
	MinLength *int
	MaxLength *int
	// MaybeSingle wraps a non-array input in a one-element array before
	// validating. Query-string decoders yield a scalar when a key appears
	// once; this option absorbs that.
	MaybeSingle bool
}

// Array maps every element of a list through the element parser. An element
// failure is reported as "array of <type>" with an "in array" suffix; the
// element index is deliberately not part of the message.
func Array[E any](elem *reify.Parser[E], opts ...ArrayOptions) *reify.Parser[[]E] {
	var opt ArrayOptions
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}

	fn := func(v any, ctx reify.Context) ([]E, error) {
		list, err := arrayShape(v, ctx, opt)
		if err != nil {
			return nil, err
		}
		child := ctx.PushTypePrefix("array of").PushReasonSuffix("in array")
		out := make([]E, 0, len(list))
		for _, item := range list {
			ev, perr := elem.Parse(item, child)
			if perr != nil {
				return nil, perr
			}
			out = append(out, ev)
		}
		return out, nil
	}

	sample := func() []E { return []E{elem.SampleValue()} }
	random := func() []E {
		n := randomLength(opt)
		out := make([]E, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, elem.RandomSample())
		}
		return out
	}
	return reify.NewParser("", fn).
		WithType(func() string { return "Array<" + elem.Type() + ">" }).
		WithSamples(sample, random)
}

// ArrayOf is the type-erased variant of Array for element parsers only known
// at runtime (sample inference, heterogeneous trees).
func ArrayOf(elem reify.AnyParser, opts ...ArrayOptions) *reify.Parser[[]any] {
	var opt ArrayOptions
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}

	fn := func(v any, ctx reify.Context) ([]any, error) {
		list, err := arrayShape(v, ctx, opt)
		if err != nil {
			return nil, err
		}
		child := ctx.PushTypePrefix("array of").PushReasonSuffix("in array")
		out := make([]any, 0, len(list))
		for _, item := range list {
			ev, perr := elem.ParseAny(item, child)
			if perr != nil {
				return nil, perr
			}
			out = append(out, ev)
		}
		return out, nil
	}

	sample := func() []any { return []any{elem.SampleAny()} }
	random := func() []any {
		n := randomLength(opt)
		out := make([]any, 0, n)
		for i := 0; i < n; i++ {
			out = append(out, elem.RandomAny())
		}
		return out
	}
	return reify.NewParser("", fn).
		WithType(func() string { return "Array<" + reify.ParserTypeOf(elem) + ">" }).
		WithSamples(sample, random)
}

// arrayShape normalizes the input into a []any, applying MaybeSingle and the
// length bounds.
func arrayShape(v any, ctx reify.Context, opt ArrayOptions) ([]any, error) {
	var list []any
	if reify.Classify(v) == reify.KindArray {
		switch t := v.(type) {
		case []any:
			list = t
		default:
			// typed slices from non-JSON callers
			list = anySliceReflect(v)
		}
	} else if opt.MaybeSingle {
		list = []any{v}
	} else {
		return nil, raise(ctx, "array", "got "+reify.TypeName(v))
	}
	if opt.MinLength != nil && len(list) < *opt.MinLength {
		return nil, raise(ctx, "array", fmt.Sprintf("minLength should be %d, got %d", *opt.MinLength, len(list)))
	}
	if opt.MaxLength != nil && len(list) > *opt.MaxLength {
		return nil, raise(ctx, "array", fmt.Sprintf("maxLength should be %d, got %d", *opt.MaxLength, len(list)))
	}
	return list, nil
}

func randomLength(opt ArrayOptions) int {
	lo, hi := 1, 3
	if opt.MinLength != nil {
		lo = *opt.MinLength
		hi = lo + 2
	}
	if opt.MaxLength != nil && hi > *opt.MaxLength {
		hi = *opt.MaxLength
	}
	if hi <= lo {
		return lo
	}
	return lo + rand.Intn(hi-lo+1)
}

// SingletonArray models a field value arriving pre-wrapped in a one-element
// list (multipart/form-data): it validates a one-element array and unwraps
// the sole element.
func SingletonArray[E any](elem *reify.Parser[E]) *reify.Parser[E] {
	one := 1
	inner := Array(elem, ArrayOptions{MinLength: &one, MaxLength: &one})

	fn := func(v any, ctx reify.Context) (E, error) {
		list, err := inner.Parse(v, ctx)
		if err != nil {
			var zero E
			return zero, err
		}
		return list[0], nil
	}
	sample := func() E { return elem.SampleValue() }
	random := func() E { return elem.RandomSample() }
	return reify.NewParser("", fn).
		WithType(elem.Type).
		WithSamples(sample, random)
}
