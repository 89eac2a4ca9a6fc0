package dsl

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	reify "github.com/reifylab/reify"
)

// BooleanOptions configures the boolean parser.
type BooleanOptions struct {
	// Expect asserts the coerced value equals this exact boolean.
	Expect *bool

	Sample reify.SampleOptions[bool]
}

// Boolean coerces any value to a boolean by truthiness, with three
// form-friendly overrides: the string "false" is false, the string "on" is
// true, and whitespace-only strings are false.
func Boolean(opts ...BooleanOptions) *reify.Parser[bool] {
	var opt BooleanOptions
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}

	fn := func(v any, ctx reify.Context) (bool, error) {
		b := truthy(v)
		if opt.Expect != nil && b != *opt.Expect {
			return false, raise(ctx, "boolean", fmt.Sprintf("should be %t, got %t", *opt.Expect, b))
		}
		return b, nil
	}

	sample, random := reify.ResolveSamples(opt.Sample,
		func() bool {
			if opt.Expect != nil {
				return *opt.Expect
			}
			return true
		},
		func() bool {
			if opt.Expect != nil {
				return *opt.Expect
			}
			return rand.Intn(2) == 0
		},
	)
	return reify.NewParser("boolean", fn).WithSamples(sample, random)
}

func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		switch t {
		case "false":
			return false
		case "on":
			return true
		}
		return strings.TrimSpace(t) != ""
	default:
		if f, ok := reify.AsNumber(v); ok {
			return f != 0 && !math.IsNaN(f)
		}
		return true
	}
}

// CheckboxOptions configures the checkbox parser.
type CheckboxOptions struct {
	Sample reify.SampleOptions[bool]
}

// Checkbox models an HTML checkbox submission: "on" is true, absence (nil or
// the empty string) is false, and anything else is rejected. The returned
// parser is tagged so object fields default to false when the key is missing.
func Checkbox(opts ...CheckboxOptions) *reify.Parser[bool] {
	var opt CheckboxOptions
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}

	fn := func(v any, ctx reify.Context) (bool, error) {
		switch {
		case v == nil:
			return false, nil
		case v == "":
			return false, nil
		case v == "on":
			return true, nil
		default:
			return false, raise(ctx, "checkbox", "got "+reify.TypeName(v))
		}
	}

	sample, random := reify.ResolveSamples(opt.Sample,
		func() bool { return true },
		func() bool { return rand.Intn(2) == 0 },
	)
	return reify.NewParser("boolean", fn).WithSamples(sample, random).WithTag(reify.TagCheckbox)
}
