package dsl

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"strings"

	reify "github.com/reifylab/reify"
)

// StringOptions configures the string parser. All fields are independently
// optional.
type StringOptions struct {
	// Trim strips surrounding whitespace before validating. Default true.
	Trim *bool
	// NonEmpty rejects the empty string (after trimming).
	NonEmpty bool
	// MinLength/MaxLength bound the length in bytes.
	MinLength *int
	MaxLength *int
	// Match requires the value to match the pattern.
	Match *regexp.Regexp

	Sample reify.SampleOptions[string]
}

var sampleWords = []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot"}

// String accepts strings and stringifies numbers. Everything else, including
// NaN, is rejected with the input's type name.
func String(opts ...StringOptions) *reify.Parser[string] {
	var opt StringOptions
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	trim := opt.Trim == nil || *opt.Trim

	fn := func(v any, ctx reify.Context) (string, error) {
		var s string
		switch reify.Classify(v) {
		case reify.KindString:
			s = v.(string)
		case reify.KindNumber:
			f, _ := reify.AsNumber(v)
			s = strconv.FormatFloat(f, 'f', -1, 64)
		default:
			return "", raise(ctx, "string", "got "+reify.TypeName(v))
		}
		if trim {
			s = strings.TrimSpace(s)
		}
		if opt.NonEmpty && s == "" {
			return "", raise(ctx, "string", "got empty string")
		}
		if opt.MinLength != nil && len(s) < *opt.MinLength {
			return "", raise(ctx, "string", fmt.Sprintf("minLength should be %d, got %s", *opt.MinLength, reify.JSONString(s)))
		}
		if opt.MaxLength != nil && len(s) > *opt.MaxLength {
			return "", raise(ctx, "string", fmt.Sprintf("maxLength should be %d, got %s", *opt.MaxLength, reify.JSONString(s)))
		}
		if opt.Match != nil && !opt.Match.MatchString(s) {
			return "", raise(ctx, "string", fmt.Sprintf("should match %s, got %s", opt.Match, reify.JSONString(s)))
		}
		return s, nil
	}

	sample, random := reify.ResolveSamples(opt.Sample,
		func() string { return "text" },
		func() string { return sampleWords[rand.Intn(len(sampleWords))] },
	)
	return reify.NewParser("string", fn).WithSamples(sample, random)
}

// ColorOptions configures the color parser.
type ColorOptions struct {
	Sample reify.SampleOptions[string]
}

var colorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Color accepts six-digit hex color strings like "#1a2b3c".
func Color(opts ...ColorOptions) *reify.Parser[string] {
	var opt ColorOptions
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}

	inner := String(StringOptions{NonEmpty: true})
	fn := func(v any, ctx reify.Context) (string, error) {
		s, err := inner.Parse(v, ctx.WithOverrideType("color"))
		if err != nil {
			return "", err
		}
		if !colorPattern.MatchString(s) {
			return "", raise(ctx, "color", fmt.Sprintf("should look like #rrggbb, got %s", reify.JSONString(s)))
		}
		return s, nil
	}

	sample, random := reify.ResolveSamples(opt.Sample,
		func() string { return "#336699" },
		func() string { return fmt.Sprintf("#%06x", uint32(rand.Intn(0x1000000))) },
	)
	return reify.NewParser("string", fn).WithSamples(sample, random)
}
