package dsl

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	reify "github.com/reifylab/reify"
)

// NumberOptions configures numeric coercion and validation.
type NumberOptions struct {
	// Min/Max bound the value (inclusive).
	Min *float64
	Max *float64
	// Readable enables human-written number parsing for strings that plain
	// parsing rejects: magnitude suffixes ("3.5k"), thousand separators
	// ("123,456.00"). Default true.
	Readable *bool
	// Locale selects the decimal-separator convention for readable parsing.
	// Defaults to "en" ("." decimal, "," thousands).
	Locale string
	// RoundFloats corrects binary float representation error to the nearest
	// short decimal (0.30000000000000004 becomes 0.3).
	RoundFloats bool

	Sample reify.SampleOptions[float64]
}

// decimalSeparators records the decimal-separator convention per locale tag.
// An explicit table keeps readable parsing independent of the host runtime's
// locale support.
var decimalSeparators = map[string]string{
	"en": ".", "en-US": ".", "en-GB": ".", "ja": ".", "zh": ".", "ko": ".",
	"de": ",", "fr": ",", "es": ",", "it": ",", "pt": ",", "nl": ",",
	"ru": ",", "pl": ",", "sv": ",", "tr": ",",
}

// magnitudeUnits maps readable magnitude suffixes to multipliers.
var magnitudeUnits = map[byte]float64{
	'k': 1e3, 'm': 1e6, 'b': 1e9, 't': 1e12,
}

// Number accepts numeric values and numeric strings. String coercion tries a
// plain parse first, then readable mode when enabled.
func Number(opts ...NumberOptions) *reify.Parser[float64] {
	var opt NumberOptions
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	fn := numberParseFunc(opt, "number")
	sample, random := reify.ResolveSamples(opt.Sample,
		func() float64 { return 3.14 },
		func() float64 { return randomInRange(opt.Min, opt.Max) },
	)
	return reify.NewParser("number", fn).WithSamples(sample, random)
}

func numberParseFunc(opt NumberOptions, expected string) func(any, reify.Context) (float64, error) {
	readable := opt.Readable == nil || *opt.Readable
	locale := opt.Locale
	if locale == "" {
		locale = "en"
	}
	return func(v any, ctx reify.Context) (float64, error) {
		var f float64
		switch reify.Classify(v) {
		case reify.KindNumber:
			f, _ = reify.AsNumber(v)
		case reify.KindString:
			s := strings.TrimSpace(v.(string))
			if s == "" {
				return 0, raise(ctx, expected, "got empty string")
			}
			parsed, err := strconv.ParseFloat(s, 64)
			if err != nil {
				if !readable {
					return 0, raise(ctx, expected, "got string")
				}
				var ok bool
				parsed, ok = parseReadableNumber(s, locale)
				if !ok {
					return 0, raise(ctx, expected, "got string")
				}
			}
			f = parsed
		default:
			return 0, raise(ctx, expected, "got "+reify.TypeName(v))
		}
		if math.IsNaN(f) {
			return 0, raise(ctx, expected, "got NaN")
		}
		if opt.RoundFloats {
			f = roundFloatError(f)
		}
		if opt.Min != nil && f < *opt.Min {
			return 0, raise(ctx, expected, fmt.Sprintf("should be at least %s, got %s", formatNumber(*opt.Min), formatNumber(f)))
		}
		if opt.Max != nil && f > *opt.Max {
			return 0, raise(ctx, expected, fmt.Sprintf("should be at most %s, got %s", formatNumber(*opt.Max), formatNumber(f)))
		}
		return f, nil
	}
}

// parseReadableNumber handles numbers the way people write them: spaces and
// hyphens stripped, locale-dependent thousand separators removed, and a
// trailing magnitude unit (k/m/b/t, case-insensitive) applied. Strings that
// remain non-numeric after all of that are a hard failure.
func parseReadableNumber(s, locale string) (float64, bool) {
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	if s == "" {
		return 0, false
	}
	dec, ok := decimalSeparators[locale]
	if !ok {
		dec = "."
	}
	if dec == "," {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else {
		s = strings.ReplaceAll(s, ",", "")
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f, true
	}
	unit := s[len(s)-1] | 0x20 // lowercase ASCII
	mult, ok := magnitudeUnits[unit]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(s[:len(s)-1], 64)
	if err != nil {
		return 0, false
	}
	return f * mult, true
}

// roundFloatError snaps f to the nearest representable short decimal by a
// round-trip through 12 significant digits.
func roundFloatError(f float64) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(f, 'g', 12, 64), 64)
	if err != nil {
		return f
	}
	return r
}

func formatNumber(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func randomInRange(min, max *float64) float64 {
	lo, hi := 0.0, 1000.0
	if min != nil {
		lo = *min
		hi = lo + 1000
	}
	if max != nil {
		hi = *max
	}
	if hi <= lo {
		return lo
	}
	return lo + rand.Float64()*(hi-lo)
}

// IntOptions configures the integer parser.
type IntOptions struct {
	Min      *int64
	Max      *int64
	Readable *bool
	Locale   string

	Sample reify.SampleOptions[int64]
}

// Int accepts everything Number does and additionally requires the value to
// be integral.
func Int(opts ...IntOptions) *reify.Parser[int64] {
	var opt IntOptions
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	nopt := NumberOptions{Readable: opt.Readable, Locale: opt.Locale}
	if opt.Min != nil {
		nopt.Min = reify.Ptr(float64(*opt.Min))
	}
	if opt.Max != nil {
		nopt.Max = reify.Ptr(float64(*opt.Max))
	}
	inner := numberParseFunc(nopt, "int")

	fn := func(v any, ctx reify.Context) (int64, error) {
		f, err := inner(v, ctx)
		if err != nil {
			return 0, err
		}
		if f != math.Trunc(f) {
			return 0, raise(ctx, "int", "got floating point number")
		}
		return int64(f), nil
	}

	sample, random := reify.ResolveSamples(opt.Sample,
		func() int64 { return 42 },
		func() int64 {
			lo, hi := int64(0), int64(1000)
			if opt.Min != nil {
				lo = *opt.Min
				hi = lo + 1000
			}
			if opt.Max != nil {
				hi = *opt.Max
			}
			if hi <= lo {
				return lo
			}
			return lo + rand.Int63n(hi-lo+1)
		},
	)
	return reify.NewParser("int", fn).WithSamples(sample, random)
}

// FloatOptions configures the float parser.
type FloatOptions struct {
	Min      *float64
	Max      *float64
	Readable *bool
	Locale   string
	// ToFixed rounds to n decimal places after coercion.
	ToFixed *int
	// ToPrecision rounds to n significant digits after coercion.
	ToPrecision *int

	Sample reify.SampleOptions[float64]
}

// Float accepts everything Number does and applies optional post-rounding.
func Float(opts ...FloatOptions) *reify.Parser[float64] {
	var opt FloatOptions
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	inner := numberParseFunc(NumberOptions{
		Min: opt.Min, Max: opt.Max, Readable: opt.Readable, Locale: opt.Locale,
	}, "float")

	fn := func(v any, ctx reify.Context) (float64, error) {
		f, err := inner(v, ctx)
		if err != nil {
			return 0, err
		}
		if opt.ToFixed != nil {
			shift := math.Pow(10, float64(*opt.ToFixed))
			f = math.Round(f*shift) / shift
		}
		if opt.ToPrecision != nil {
			if r, perr := strconv.ParseFloat(strconv.FormatFloat(f, 'g', *opt.ToPrecision, 64), 64); perr == nil {
				f = r
			}
		}
		return f, nil
	}

	sample, random := reify.ResolveSamples(opt.Sample,
		func() float64 { return 1.5 },
		func() float64 { return randomInRange(opt.Min, opt.Max) },
	)
	return reify.NewParser("float", fn).WithSamples(sample, random)
}
