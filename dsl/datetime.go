package dsl

import (
	"fmt"
	"math/rand"
	"regexp"
	"strconv"
	"time"

	reify "github.com/reifylab/reify"
)

// dateLayouts lists the accepted string forms, all carrying at least day
// granularity. Partial dates like "2020" or "2020-07" are ambiguous and
// rejected.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05.999",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
}

const (
	layoutDate              = "2006-01-02"
	layoutTimestampMinute   = "2006-01-02 15:04"
	layoutTimestampSecond   = "2006-01-02 15:04:05"
	layoutTimestampMillisec = "2006-01-02 15:04:05.000"
)

// Precision selects which time-of-day components a time string or timestamp
// requires and retains.
type Precision string

const (
	PrecisionMinute      Precision = "minute"
	PrecisionSecond      Precision = "second"
	PrecisionMillisecond Precision = "millisecond"
)

// DateOptions configures the date parser. Min and Max accept anything the
// date parser itself accepts (time.Time, epoch millis, date strings).
type DateOptions struct {
	Min any
	Max any

	Sample reify.SampleOptions[time.Time]
}

// Date accepts time.Time values, numeric epoch milliseconds, and
// unambiguous date strings.
func Date(opts ...DateOptions) *reify.Parser[time.Time] {
	var opt DateOptions
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	min := mustDateBound(opt.Min, "DateOptions.Min")
	max := mustDateBound(opt.Max, "DateOptions.Max")

	fn := func(v any, ctx reify.Context) (time.Time, error) {
		t, err := coerceDate(v, ctx, "date")
		if err != nil {
			return time.Time{}, err
		}
		if min != nil && t.Before(*min) {
			return time.Time{}, raise(ctx, "date", fmt.Sprintf("should not be before %s, got %s", min.Format(layoutTimestampSecond), t.Format(layoutTimestampSecond)))
		}
		if max != nil && t.After(*max) {
			return time.Time{}, raise(ctx, "date", fmt.Sprintf("should not be after %s, got %s", max.Format(layoutTimestampSecond), t.Format(layoutTimestampSecond)))
		}
		return t, nil
	}

	sample, random := reify.ResolveSamples(opt.Sample,
		func() time.Time { return time.Date(2021, 6, 15, 12, 30, 0, 0, time.UTC) },
		func() time.Time { return randomDate(min, max) },
	)
	return reify.NewParser("Date", fn).WithSamples(sample, random)
}

// coerceDate is the shared input domain of Date, DateString and Timestamp.
func coerceDate(v any, ctx reify.Context, expected string) (time.Time, error) {
	switch reify.Classify(v) {
	case reify.KindDate:
		return v.(time.Time), nil
	case reify.KindNumber:
		millis, _ := reify.AsNumber(v)
		return time.UnixMilli(int64(millis)).UTC(), nil
	case reify.KindString:
		s := v.(string)
		if s == "" {
			return time.Time{}, raise(ctx, expected, "got empty string")
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, raise(ctx, expected, "got "+reify.JSONString(s))
	default:
		return time.Time{}, raise(ctx, expected, "got "+reify.TypeName(v))
	}
}

// mustDateBound coerces a construction-time range bound. A bound the date
// parser cannot understand is a programmer error, so it panics like MustParse.
func mustDateBound(v any, what string) *time.Time {
	if v == nil {
		return nil
	}
	t, err := coerceDate(v, reify.Context{Name: what}, "date")
	if err != nil {
		panic(err)
	}
	return &t
}

func randomDate(min, max *time.Time) time.Time {
	lo := time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
	hi := time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)
	if min != nil {
		lo = *min
	}
	if max != nil {
		hi = *max
	}
	if !hi.After(lo) {
		return lo
	}
	span := hi.Unix() - lo.Unix()
	return time.Unix(lo.Unix()+rand.Int63n(span), 0).UTC()
}

// DateStringOptions configures the canonical date-string parser. Min and Max
// are compared lexicographically after canonicalization.
type DateStringOptions struct {
	Min string
	Max string

	Sample reify.SampleOptions[string]
}

// DateString accepts the date input domain and reduces it to the canonical
// "yyyy-mm-dd" form.
func DateString(opts ...DateStringOptions) *reify.Parser[string] {
	var opt DateStringOptions
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	min := mustCanonical(opt.Min, "DateStringOptions.Min", layoutDate)
	max := mustCanonical(opt.Max, "DateStringOptions.Max", layoutDate)

	fn := func(v any, ctx reify.Context) (string, error) {
		t, err := coerceDate(v, ctx, "dateString")
		if err != nil {
			return "", err
		}
		s := t.Format(layoutDate)
		if err := checkCanonicalRange(ctx, "dateString", s, min, max); err != nil {
			return "", err
		}
		return s, nil
	}

	sample, random := reify.ResolveSamples(opt.Sample,
		func() string { return "2021-06-15" },
		func() string { return randomDate(nil, nil).Format(layoutDate) },
	)
	return reify.NewParser("string", fn).WithSamples(sample, random)
}

func mustCanonical(s, what, layout string) string {
	if s == "" {
		return ""
	}
	t, err := coerceDate(s, reify.Context{Name: what}, "date")
	if err != nil {
		panic(err)
	}
	return t.Format(layout)
}

func checkCanonicalRange(ctx reify.Context, expected, s, min, max string) error {
	if min != "" && s < min {
		return raise(ctx, expected, fmt.Sprintf("should not be before %s, got %s", min, s))
	}
	if max != "" && s > max {
		return raise(ctx, expected, fmt.Sprintf("should not be after %s, got %s", max, s))
	}
	return nil
}

// TimeStringOptions configures the time-of-day parser.
type TimeStringOptions struct {
	// Precision controls which components are required in the input and
	// retained in the canonical output. Default PrecisionMinute.
	Precision Precision
	// Min/Max are canonical time strings compared lexicographically.
	Min string
	Max string

	Sample reify.SampleOptions[string]
}

var timeOnlyPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})(?::(\d{2})(?:\.(\d{1,3}))?)?$`)

// TimeString accepts times of day ("09:30", "09:30:15.250"), full date
// inputs, and epoch milliseconds, reducing them to the canonical
// "hh:mm[:ss[.mmm]]" form selected by Precision.
func TimeString(opts ...TimeStringOptions) *reify.Parser[string] {
	var opt TimeStringOptions
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	precision := opt.Precision
	if precision == "" {
		precision = PrecisionMinute
	}

	fn := func(v any, ctx reify.Context) (string, error) {
		var h, m, sec, ms int
		var haveSec, haveMS bool
		var out string
		if s, ok := v.(string); ok && timeOnlyPattern.MatchString(s) {
			parts := timeOnlyPattern.FindStringSubmatch(s)
			h, _ = strconv.Atoi(parts[1])
			m, _ = strconv.Atoi(parts[2])
			if parts[3] != "" {
				haveSec = true
				sec, _ = strconv.Atoi(parts[3])
			}
			if parts[4] != "" {
				haveMS = true
				// "25" means 250ms; pad to three digits
				frac := parts[4] + "000"[:3-len(parts[4])]
				ms, _ = strconv.Atoi(frac)
			}
			if h > 23 || m > 59 || sec > 59 {
				return "", raise(ctx, "timeString", "got "+reify.JSONString(s))
			}
			rendered, err := renderTime(ctx, precision, h, m, sec, ms, haveSec, haveMS, s)
			if err != nil {
				return "", err
			}
			out = rendered
		} else {
			t, err := coerceDate(v, ctx, "timeString")
			if err != nil {
				return "", err
			}
			h, m, sec = t.Hour(), t.Minute(), t.Second()
			ms = t.Nanosecond() / int(time.Millisecond)
			out, _ = renderTime(ctx, precision, h, m, sec, ms, true, true, "")
		}
		if err := checkCanonicalRange(ctx, "timeString", out, opt.Min, opt.Max); err != nil {
			return "", err
		}
		return out, nil
	}

	sample, random := reify.ResolveSamples(opt.Sample,
		func() string { return canonicalTime(precision, 9, 30, 15, 250) },
		func() string {
			return canonicalTime(precision, rand.Intn(24), rand.Intn(60), rand.Intn(60), rand.Intn(1000))
		},
	)
	return reify.NewParser("string", fn).WithSamples(sample, random)
}

func renderTime(ctx reify.Context, precision Precision, h, m, sec, ms int, haveSec, haveMS bool, raw string) (string, error) {
	switch precision {
	case PrecisionSecond:
		if !haveSec {
			return "", raise(ctx, "timeString", "seconds are required, got "+reify.JSONString(raw))
		}
	case PrecisionMillisecond:
		if !haveSec || !haveMS {
			return "", raise(ctx, "timeString", "milliseconds are required, got "+reify.JSONString(raw))
		}
	}
	return canonicalTime(precision, h, m, sec, ms), nil
}

func canonicalTime(precision Precision, h, m, sec, ms int) string {
	switch precision {
	case PrecisionSecond:
		return fmt.Sprintf("%02d:%02d:%02d", h, m, sec)
	case PrecisionMillisecond:
		return fmt.Sprintf("%02d:%02d:%02d.%03d", h, m, sec, ms)
	default:
		return fmt.Sprintf("%02d:%02d", h, m)
	}
}

// TimestampOptions configures the timestamp parser.
type TimestampOptions struct {
	// Precision selects the retained time components. Default PrecisionSecond.
	Precision Precision
	// Min/Max are canonical timestamps compared lexicographically.
	Min string
	Max string

	Sample reify.SampleOptions[string]
}

// Timestamp accepts the date input domain and reduces it to the canonical
// "yyyy-mm-dd hh:mm:ss" form (components per Precision).
func Timestamp(opts ...TimestampOptions) *reify.Parser[string] {
	var opt TimestampOptions
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	precision := opt.Precision
	if precision == "" {
		precision = PrecisionSecond
	}
	layout := timestampLayout(precision)
	min := mustCanonical(opt.Min, "TimestampOptions.Min", layout)
	max := mustCanonical(opt.Max, "TimestampOptions.Max", layout)

	fn := func(v any, ctx reify.Context) (string, error) {
		t, err := coerceDate(v, ctx, "timestamp")
		if err != nil {
			return "", err
		}
		s := t.Format(layout)
		if err := checkCanonicalRange(ctx, "timestamp", s, min, max); err != nil {
			return "", err
		}
		return s, nil
	}

	sample, random := reify.ResolveSamples(opt.Sample,
		func() string { return time.Date(2021, 6, 15, 12, 30, 0, 0, time.UTC).Format(layout) },
		func() string { return randomDate(nil, nil).Format(layout) },
	)
	return reify.NewParser("string", fn).WithSamples(sample, random)
}

func timestampLayout(p Precision) string {
	switch p {
	case PrecisionMinute:
		return layoutTimestampMinute
	case PrecisionMillisecond:
		return layoutTimestampMillisec
	default:
		return layoutTimestampSecond
	}
}
