package reify

import "math/rand"

// SampleOptions lets callers override the generated samples of any factory.
// All fields are optional and combine with the factory defaults.
type SampleOptions[T any] struct {
	// SampleValue pins the sample to one concrete value.
	SampleValue *T
	// SampleValues supplies a pool: the first element becomes the sample,
	// random samples draw uniformly from the pool.
	SampleValues []T
	// RandomSample replaces the random generator entirely.
	RandomSample func() T
}

// ResolveSamples resolves the final sample/random generators for a parser
// from user overrides and factory defaults. Fallback order for the sample
// value: explicit SampleValue, first of SampleValues, one call to
// RandomSample, the factory default.
func ResolveSamples[T any](opt SampleOptions[T], defSample, defRandom func() T) (sample, random func() T) {
	random = opt.RandomSample
	if random == nil {
		if len(opt.SampleValues) > 0 {
			pool := opt.SampleValues
			random = func() T { return pool[rand.Intn(len(pool))] }
		} else if defRandom != nil {
			random = defRandom
		} else {
			random = defSample
		}
	}

	switch {
	case opt.SampleValue != nil:
		v := *opt.SampleValue
		sample = func() T { return v }
	case len(opt.SampleValues) > 0:
		v := opt.SampleValues[0]
		sample = func() T { return v }
	case opt.RandomSample != nil:
		v := opt.RandomSample()
		sample = func() T { return v }
	default:
		sample = defSample
	}
	return sample, random
}

// Ptr returns a pointer to v, for filling optional option fields inline.
func Ptr[T any](v T) *T { return &v }
