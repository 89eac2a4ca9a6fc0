package dsl

import (
	"fmt"
	"sort"

	reify "github.com/reifylab/reify"
)

// DictOptions configures the dict combinator. Value is required; Key defaults
// to a permissive string parser.
type DictOptions struct {
	Key   reify.AnyParser
	Value reify.AnyParser

	Sample reify.SampleOptions[map[string]any]
}

// Dict validates homogeneous string-keyed objects: every key through the key
// parser, every value through the value parser. Key failures carry the
// "in key" suffix, value failures "in value". Keys are visited in sorted
// order so the first reported failure is deterministic.
func Dict(opt DictOptions) *reify.Parser[map[string]any] {
	if opt.Value == nil {
		panic("dsl: Dict requires a Value parser")
	}
	key := opt.Key
	if key == nil {
		key = String()
	}

	fn := func(v any, ctx reify.Context) (map[string]any, error) {
		m, err := objectShape(v, ctx)
		if err != nil {
			return nil, err
		}
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		out := make(map[string]any, len(m))
		for _, k := range keys {
			child := ctx.ChildName(k)
			pk, kerr := key.ParseAny(k, child.PushReasonSuffix("in key"))
			if kerr != nil {
				return nil, kerr
			}
			pv, verr := opt.Value.ParseAny(m[k], child.PushReasonSuffix("in value"))
			if verr != nil {
				return nil, verr
			}
			ks, ok := pk.(string)
			if !ok {
				ks = fmt.Sprintf("%v", pk)
			}
			out[ks] = pv
		}
		return out, nil
	}

	defSample := func() map[string]any {
		ks, ok := key.SampleAny().(string)
		if !ok {
			ks = "key"
		}
		return map[string]any{ks: opt.Value.SampleAny()}
	}
	defRandom := func() map[string]any {
		ks, ok := key.RandomAny().(string)
		if !ok {
			ks = "key"
		}
		return map[string]any{ks: opt.Value.RandomAny()}
	}
	sample, random := reify.ResolveSamples(opt.Sample, defSample, defRandom)

	return reify.NewParser("", fn).
		WithType(func() string { return "{ [key: string]: " + reify.ParserTypeOf(opt.Value) + " }" }).
		WithSamples(sample, random)
}

// Record is an alias for Dict.
func Record(opt DictOptions) *reify.Parser[map[string]any] { return Dict(opt) }
