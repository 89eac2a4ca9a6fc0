package dsl

import (
	"fmt"
	"math"
	"sort"
	"strings"

	reify "github.com/reifylab/reify"
)

// InferFromSample reverse-engineers a parser from an example value: strings
// become string parsers, integral numbers int parsers, lists arrays of the
// first element's inferred parser, and objects field-by-field inferred
// object parsers. Object keys may carry modifier suffixes, each stripped from
// the canonical field name:
//
//	"role$enums":    the example value (a list) becomes the allowed set
//	"nick$nullable": the field accepts null
//	"age$optional":  the field may be absent (trailing "?" works too)
//
// Suffixes are peeled repeatedly, so combinations compose in any order.
func InferFromSample(sample any) (reify.AnyParser, error) {
	switch reify.Classify(sample) {
	case reify.KindString:
		return String(), nil
	case reify.KindBool:
		return Boolean(), nil
	case reify.KindDate:
		return Date(), nil
	case reify.KindNumber:
		f, _ := reify.AsNumber(sample)
		switch {
		case f == math.Trunc(f):
			return Int(), nil
		case math.Round(f*100)/100 != f:
			return Float(), nil
		default:
			return Number(), nil
		}
	case reify.KindArray:
		list, ok := sample.([]any)
		if !ok {
			list = anySliceReflect(sample)
		}
		if len(list) == 0 {
			return nil, fmt.Errorf("dsl: cannot infer a parser from an empty array")
		}
		elem, err := InferFromSample(list[0])
		if err != nil {
			return nil, err
		}
		return ArrayOf(elem), nil
	case reify.KindObject:
		m, ok := sample.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("dsl: cannot infer a parser from %T", sample)
		}
		return inferObject(m)
	default:
		return nil, fmt.Errorf("dsl: cannot infer a parser from %s", reify.TypeName(sample))
	}
}

// MustInferFromSample is like InferFromSample but panics on un-inferable
// examples.
func MustInferFromSample(sample any) reify.AnyParser {
	p, err := InferFromSample(sample)
	if err != nil {
		panic(err)
	}
	return p
}

func inferObject(m map[string]any) (reify.AnyParser, error) {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	b := Object()
	for _, rawKey := range keys {
		key, mods := peelKeyModifiers(rawKey)
		val := m[rawKey]

		var p reify.AnyParser
		var err error
		if mods.enum {
			list, ok := val.([]any)
			if !ok {
				return nil, fmt.Errorf("dsl: key %q requires a list example for $enums, got %s", rawKey, reify.TypeName(val))
			}
			if len(list) == 0 {
				return nil, fmt.Errorf("dsl: key %q requires a non-empty list for $enums", rawKey)
			}
			p = valuesAny(list)
		} else {
			p, err = InferFromSample(val)
			if err != nil {
				return nil, err
			}
		}
		if mods.nullable {
			p = NullableAny(p)
		}
		if mods.optional {
			p = OptionalAny(p)
		}
		b.Field(key, p)
	}

	example := m
	return b.Samples(reify.SampleOptions[map[string]any]{SampleValue: &example}).Build(), nil
}

type keyModifiers struct {
	enum     bool
	nullable bool
	optional bool
}

// peelKeyModifiers strips recognized suffixes from a field name. It rescans
// until no suffix matches, so modifier order in the name does not matter.
func peelKeyModifiers(key string) (string, keyModifiers) {
	var mods keyModifiers
	for {
		switch {
		case strings.HasSuffix(key, "$enums"):
			key = strings.TrimSuffix(key, "$enums")
			mods.enum = true
		case strings.HasSuffix(key, "$enum"):
			key = strings.TrimSuffix(key, "$enum")
			mods.enum = true
		case strings.HasSuffix(key, "$nullable"):
			key = strings.TrimSuffix(key, "$nullable")
			mods.nullable = true
		case strings.HasSuffix(key, "$null"):
			key = strings.TrimSuffix(key, "$null")
			mods.nullable = true
		case strings.HasSuffix(key, "$optional"):
			key = strings.TrimSuffix(key, "$optional")
			mods.optional = true
		case strings.HasSuffix(key, "?"):
			key = strings.TrimSuffix(key, "?")
			mods.optional = true
		default:
			return key, mods
		}
	}
}
