package dsl

import (
	"strings"

	reify "github.com/reifylab/reify"
)

type objectField struct {
	key    string
	parser reify.AnyParser
}

// ObjectBuilder accumulates fields in declaration order. Declaration order
// drives both parse order and the rendered type signature.
type ObjectBuilder struct {
	fields []objectField
	sample reify.SampleOptions[map[string]any]
}

// Object creates a new object builder.
func Object() *ObjectBuilder {
	return &ObjectBuilder{}
}

// Field registers a field with its parser. Registering the same key twice
// keeps the last parser but preserves the original position.
func (b *ObjectBuilder) Field(key string, p reify.AnyParser) *ObjectBuilder {
	for i := range b.fields {
		if b.fields[i].key == key {
			b.fields[i].parser = p
			return b
		}
	}
	b.fields = append(b.fields, objectField{key: key, parser: p})
	return b
}

// Samples overrides the generated samples for the built parser.
func (b *ObjectBuilder) Samples(opt reify.SampleOptions[map[string]any]) *ObjectBuilder {
	b.sample = opt
	return b
}

// Build returns the object parser. The output is a projection: only declared
// fields are copied, unknown input keys are silently dropped. Absent keys are
// handled per the field parser's tag: optional fields are omitted, checkbox
// fields become false, anything else is a hard failure. A null value on an
// optional field counts as absence.
func (b *ObjectBuilder) Build() *reify.Parser[map[string]any] {
	fields := make([]objectField, len(b.fields))
	copy(fields, b.fields)

	fn := func(v any, ctx reify.Context) (map[string]any, error) {
		m, err := objectShape(v, ctx)
		if err != nil {
			return nil, err
		}
		out := make(map[string]any, len(fields))
		for _, f := range fields {
			val, exists := m[f.key]
			if !exists {
				switch f.parser.Tag() {
				case reify.TagOptional:
					continue
				case reify.TagCheckbox:
					out[f.key] = false
					continue
				default:
					return nil, raise(ctx, "object", "missing "+reify.JSONString(f.key))
				}
			}
			if val == nil && f.parser.Tag() == reify.TagOptional {
				continue
			}
			pv, perr := f.parser.ParseAny(val, ctx.ChildName(f.key))
			if perr != nil {
				return nil, perr
			}
			out[f.key] = pv
		}
		return out, nil
	}

	defSample := func() map[string]any {
		out := make(map[string]any, len(fields))
		for _, f := range fields {
			out[f.key] = f.parser.SampleAny()
		}
		return out
	}
	defRandom := func() map[string]any {
		out := make(map[string]any, len(fields))
		for _, f := range fields {
			out[f.key] = f.parser.RandomAny()
		}
		return out
	}
	sample, random := reify.ResolveSamples(b.sample, defSample, defRandom)

	return reify.NewParser("", fn).
		WithType(func() string { return objectSignature(fields) }).
		WithSamples(sample, random)
}

// objectShape is the bare top-level object check shared with Dict.
func objectShape(v any, ctx reify.Context) (map[string]any, error) {
	if m, ok := v.(map[string]any); ok {
		return m, nil
	}
	return nil, raise(ctx, "object", "got "+reify.TypeName(v))
}

// objectSignature renders "{ a: string, b?: number }"; optional fields carry
// the "?" marker.
func objectSignature(fields []objectField) string {
	if len(fields) == 0 {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteString("{ ")
	for i, f := range fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(f.key)
		if f.parser.Tag() == reify.TagOptional {
			sb.WriteString("?")
		}
		sb.WriteString(": ")
		sb.WriteString(reify.ParserTypeOf(f.parser))
	}
	sb.WriteString(" }")
	return sb.String()
}
