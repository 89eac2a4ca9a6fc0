package reify

import (
	json "github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Source is a decoded dynamic value ready to be parsed, optionally carrying a
// root name for error messages. Sources exist so callers can go from raw
// payload bytes to a typed value in one call; the decode step is deliberately
// thin and adds no validation of its own.
type Source struct {
	value any
	name  string
	err   error
}

// Value exposes the decoded dynamic value (nil when decoding failed).
func (s Source) Value() any { return s.value }

// JSONBytes decodes a JSON document into a dynamic value.
func JSONBytes(b []byte) Source {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return Source{err: &InvalidInputError{
			Message:    "Invalid JSON, " + err.Error(),
			Reason:     err.Error(),
			StatusCode: StatusBadRequest,
		}}
	}
	return Source{value: v}
}

// YAMLBytes decodes a YAML document into a dynamic value.
func YAMLBytes(b []byte) Source {
	var v any
	if err := yaml.Unmarshal(b, &v); err != nil {
		return Source{err: &InvalidInputError{
			Message:    "Invalid YAML, " + err.Error(),
			Reason:     err.Error(),
			StatusCode: StatusBadRequest,
		}}
	}
	return Source{value: v}
}

// JSONPath extracts the sub-document at the given dotted path from a raw JSON
// document. The path doubles as the root name in error messages, so a
// failure deep inside `req.body` reads "req.body.username".
func JSONPath(b []byte, path string) Source {
	res := gjson.GetBytes(b, path)
	if !res.Exists() {
		return Source{
			name: path,
			err:  NewInvalidInput(Context{Name: path}, "value", "got null"),
		}
	}
	return Source{value: res.Value(), name: path}
}

// ParseFrom decodes and validates in one step:
//
//	v, err := reify.ParseFrom(schema, reify.JSONBytes(data))
func ParseFrom[T any](p *Parser[T], src Source, ctxs ...Context) (T, error) {
	var ctx Context
	if len(ctxs) > 0 {
		ctx = ctxs[len(ctxs)-1]
	}
	if src.name != "" && ctx.Name == "" {
		ctx.Name = src.name
	}
	if src.err != nil {
		var zero T
		return zero, src.err
	}
	return p.Parse(src.value, ctx)
}

// SafeParse parses v into T, reporting false instead of an error.
func SafeParse[T any](p *Parser[T], v any, ctxs ...Context) (T, bool) {
	out, err := p.Parse(v, ctxs...)
	if err != nil {
		var zero T
		return zero, false
	}
	return out, true
}

// Is reports whether v conforms to the parser.
func Is[T any](p *Parser[T], v any) bool {
	_, err := p.Parse(v)
	return err == nil
}
