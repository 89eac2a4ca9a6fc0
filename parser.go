package reify

import "sync"

// Tag marks a parser for special handling by the object combinator when the
// field key is absent from the input.
type Tag int

const (
	// TagNone: absence of the field is an error.
	TagNone Tag = iota
	// TagOptional: the field is omitted from the output on absence (and on a
	// null value).
	TagOptional
	// TagCheckbox: absence coerces the output field to false.
	TagCheckbox
)

// Parser validates and coerces a dynamic input value into T. A Parser value
// combines the parse function, a textual type signature, and sample
// generation hooks. Parsers are immutable after construction; tagging returns
// a new wrapper value instead of mutating in place.
type Parser[T any] struct {
	fn     func(v any, ctx Context) (T, error)
	typeFn func() string
	sample func() T
	random func() T
	tag    Tag
}

// NewParser constructs a Parser with a fixed type signature. Factories attach
// samples via WithSamples and lazy signatures via WithType.
func NewParser[T any](typ string, fn func(v any, ctx Context) (T, error)) *Parser[T] {
	return &Parser[T]{fn: fn, typeFn: func() string { return typ }}
}

// WithType replaces the type signature with a lazily computed, memoized one.
// Object signatures use this to defer cost until introspection is requested.
func (p *Parser[T]) WithType(fn func() string) *Parser[T] {
	p.typeFn = sync.OnceValue(fn)
	return p
}

// WithSamples attaches the sample-value and random-sample generators.
func (p *Parser[T]) WithSamples(sample, random func() T) *Parser[T] {
	p.sample = sample
	p.random = random
	return p
}

// WithTag returns a copy of the parser carrying the given tag. The receiver
// is left untouched so shared trees stay safe.
func (p *Parser[T]) WithTag(t Tag) *Parser[T] {
	cp := *p
	cp.tag = t
	return &cp
}

// Parse validates and coerces v. The optional Context supplies the root name
// and error-phrasing hints; omit it for an unnamed root.
func (p *Parser[T]) Parse(v any, ctxs ...Context) (T, error) {
	var ctx Context
	if len(ctxs) > 0 {
		ctx = ctxs[len(ctxs)-1]
	}
	return p.fn(v, ctx)
}

// MustParse is like Parse but panics on invalid input. Intended for values
// already known to be valid (fixtures, literals in tests).
func (p *Parser[T]) MustParse(v any, ctxs ...Context) T {
	out, err := p.Parse(v, ctxs...)
	if err != nil {
		panic(err)
	}
	return out
}

// Type returns the structural type signature, e.g. "string", "{ a: number }",
// "Array<string>", `"guest"`, "null | string".
func (p *Parser[T]) Type() string {
	if p.typeFn == nil {
		return ""
	}
	return p.typeFn()
}

// SampleValue returns one concrete valid value of this schema.
func (p *Parser[T]) SampleValue() T {
	if p.sample == nil {
		var zero T
		return zero
	}
	return p.sample()
}

// RandomSample generates a fresh valid value on every call.
func (p *Parser[T]) RandomSample() T {
	if p.random == nil {
		return p.SampleValue()
	}
	return p.random()
}

// Tag reports the field-absence tag attached to this parser.
func (p *Parser[T]) Tag() Tag { return p.tag }

// ParseAny implements AnyParser.
func (p *Parser[T]) ParseAny(v any, ctx Context) (any, error) {
	out, err := p.fn(v, ctx)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SampleAny implements AnyParser.
func (p *Parser[T]) SampleAny() any { return p.SampleValue() }

// RandomAny implements AnyParser.
func (p *Parser[T]) RandomAny() any { return p.RandomSample() }

// Retag implements AnyParser; it returns a tagged copy, type-erased.
func (p *Parser[T]) Retag(t Tag) AnyParser { return p.WithTag(t) }

// AnyParser is the type-erased view of a Parser, used by combinators that
// hold heterogeneous children (object fields, union candidates, dict values).
// *Parser[T] implements it for every T.
type AnyParser interface {
	ParseAny(v any, ctx Context) (any, error)
	Type() string
	SampleAny() any
	RandomAny() any
	Tag() Tag
	Retag(t Tag) AnyParser
}

// ParserTypeOf introspects an arbitrary child parser for composite type
// signatures: its declared type when present, else the kind of its sample
// value, else the kind of a random sample, else "unknown".
func ParserTypeOf(p AnyParser) string {
	if t := p.Type(); t != "" {
		return t
	}
	if n := kindSignature(p.SampleAny()); n != "" {
		return n
	}
	if n := kindSignature(p.RandomAny()); n != "" {
		return n
	}
	return "unknown"
}

func kindSignature(v any) string {
	switch Classify(v) {
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	case KindDate:
		return "Date"
	default:
		return ""
	}
}
