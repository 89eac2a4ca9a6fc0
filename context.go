package reify

// Context carries naming and error-phrasing hints through recursive parses.
// It is passed by value: combinators derive a child Context per field or
// element and never share mutable state, so concurrent Parse calls on one
// Parser tree are safe by construction.
type Context struct {
	// Name is the dotted path from the root to the current value, e.g.
	// "req.body.username". Empty at the root unless the caller supplies one.
	Name string
	// TypePrefix qualifies the expected-type phrase in error messages, e.g.
	// "array of" or "nullable". Prefixes compose as the parse descends.
	TypePrefix string
	// ReasonSuffix is appended to the failure reason, e.g. "in array".
	ReasonSuffix string
	// OverrideType renames the expected-type phrase reported by a wrapped
	// primitive (url wraps string but reports failures as "url").
	OverrideType string
}

// WithName returns a copy of the context with the given root name.
func (c Context) WithName(name string) Context {
	c.Name = name
	return c
}

// ChildName returns a copy of the context descended into the given key:
// "parent.key", or just "key" at the root.
func (c Context) ChildName(key string) Context {
	if c.Name != "" {
		c.Name = c.Name + "." + key
	} else {
		c.Name = key
	}
	return c
}

// PushTypePrefix returns a copy of the context whose TypePrefix is the
// existing prefix composed with p (outermost combinator first).
func (c Context) PushTypePrefix(p string) Context {
	c.TypePrefix = ComposeWords(c.TypePrefix, p)
	return c
}

// PushReasonSuffix returns a copy of the context whose ReasonSuffix is s
// composed with the existing suffix (innermost combinator first).
func (c Context) PushReasonSuffix(s string) Context {
	c.ReasonSuffix = ComposeWords(s, c.ReasonSuffix)
	return c
}

// WithOverrideType returns a copy of the context that renames the
// expected-type phrase. An already-set override wins, so the outermost
// wrapper controls the reported type.
func (c Context) WithOverrideType(t string) Context {
	if c.OverrideType == "" {
		c.OverrideType = t
	}
	return c
}

// ComposeWords joins two message fragments with a single space when both are
// present, otherwise returns whichever is present.
func ComposeWords(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	default:
		return a + " " + b
	}
}
