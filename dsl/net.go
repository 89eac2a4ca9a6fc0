package dsl

import (
	"fmt"
	"math/rand"
	"net/url"
	"strings"

	reify "github.com/reifylab/reify"
)

// URLOptions configures the url parser.
type URLOptions struct {
	// Protocol requires this exact scheme (e.g. "https").
	Protocol string
	// Protocols requires the scheme to be one of the set. Ignored when
	// Protocol is set.
	Protocols []string
	// Domain requires this exact host.
	Domain string

	Sample reify.SampleOptions[string]
}

// URL accepts absolute URLs of the form <protocol>://<domain>/...; failures
// are reported as "url" even though the wire type is a string.
func URL(opts ...URLOptions) *reify.Parser[string] {
	var opt URLOptions
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}

	inner := String(StringOptions{NonEmpty: true})
	fn := func(v any, ctx reify.Context) (string, error) {
		s, err := inner.Parse(v, ctx.WithOverrideType("url"))
		if err != nil {
			return "", err
		}
		u, perr := url.Parse(s)
		if perr != nil || u.Scheme == "" {
			return "", raise(ctx, "url", "missing protocol in "+reify.JSONString(s))
		}
		if u.Host == "" {
			return "", raise(ctx, "url", "missing domain in "+reify.JSONString(s))
		}
		switch {
		case opt.Protocol != "" && u.Scheme != opt.Protocol:
			return "", raise(ctx, "url", fmt.Sprintf("protocol should be %q, got %q", opt.Protocol, u.Scheme))
		case len(opt.Protocols) > 0 && !contains(opt.Protocols, u.Scheme):
			return "", raise(ctx, "url", fmt.Sprintf("protocol should be one of %s, got %q", reify.JSONString(opt.Protocols), u.Scheme))
		case opt.Domain != "" && u.Hostname() != opt.Domain:
			return "", raise(ctx, "url", fmt.Sprintf("domain should be %q, got %q", opt.Domain, u.Hostname()))
		}
		return s, nil
	}

	scheme := opt.Protocol
	if scheme == "" && len(opt.Protocols) > 0 {
		scheme = opt.Protocols[0]
	}
	if scheme == "" {
		scheme = "https"
	}
	host := opt.Domain
	if host == "" {
		host = "example.com"
	}
	sample, random := reify.ResolveSamples(opt.Sample,
		func() string { return scheme + "://" + host + "/" },
		func() string { return fmt.Sprintf("%s://%s/p/%d", scheme, host, rand.Intn(10000)) },
	)
	return reify.NewParser("string", fn).WithSamples(sample, random)
}

// EmailOptions configures the email parser.
type EmailOptions struct {
	// Domain requires this exact domain part.
	Domain string

	Sample reify.SampleOptions[string]
}

// Email accepts non-empty strings with a local part, an "@", and a domain
// part; failures are reported as "email".
func Email(opts ...EmailOptions) *reify.Parser[string] {
	var opt EmailOptions
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}

	inner := String(StringOptions{NonEmpty: true})
	fn := func(v any, ctx reify.Context) (string, error) {
		s, err := inner.Parse(v, ctx.WithOverrideType("email"))
		if err != nil {
			return "", err
		}
		at := strings.LastIndex(s, "@")
		if at <= 0 {
			return "", raise(ctx, "email", "missing @ in "+reify.JSONString(s))
		}
		domain := s[at+1:]
		if domain == "" {
			return "", raise(ctx, "email", "missing domain in "+reify.JSONString(s))
		}
		if opt.Domain != "" && domain != opt.Domain {
			return "", raise(ctx, "email", fmt.Sprintf("domain should be %q, got %q", opt.Domain, domain))
		}
		return s, nil
	}

	host := opt.Domain
	if host == "" {
		host = "example.com"
	}
	sample, random := reify.ResolveSamples(opt.Sample,
		func() string { return "user@" + host },
		func() string { return fmt.Sprintf("user%d@%s", rand.Intn(10000), host) },
	)
	return reify.NewParser("string", fn).WithSamples(sample, random)
}

func contains(list []string, s string) bool {
	for _, x := range list {
		if x == s {
			return true
		}
	}
	return false
}
