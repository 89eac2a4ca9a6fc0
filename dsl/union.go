package dsl

import (
	"math/rand"
	"regexp"
	"strings"

	reify "github.com/reifylab/reify"
)

// Or tries each candidate parser in order and returns the first success, so
// order is a meaningful tie-break: put the more specific or cheaper parser
// first. When every candidate fails, the raised error aggregates the
// candidate reasons and retains the per-candidate errors for inspection.
// At least one candidate is required; Or panics otherwise.
func Or(parsers ...reify.AnyParser) *reify.Parser[any] {
	if len(parsers) == 0 {
		panic("dsl: Or requires at least one parser")
	}

	unionType := func() string {
		parts := make([]string, len(parsers))
		for i, p := range parsers {
			parts[i] = reify.ParserTypeOf(p)
		}
		return strings.Join(parts, " | ")
	}

	fn := func(v any, ctx reify.Context) (any, error) {
		childErrs := make([]*reify.InvalidInputError, 0, len(parsers))
		for _, p := range parsers {
			out, err := p.ParseAny(v, ctx)
			if err == nil {
				return out, nil
			}
			if ie, ok := reify.AsInvalidInput(err); ok {
				childErrs = append(childErrs, ie)
			} else {
				childErrs = append(childErrs, &reify.InvalidInputError{
					Message:    err.Error(),
					Reason:     err.Error(),
					StatusCode: reify.StatusBadRequest,
				})
			}
		}
		ie := reify.NewInvalidInput(ctx, unionType(), aggregateReasons(childErrs))
		ie.Errors = childErrs
		return nil, ie
	}

	sample := func() any { return parsers[0].SampleAny() }
	random := func() any { return parsers[rand.Intn(len(parsers))].RandomAny() }
	return reify.NewParser("", fn).WithType(unionType).WithSamples(sample, random)
}

var gotFragment = regexp.MustCompile(`got (.+)$`)

// aggregateReasons merges candidate failure reasons: "got X" fragments are
// deduplicated into a single trailing got-clause, every other reason is
// deduplicated into a parenthesized prefix, both joined by " and ".
func aggregateReasons(errs []*reify.InvalidInputError) string {
	var reasons, gots []string
	for _, e := range errs {
		r := e.Reason
		if loc := gotFragment.FindStringSubmatchIndex(r); loc != nil {
			gots = appendUnique(gots, r[loc[2]:loc[3]])
			rest := strings.TrimRight(strings.TrimSpace(r[:loc[0]]), ",")
			if rest != "" {
				reasons = appendUnique(reasons, rest)
			}
		} else if r != "" {
			reasons = appendUnique(reasons, r)
		}
	}
	var sb strings.Builder
	if len(reasons) > 0 {
		sb.WriteString("(" + strings.Join(reasons, " and ") + ")")
	}
	if len(gots) > 0 {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("got " + strings.Join(gots, " and "))
	}
	return sb.String()
}

func appendUnique(list []string, s string) []string {
	for _, x := range list {
		if x == s {
			return list
		}
	}
	return append(list, s)
}
