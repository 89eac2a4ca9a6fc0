package reify

import (
	"errors"

	json "github.com/goccy/go-json"
)

// StatusBadRequest is the status code attached to every InvalidInputError.
// The value mirrors HTTP 400 semantics ("bad client input") even when the
// error never crosses an HTTP boundary.
const StatusBadRequest = 400

// InvalidInputError is the single error kind raised by parsers. Failures are
// differentiated by message content, not subtype; the message is
// self-contained and intended to be shown directly to API clients.
type InvalidInputError struct {
	// Message is the fully rendered, human-readable message:
	//
	//	Invalid [<typePrefix> ]<expectedType>[ "<name>"], <reason>[ <reasonSuffix>]
	Message string
	// Reason is the raw failure reason before suffix composition. Union
	// aggregation reads it when merging candidate failures.
	Reason string
	// StatusCode is StatusBadRequest unless a caller overrides it.
	StatusCode int
	// Errors holds the per-candidate failures of a union parser; empty for
	// every other parser.
	Errors []*InvalidInputError
}

// Error returns the rendered message.
func (e *InvalidInputError) Error() string { return e.Message }

// NewInvalidInput renders an InvalidInputError from the context, the expected
// type phrase and the failure reason. ctx.OverrideType, when set, replaces
// expectedType.
func NewInvalidInput(ctx Context, expectedType, reason string) *InvalidInputError {
	if ctx.OverrideType != "" {
		expectedType = ctx.OverrideType
	}
	msg := "Invalid " + ComposeWords(ctx.TypePrefix, expectedType)
	if ctx.Name != "" {
		msg += " " + JSONString(ctx.Name)
	}
	msg += ", " + ComposeWords(reason, ctx.ReasonSuffix)
	return &InvalidInputError{
		Message:    msg,
		Reason:     reason,
		StatusCode: StatusBadRequest,
	}
}

// AsInvalidInput extracts an *InvalidInputError from err using errors.As.
func AsInvalidInput(err error) (*InvalidInputError, bool) {
	if err == nil {
		return nil, false
	}
	var ie *InvalidInputError
	if errors.As(err, &ie) {
		return ie, true
	}
	return nil, false
}

// JSONString renders v as a JSON fragment for embedding in messages (quoted
// names, allowed-set serializations). Unencodable values fall back to "?".
func JSONString(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "?"
	}
	return string(b)
}
