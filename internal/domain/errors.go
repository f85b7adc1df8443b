package domain

import "fmt"

// Kind is the application-level error taxonomy of §7. The mcpserver adapter
// reports a Kind as the `kind` field of an IsError tool result; it is not
// mapped to a JSON-RPC error code.
type Kind string

const (
	KindParseError        Kind = "parse_error"
	KindNotFound          Kind = "not_found"
	KindInvalidArgument   Kind = "invalid_argument"
	KindNoMatchingProfile Kind = "no_matching_profile"
	KindTimeout           Kind = "timeout"
	KindConfig            Kind = "config"
	KindInternal          Kind = "internal"
)

// BrokerError is a tagged error carrying the Kind that the mcpserver adapter
// reports as the `kind` of an IsError tool result.
type BrokerError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *BrokerError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *BrokerError) Unwrap() error { return e.Err }

// NewBrokerError builds a BrokerError, wrapping an underlying cause if given.
func NewBrokerError(kind Kind, message string, cause error) *BrokerError {
	return &BrokerError{Kind: kind, Message: message, Err: cause}
}

// IsKind reports whether err is a *BrokerError of the given kind.
func IsKind(err error, kind Kind) bool {
	be, ok := err.(*BrokerError)
	return ok && be.Kind == kind
}
