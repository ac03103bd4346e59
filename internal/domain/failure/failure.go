// internal/domain/failure/failure.go
package failure

import (
	"errors"
	"fmt"
)

// Kind classifies why a poll cycle (or startup) failed.
type Kind int

const (
	KindConfig Kind = iota + 1
	KindTransport
	KindParse
	KindShape
	KindDelivery
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "configuration"
	case KindTransport:
		return "transport"
	case KindParse:
		return "parse"
	case KindShape:
		return "response shape"
	case KindDelivery:
		return "delivery"
	default:
		return "unknown"
	}
}

// Error attaches a Kind to an underlying error.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s error: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap returns err classified as kind. A nil err stays nil.
func Wrap(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, Err: err}
}

// Newf is shorthand for Wrap(kind, fmt.Errorf(format, args...)).
func Newf(kind Kind, format string, args ...any) error {
	return &Error{Kind: kind, Err: fmt.Errorf(format, args...)}
}

// KindOf reports the Kind of the first *Error in err's chain.
func KindOf(err error) (Kind, bool) {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind, true
	}
	return 0, false
}
