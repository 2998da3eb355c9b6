package analyzer

import (
	"errors"
	"fmt"
)

// Kind classifies analysis failures.
type Kind int

const (
	KindUnknown Kind = iota
	KindInvalidImage
	KindServiceUnavailable
	KindTimeout
)

var (
	ErrInvalidImage       = &Error{Kind: KindInvalidImage}
	ErrServiceUnavailable = &Error{Kind: KindServiceUnavailable}
	ErrTimeout            = &Error{Kind: KindTimeout}
)

const genericMessage = "An error occurred during analysis."

func (k Kind) String() string {
	switch k {
	case KindInvalidImage:
		return "invalid_image"
	case KindServiceUnavailable:
		return "service_unavailable"
	case KindTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

// UserMessage is the text shown to the user for a failure of this kind.
func (k Kind) UserMessage() string {
	switch k {
	case KindInvalidImage:
		return "The uploaded file is not a supported image."
	case KindServiceUnavailable:
		return "The analysis service is unavailable. Please try again later."
	case KindTimeout:
		return "The analysis took too long and was cancelled."
	default:
		return genericMessage
	}
}

// Error is an analysis failure of a known Kind.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Msg
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so errors.Is(err, ErrTimeout) works
// for wrapped instances.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func newError(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf reports the Kind of err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// UserMessage returns the user-facing text for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	return KindOf(err).UserMessage()
}
