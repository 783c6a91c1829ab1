package guarderrors

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	Unknown Kind = iota
	Decoding
	Parse
	MissingField
	ExternalService
)

func (k Kind) String() string {
	switch k {
	case Decoding:
		return "decoding error"
	case Parse:
		return "parse error"
	case MissingField:
		return "missing field error"
	case ExternalService:
		return "external service error"
	}
	return "unknown error"
}

// Error carries the failure kind of one invocation together with its cause.
type Error struct {
	Kind Kind
	Err  error
}

var (
	ErrDecoding        = &Error{Kind: Decoding}
	ErrParse           = &Error{Kind: Parse}
	ErrMissingField    = &Error{Kind: MissingField}
	ErrExternalService = &Error{Kind: ExternalService}
)

func New(err error, kind Kind) *Error {
	return &Error{Kind: kind, Err: err}
}

func Newf(kind Kind, format string, a ...any) *Error {
	return New(fmt.Errorf(format, a...), kind)
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so the package sentinels work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}

func GetHttpCode(err error) int {
	switch KindOf(err) {
	case Decoding, Parse, MissingField:
		return http.StatusBadRequest
	case ExternalService:
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}
