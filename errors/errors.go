package errors

import (
	"errors"
	"strconv"
	"strings"
)

// Kind classifies how a dispatch failed
type Kind int

const (
	// KindUnknown is reported for errors that did not come from a dispatch
	KindUnknown Kind = iota
	// KindStatus means the server answered with a status outside [200, 300)
	KindStatus
	// KindTransport means the round trip itself failed (dial, DNS, reset, cancel)
	KindTransport
	// KindDecode means the response body was not valid JSON
	KindDecode
	// KindEncode means the request body could not be serialized
	KindEncode
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindStatus:
		return "status"
	case KindTransport:
		return "transport"
	case KindDecode:
		return "decode"
	case KindEncode:
		return "encode"
	default:
		return "unknown"
	}
}

// StatusSeparator joins the status code and the response body in status errors
const StatusSeparator = ": "

// Error is the single error type returned by the dispatcher.
// Status errors carry the HTTP code and the compact JSON body; every other
// kind carries the underlying cause and reports its message unchanged.
type Error struct {
	Kind  Kind
	Code  int
	Body  string
	cause error
}

// Error returns "<code>: <body>" for status errors and the cause message otherwise
func (e *Error) Error() string {
	if e.Kind == KindStatus {
		var msg strings.Builder
		msg.Grow(len(e.Body) + len(StatusSeparator) + 3)
		msg.WriteString(strconv.Itoa(e.Code))
		msg.WriteString(StatusSeparator)
		msg.WriteString(e.Body)
		return msg.String()
	}

	if e.cause != nil {
		return e.cause.Error()
	}
	return e.Kind.String() + " error"
}

// Unwrap returns the cause of the error
func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether err is an *Error of the same kind.
// Status errors additionally need the same code; a zero Code on the target
// matches any status.
func (e *Error) Is(err error) bool {
	var de *Error
	if !errors.As(err, &de) {
		return false
	}
	if e.Kind != de.Kind {
		return false
	}
	if e.Kind == KindStatus && de.Code != 0 {
		return e.Code == de.Code
	}
	return true
}

// GetCode returns the HTTP status code, zero for non-status errors
func (e *Error) GetCode() int {
	return e.Code
}

// GetBody returns the compact JSON response body of a status error
func (e *Error) GetBody() string {
	return e.Body
}

// GetCause returns the underlying cause of the error
func (e *Error) GetCause() error {
	return e.cause
}

// Status creates a status error from a response code and its JSON body
func Status(code int, body string) *Error {
	return &Error{
		Kind: KindStatus,
		Code: code,
		Body: body,
	}
}

// Transport wraps a round trip failure. Returns nil if err is nil
func Transport(err error) *Error {
	return wrap(KindTransport, err)
}

// Decode wraps a response body parse failure. Returns nil if err is nil
func Decode(err error) *Error {
	return wrap(KindDecode, err)
}

// Encode wraps a request body serialization failure. Returns nil if err is nil
func Encode(err error) *Error {
	return wrap(KindEncode, err)
}

func wrap(kind Kind, err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{Kind: kind, cause: err}
}

// FromError converts a generic error to *Error.
// Errors without an *Error in their chain become KindUnknown wrappers.
func FromError(err error) *Error {
	if err == nil {
		return nil
	}

	var de *Error
	if errors.As(err, &de) {
		return de
	}

	return wrap(KindUnknown, err)
}
