package errors

import (
	goerrors "errors"
)

// Classification helpers for errors returned by the dispatcher

// KindOf returns the kind of the first *Error in err's chain
func KindOf(err error) Kind {
	var de *Error
	if goerrors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// StatusCode returns the HTTP status carried by a status error
func StatusCode(err error) (int, bool) {
	var de *Error
	if goerrors.As(err, &de) && de.Kind == KindStatus {
		return de.Code, true
	}
	return 0, false
}

func IsStatus(err error) bool {
	return KindOf(err) == KindStatus
}

func IsTransport(err error) bool {
	return KindOf(err) == KindTransport
}

func IsDecode(err error) bool {
	return KindOf(err) == KindDecode
}

func IsEncode(err error) bool {
	return KindOf(err) == KindEncode
}

// 3xx
func IsRedirect(err error) bool {
	return statusIn(err, 300, 400)
}

// 4xx
func IsClientError(err error) bool {
	return statusIn(err, 400, 500)
}

// 5xx
func IsServerError(err error) bool {
	return statusIn(err, 500, 600)
}

func IsUnauthorized(err error) bool {
	return statusIn(err, 401, 402)
}

func IsForbidden(err error) bool {
	return statusIn(err, 403, 404)
}

func IsNotFound(err error) bool {
	return statusIn(err, 404, 405)
}

func IsConflict(err error) bool {
	return statusIn(err, 409, 410)
}

func IsTooManyRequests(err error) bool {
	return statusIn(err, 429, 430)
}

func statusIn(err error, lo, hi int) bool {
	code, ok := StatusCode(err)
	return ok && code >= lo && code < hi
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return goerrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target any) bool {
	return goerrors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err, if any.
func Unwrap(err error) error {
	return goerrors.Unwrap(err)
}

// Join returns an error that wraps the given errors.
func Join(errs ...error) error {
	return goerrors.Join(errs...)
}

// New returns a plain error with the given text, for sentinel values.
func New(text string) error {
	return goerrors.New(text)
}
