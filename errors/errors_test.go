package errors

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	err := Status(404, `{"error":"not found"}`)
	if err.GetCode() != 404 {
		t.Errorf("expected code 404, got %d", err.GetCode())
	}
	if err.Error() != `404: {"error":"not found"}` {
		t.Errorf("unexpected message %q", err.Error())
	}
	if err.GetCause() != nil {
		t.Error("status error should have no cause")
	}
}

func TestWrappedKindsKeepCauseMessage(t *testing.T) {
	cause := errors.New("dial tcp 127.0.0.1:1: connect: connection refused")

	tests := []struct {
		name string
		err  *Error
		kind Kind
	}{
		{"transport", Transport(cause), KindTransport},
		{"decode", Decode(cause), KindDecode},
		{"encode", Encode(cause), KindEncode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, cause.Error(), tt.err.Error())
			assert.Equal(t, tt.kind, tt.err.Kind)
			assert.Same(t, cause, tt.err.Unwrap())
			assert.True(t, errors.Is(tt.err, cause))
		})
	}
}

func TestNilCause(t *testing.T) {
	assert.Nil(t, Transport(nil))
	assert.Nil(t, Decode(nil))
	assert.Nil(t, Encode(nil))
	assert.Nil(t, FromError(nil))
}

func TestIs(t *testing.T) {
	err := fmt.Errorf("load user: %w", Status(404, `{}`))

	assert.True(t, Is(err, Status(404, "")))
	assert.True(t, Is(err, Status(0, "")), "zero code matches any status")
	assert.False(t, Is(err, Status(500, "")))
	assert.False(t, Is(err, Transport(errors.New("x"))))

	terr := Transport(context.DeadlineExceeded)
	assert.True(t, Is(terr, context.DeadlineExceeded))
	assert.True(t, Is(terr, &Error{Kind: KindTransport}))
}

func TestClassification(t *testing.T) {
	tests := []struct {
		code                               int
		redirect, client, server, notFound bool
	}{
		{301, true, false, false, false},
		{400, false, true, false, false},
		{404, false, true, false, true},
		{500, false, false, true, false},
		{503, false, false, true, false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", Status(tt.code, "null"))
			code, ok := StatusCode(err)
			assert.True(t, ok)
			assert.Equal(t, tt.code, code)
			assert.True(t, IsStatus(err))
			assert.Equal(t, tt.redirect, IsRedirect(err))
			assert.Equal(t, tt.client, IsClientError(err))
			assert.Equal(t, tt.server, IsServerError(err))
			assert.Equal(t, tt.notFound, IsNotFound(err))
		})
	}

	assert.True(t, IsTooManyRequests(Status(429, "{}")))
	assert.True(t, IsUnauthorized(Status(401, "{}")))
	assert.False(t, IsClientError(Decode(errors.New("bad json"))))

	_, ok := StatusCode(errors.New("plain"))
	assert.False(t, ok)
}

func TestFromError(t *testing.T) {
	stdErr := errors.New("standard error")
	wrapped := FromError(stdErr)
	assert.Equal(t, KindUnknown, wrapped.Kind)
	assert.Equal(t, "standard error", wrapped.Error())

	existing := Status(409, `{"conflict":true}`)
	assert.Same(t, existing, FromError(fmt.Errorf("ctx: %w", existing)))
	assert.True(t, IsConflict(existing))
}

func BenchmarkStatusError(b *testing.B) {
	err := Status(500, `{"error":"internal server error","trace":"abc"}`)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = err.Error()
	}
}
