package api

import (
	"errors"
	"fmt"
)

type Kind string

const (
	// KindTimeout is a request that hit the fixed client timeout.
	KindTimeout Kind = "TIMEOUT"
	// KindTransport is any other connectivity failure.
	KindTransport Kind = "TRANSPORT"
	// KindAPI is a 4xx/5xx whose envelope may carry a user-visible message.
	KindAPI Kind = "API"
	// KindDecode is a response that violates the envelope contract.
	KindDecode Kind = "DECODE"
)

type Error struct {
	Kind    Kind
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s", e.Kind, e.Message, e.Err.Error())
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ErrorMessage extracts the server-provided message from a decoded API
// error, falling back to the operation's fixed message for everything
// else (transport, timeout, decode).
func ErrorMessage(err error, fallback string) string {
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.Kind == KindAPI && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
