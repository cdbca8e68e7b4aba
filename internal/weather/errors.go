package weather

import (
	"errors"
	"fmt"
)

// Kind classifies every failure a dashboard run can hit.
type Kind string

const (
	KindInput      Kind = "input"
	KindTransport  Kind = "transport"
	KindHTTPStatus Kind = "http_status"
	KindDecode     Kind = "decode"
)

const MsgStartAfterEnd = "Start date must not be after the end date."

// Error is the only error type returned by the weather packages. Message is
// safe to show to the user as is.
type Error struct {
	Kind       Kind
	Message    string
	StatusCode int
	Reason     string
	Err        error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	if e.Reason != "" {
		msg = fmt.Sprintf("%s\nAPI error: %s", msg, e.Reason)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the Kind of err when it wraps an *Error.
func KindOf(err error) (Kind, bool) {
	var werr *Error
	if errors.As(err, &werr) {
		return werr.Kind, true
	}
	return "", false
}

func inputError(message string, err error) *Error {
	return &Error{Kind: KindInput, Message: message, Err: err}
}

func decodeError(message string, err error) *Error {
	return &Error{Kind: KindDecode, Message: message, Err: err}
}
