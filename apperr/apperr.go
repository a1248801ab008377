// Package apperr is the error taxonomy shared by services and the HTTP layer.
// Services return *Error values; the transport maps Kind to a status code.
package apperr

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-stack/stack"
	"github.com/rs/zerolog"
)

type Kind int

const (
	KindInternal Kind = iota
	KindUnauthorized
	KindForbidden
	KindNotFound
	KindInvalid
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindForbidden:
		return "forbidden"
	case KindNotFound:
		return "not_found"
	case KindInvalid:
		return "invalid"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// HTTPStatus maps a kind to its response code.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalid:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

type Error struct {
	Kind    Kind
	Message string

	// Fields carries per-field messages for KindInvalid.
	Fields map[string]string
	// Existing carries the conflicting entity for KindConflict.
	Existing interface{}

	Wrapped error
	Stack   CallStack
}

func (e *Error) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Wrapped)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Wrapped
}

type CallStack []StackFrame

func (s CallStack) MarshalZerologArray(a *zerolog.Array) {
	for _, frame := range s {
		a.Object(frame)
	}
}

type StackFrame struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Function string `json:"function"`
}

func (f StackFrame) MarshalZerologObject(e *zerolog.Event) {
	e.
		Str("file", f.File).
		Int("line", f.Line).
		Str("function", f.Function)
}

// ZerologStackMarshaler is installed as zerolog.ErrorStackMarshaler.
var ZerologStackMarshaler = func(err error) interface{} {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Stack != nil {
		return appErr.Stack
	}
	return nil
}

func trace() CallStack {
	t := stack.Trace().TrimRuntime()
	// drop trace() and its constructor
	if len(t) > 2 {
		t = t[2:]
	}
	frames := make(CallStack, len(t))
	for i, call := range t {
		f := call.Frame()
		frames[i] = StackFrame{
			File:     f.File,
			Line:     f.Line,
			Function: f.Function,
		}
	}
	return frames
}

// Wrap marks err as an internal failure. The message is logged, never sent to clients.
func Wrap(err error, format string, args ...interface{}) error {
	return &Error{
		Kind:    KindInternal,
		Message: fmt.Sprintf(format, args...),
		Wrapped: err,
		Stack:   trace(),
	}
}

func Unauthorized(msg string) error {
	return &Error{Kind: KindUnauthorized, Message: msg}
}

func Forbidden(msg string) error {
	return &Error{Kind: KindForbidden, Message: msg}
}

func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Invalid reports bad input. fields may be nil.
func Invalid(msg string, fields map[string]string) error {
	return &Error{Kind: KindInvalid, Message: msg, Fields: fields}
}

func Conflict(msg string, existing interface{}) error {
	return &Error{Kind: KindConflict, Message: msg, Existing: existing}
}

// As returns the *Error in err's chain, or nil.
func As(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// KindOf returns KindInternal for anything that is not an *Error.
func KindOf(err error) Kind {
	if appErr := As(err); appErr != nil {
		return appErr.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
