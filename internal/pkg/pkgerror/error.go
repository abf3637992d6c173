package pkgerror

import (
	"fmt"
	"net/http"
)

// Type tells whether an error is the caller's fault or the server's.
type Type int

const (
	TypeServer     Type = iota // the request was fine, processing failed
	TypeValidation             // the request itself was rejected
)

func (t Type) String() string {
	switch t {
	case TypeServer:
		return "ERROR_TYPE_SERVER"
	case TypeValidation:
		return "ERROR_TYPE_VALIDATION"
	default:
		return "ERROR_TYPE_UNKNOWN"
	}
}

// Code is a stable identifier mapped to an HTTP status code.
type Code int

const (
	CodeInternal   Code = iota // 500
	CodeBadRequest             // 400
	CodeTooLarge               // 413
)

func (c Code) String() string {
	switch c {
	case CodeBadRequest:
		return "ERROR_CODE_BAD_REQUEST"
	case CodeTooLarge:
		return "ERROR_CODE_TOO_LARGE"
	default:
		return "ERROR_CODE_INTERNAL"
	}
}

// Error pairs a cause with the message that may be shown to the caller.
//
// Error() reports the cause so logs keep the detail; Msg() is the safe,
// user-facing text.
type Error struct {
	err     error
	msg     string
	errType Type
	code    Code
}

func (e *Error) Error() string {
	if e.err != nil {
		return e.err.Error()
	}
	if e.msg != "" {
		return e.msg
	}
	if e.errType == TypeValidation {
		return "Invalid request"
	}
	return "Internal error"
}

// String is the verbose form used in logs.
func (e *Error) String() string {
	return fmt.Sprintf("type=%s code=%s msg=%q cause=%v", e.errType, e.code, e.msg, e.err)
}

func (e *Error) Msg() string {
	return e.msg
}

func (e *Error) Type() Type {
	return e.errType
}

func (e *Error) Code() Code {
	return e.code
}

func (e *Error) Unwrap() error {
	return e.err
}

// StatusCode maps the code to an HTTP status.
func (e *Error) StatusCode() int {
	switch e.code {
	case CodeBadRequest:
		return http.StatusBadRequest
	case CodeTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

func newError(err error, msg string, et Type, code Code) error {
	return &Error{err: err, msg: msg, errType: et, code: code}
}

// NewServer reports a processing failure. The cause is logged, never shown.
func NewServer(err error) error {
	return newError(err, "Error processing the file", TypeServer, CodeInternal)
}

// NewBadRequest rejects a request with msg shown to the caller. err stays
// available to errors.Is.
func NewBadRequest(err error, msg string) error {
	return newError(err, msg, TypeValidation, CodeBadRequest)
}

// NewTooLarge rejects a payload over the size limit.
func NewTooLarge(err error) error {
	return newError(err, "File is too large", TypeValidation, CodeTooLarge)
}
