package domain

import (
	"errors"
	"fmt"
	"strings"

	"git.appkode.ru/pub/go/failure"
)

// AppError is a domain error with a stable code. Fields names the inputs
// the error is about, e.g. the extraction fields that were not found.
type AppError struct {
	Code    failure.ErrorCode
	Message string
	Fields  []string
	cause   error
}

func (e *AppError) Error() string {
	msg := e.Message
	if len(e.Fields) > 0 {
		msg += " [" + strings.Join(e.Fields, ", ") + "]"
	}

	if e.cause != nil {
		return fmt.Sprintf("%s: %v", msg, e.cause)
	}

	return msg
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func NewError(code failure.ErrorCode, message string, fields ...string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Fields:  fields,
	}
}

func WrapError(err error, code failure.ErrorCode, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		cause:   err,
	}
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}

	return nil, false
}

// GetCode extracts the code of the first AppError in the chain.
func GetCode(err error) (failure.ErrorCode, bool) {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code, true
	}

	return "", false
}
