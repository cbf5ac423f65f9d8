package errors

import (
	stderrors "errors"
	"fmt"
)

// Category represents the type of error.
type Category string

const (
	CategoryRouting Category = "routing"
	CategoryConfig  Category = "config"
	CategoryContent Category = "content"
	CategoryCLI     Category = "cli"
)

// FolioError is a structured error with a code, an explanation and a hint.
type FolioError struct {
	// Code is a unique error identifier (e.g., "F001").
	Code string

	// Category is the error type.
	Category Category

	// Message is a short description of the error.
	Message string

	// Detail is a longer explanation of the error.
	Detail string

	// Path is the route path or file the error is about, if any.
	Path string

	// Suggestion is a hint on how to fix the error.
	Suggestion string

	// Wrapped is the underlying error, if any.
	Wrapped error
}

// Error implements the error interface.
func (e *FolioError) Error() string {
	msg := e.Message
	if e.Code != "" {
		msg = fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	if e.Path != "" {
		msg += " (" + e.Path + ")"
	}
	if e.Wrapped != nil {
		msg += ": " + e.Wrapped.Error()
	}
	return msg
}

// Unwrap returns the wrapped error for errors.Is/As support.
func (e *FolioError) Unwrap() error {
	return e.Wrapped
}

// WithPath records the route path or file the error is about.
func (e *FolioError) WithPath(path string) *FolioError {
	e.Path = path
	return e
}

// WithSuggestion adds a fix suggestion to the error.
func (e *FolioError) WithSuggestion(s string) *FolioError {
	e.Suggestion = s
	return e
}

// WithDetail replaces the detailed explanation.
func (e *FolioError) WithDetail(d string) *FolioError {
	e.Detail = d
	return e
}

// Wrap wraps another error.
func (e *FolioError) Wrap(err error) *FolioError {
	e.Wrapped = err
	return e
}

// New creates a FolioError from a registered error code.
func New(code string) *FolioError {
	template, ok := registry[code]
	if !ok {
		return &FolioError{
			Code:    code,
			Message: "Unknown error",
		}
	}
	return &FolioError{
		Code:     code,
		Category: template.Category,
		Message:  template.Message,
		Detail:   template.Detail,
	}
}

// Newf creates a FolioError with a formatted message and no code.
func Newf(category Category, format string, args ...any) *FolioError {
	return &FolioError{
		Category: category,
		Message:  fmt.Sprintf(format, args...),
	}
}

// FromError wraps err in a FolioError with the given code. An error that
// already is (or wraps) a *FolioError is returned as that FolioError.
func FromError(err error, code string) *FolioError {
	if err == nil {
		return nil
	}
	var fe *FolioError
	if stderrors.As(err, &fe) {
		return fe
	}
	return New(code).Wrap(err)
}
