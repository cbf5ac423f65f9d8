package router

import (
	"errors"
	"fmt"
)

// ErrRouteNotFound is matched by errors.Is for every *NotFoundError.
var ErrRouteNotFound = errors.New("route not found")

// NotFoundError reports that no registered pattern matches a path.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("route not found: %s", e.Path)
}

// Is makes errors.Is(err, ErrRouteNotFound) hold.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrRouteNotFound
}

// HandlerError wraps an error returned (or a panic raised) by a handler.
type HandlerError struct {
	Pattern string
	Path    string
	Err     error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler for %s (%s): %v", e.Pattern, e.Path, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// PanicError carries a value recovered from a panicking guard, middleware,
// handler or callback.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// protect runs fn, turning a panic into a *PanicError.
func protect(fn func() error) (err error) {
	defer func() {
		if v := recover(); v != nil {
			err = &PanicError{Value: v}
		}
	}()
	return fn()
}
