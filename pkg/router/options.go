package router

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/vango-dev/folio/pkg/routepath"
)

// Option configures a Router.
type Option func(*Router)

// WithRoutes registers the initial route table in order.
func WithRoutes(routes ...Route) Option {
	return func(r *Router) {
		for _, rt := range routes {
			r.routes.add(rt.Pattern, rt.Handler)
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Router) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithFallbackPath sets where the default error policy sends the user.
// Defaults to "/".
func WithFallbackPath(path string) Option {
	return func(r *Router) {
		r.fallback = routepath.Normalize(path)
	}
}

// WithIDGenerator overrides how navigation IDs are produced.
// Defaults to random UUIDs.
func WithIDGenerator(gen func() string) Option {
	return func(r *Router) {
		if gen != nil {
			r.newID = gen
		}
	}
}

// WithOnRouteChange sets the callback run after every successful dispatch.
func WithOnRouteChange(fn func(fullPath, path string, params Params, query map[string]string)) Option {
	return func(r *Router) {
		r.onChange = fn
	}
}

// WithOnRouteError sets the callback that replaces the default error policy.
func WithOnRouteError(fn func(err error, path string)) Option {
	return func(r *Router) {
		r.onError = fn
	}
}

func defaultID() string {
	return uuid.NewString()
}

// NavigateOptions configures a single navigation.
type NavigateOptions struct {
	// Replace replaces the current history entry instead of pushing.
	Replace bool

	// State is stored in the history entry and handed to the handler.
	// Nil becomes an empty map[string]any.
	State any
}

// NavigateOption is a functional option for Navigate.
type NavigateOption func(*NavigateOptions)

// WithReplace replaces the current history entry instead of pushing.
func WithReplace() NavigateOption {
	return func(o *NavigateOptions) {
		o.Replace = true
	}
}

// WithState attaches state to the history entry.
func WithState(state any) NavigateOption {
	return func(o *NavigateOptions) {
		o.State = state
	}
}
