package router

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	"github.com/vango-dev/folio/pkg/routepath"
)

// GuardID identifies a registered guard.
type GuardID int

// MiddlewareID identifies a registered middleware.
type MiddlewareID int

type guardEntry struct {
	id GuardID
	fn Guard
}

type middlewareEntry struct {
	id MiddlewareID
	fn Middleware
}

type subscriber struct {
	id int
	fn func(Event)
}

// Router owns the route table, the navigation pipeline, and the current
// route. One Router is meant to live for the whole page session.
//
// The mutex protects router state only. Navigations themselves are not
// serialized: two overlapping Navigate calls run their pipelines
// independently and the last dispatch to finish wins.
type Router struct {
	mu sync.Mutex

	history History
	logger  *slog.Logger
	newID   func() string

	routes     routeTable
	guards     []guardEntry
	middleware []middlewareEntry
	subs       []subscriber

	nextGuard      GuardID
	nextMiddleware MiddlewareID
	nextSub        int

	onChange func(fullPath, path string, params Params, query map[string]string)
	onError  func(err error, path string)
	fallback string

	current  Location
	started  bool
	baseCtx  context.Context
	unlisten func()
}

// New creates a router driving the given history.
func New(history History, opts ...Option) *Router {
	r := &Router{
		history:  history,
		logger:   slog.Default(),
		newID:    defaultID,
		routes:   newRouteTable(),
		fallback: routepath.Root,
		baseCtx:  context.Background(),
		current:  Location{Params: Params{}, Query: map[string]string{}},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddRoute registers a handler for a pattern.
// Registering an existing pattern replaces its handler in place.
func (r *Router) AddRoute(pattern string, handler Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes.add(pattern, handler)
}

// RemoveRoute unregisters a pattern. It reports whether the pattern existed.
func (r *Router) RemoveRoute(pattern string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.routes.remove(pattern)
}

// Routes returns the registered patterns in registration order.
func (r *Router) Routes() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.routes.patterns()
}

// AddGuard appends a guard to the guard pipeline.
func (r *Router) AddGuard(g Guard) GuardID {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextGuard++
	r.guards = append(r.guards, guardEntry{id: r.nextGuard, fn: g})
	return r.nextGuard
}

// RemoveGuard removes a guard. It reports whether the guard was registered.
func (r *Router) RemoveGuard(id GuardID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, g := range r.guards {
		if g.id == id {
			r.guards = append(r.guards[:i:i], r.guards[i+1:]...)
			return true
		}
	}
	return false
}

// AddMiddleware appends a middleware to the middleware pipeline.
func (r *Router) AddMiddleware(mw Middleware) MiddlewareID {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextMiddleware++
	r.middleware = append(r.middleware, middlewareEntry{id: r.nextMiddleware, fn: mw})
	return r.nextMiddleware
}

// RemoveMiddleware removes a middleware. It reports whether it was registered.
func (r *Router) RemoveMiddleware(id MiddlewareID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, m := range r.middleware {
		if m.id == id {
			r.middleware = append(r.middleware[:i:i], r.middleware[i+1:]...)
			return true
		}
	}
	return false
}

// SetOnRouteChange sets the callback run after every successful dispatch.
func (r *Router) SetOnRouteChange(fn func(fullPath, path string, params Params, query map[string]string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onChange = fn
}

// SetOnRouteError sets the callback that replaces the default error policy.
// Passing nil restores the default policy.
func (r *Router) SetOnRouteError(fn func(err error, path string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onError = fn
}

// Subscribe registers fn to receive an Event after every successful
// dispatch. The returned func unsubscribes.
func (r *Router) Subscribe(fn func(Event)) (unsubscribe func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextSub++
	id := r.nextSub
	r.subs = append(r.subs, subscriber{id: id, fn: fn})

	var once sync.Once
	return func() {
		once.Do(func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			for i, s := range r.subs {
				if s.id == id {
					r.subs = append(r.subs[:i:i], r.subs[i+1:]...)
					return
				}
			}
		})
	}
}

// Current returns the most recently dispatched route.
func (r *Router) Current() Location {
	r.mu.Lock()
	defer r.mu.Unlock()
	return Location{
		Path:   r.current.Path,
		Params: r.current.Params.clone(),
		Query:  cloneQuery(r.current.Query),
	}
}

// Started reports whether the router is listening for history events.
func (r *Router) Started() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.started
}

// Start dispatches the route for the current location, then begins
// listening for popstate events. Calling Start on a started router only logs
// a warning.
//
// ctx is used for every navigation triggered by history or link events.
func (r *Router) Start(ctx context.Context) {
	r.mu.Lock()
	if r.started {
		r.mu.Unlock()
		r.logger.Warn("router already started")
		return
	}
	r.started = true
	r.baseCtx = ctx
	r.mu.Unlock()

	r.logger.Debug("starting router")
	r.dispatch(ctx, hashPath(r.history.Hash()), nil)

	remove := r.history.OnPopState(r.handlePopState)

	r.mu.Lock()
	if !r.started {
		// Stopped from inside the initial dispatch.
		r.mu.Unlock()
		remove()
		return
	}
	r.unlisten = remove
	r.mu.Unlock()
	r.logger.Debug("router started")
}

// Stop unregisters history listeners. The current route stays as it was.
func (r *Router) Stop() {
	r.mu.Lock()
	if !r.started {
		r.mu.Unlock()
		return
	}
	r.started = false
	remove := r.unlisten
	r.unlisten = nil
	r.mu.Unlock()

	if remove != nil {
		remove()
	}
	r.logger.Debug("router stopped")
}

// Match returns the pattern path matches. Any query is ignored.
func (r *Router) Match(path string) (pattern string, ok bool) {
	path, _ = routepath.SplitPathAndQuery(normalizeFull(path))

	r.mu.Lock()
	defer r.mu.Unlock()
	if e := r.routes.match(path); e != nil {
		return e.pattern, true
	}
	return "", false
}

// Resolution is the result of matching a path without dispatching it.
type Resolution struct {
	Pattern  string
	Path     string
	FullPath string
	Params   Params
	Query    map[string]string

	handler Handler
}

// Resolve matches fullPath against the route table and extracts its params
// and query. It returns a *NotFoundError when nothing matches.
func (r *Router) Resolve(fullPath string) (*Resolution, error) {
	fullPath = normalizeFull(fullPath)
	path, rawQuery := routepath.SplitPathAndQuery(fullPath)

	r.mu.Lock()
	entry := r.routes.match(path)
	var handler Handler
	if entry != nil {
		handler = entry.handler
	}
	r.mu.Unlock()

	if entry == nil {
		return nil, &NotFoundError{Path: fullPath}
	}

	return &Resolution{
		Pattern:  entry.pattern,
		Path:     path,
		FullPath: fullPath,
		Params:   entry.params(path),
		Query:    routepath.ParseQuery(rawQuery),
		handler:  handler,
	}, nil
}

// normalizeFull normalizes the path portion of a path that may carry a
// query string. An empty query is dropped.
func normalizeFull(fullPath string) string {
	path, query, _ := strings.Cut(fullPath, "?")
	path = routepath.Normalize(path)
	if query == "" {
		return path
	}
	return path + "?" + query
}

// hashPath turns a location hash ("#/a") into a router path ("/a").
func hashPath(hash string) string {
	path := strings.TrimPrefix(hash, "#")
	if path == "" {
		return routepath.Root
	}
	return path
}

func cloneQuery(q map[string]string) map[string]string {
	out := make(map[string]string, len(q))
	for k, v := range q {
		out[k] = v
	}
	return out
}
