package router

import (
	"context"
	"fmt"
	"log/slog"
)

// Navigate moves to path.
//
// The path is normalized. If it equals the current path nothing happens: no
// history entry, no dispatch. Otherwise a history entry for "#"+path is
// pushed (or replaced with WithReplace) and the navigation pipeline runs.
//
// Without WithState the entry carries an empty map[string]any.
//
// Navigate never reports failures to the caller. Missing routes and handler
// errors go to the route error policy; guard aborts are only logged.
func (r *Router) Navigate(ctx context.Context, path string, opts ...NavigateOption) {
	if path == "" {
		r.logger.Warn("navigate called with empty path")
		return
	}

	var options NavigateOptions
	for _, opt := range opts {
		opt(&options)
	}
	if options.State == nil {
		options.State = map[string]any{}
	}

	path = normalizeFull(path)

	r.mu.Lock()
	same := path == r.current.Path
	r.mu.Unlock()
	if same {
		return
	}

	r.logger.Debug("navigating", "path", path, "replace", options.Replace)

	url := "#" + path
	var err error
	if options.Replace {
		err = r.history.ReplaceState(options.State, url)
	} else {
		err = r.history.PushState(options.State, url)
	}
	if err != nil {
		r.handleError(ctx, fmt.Errorf("history update: %w", err), path)
		return
	}

	r.dispatch(ctx, path, options.State)
}

// Replace navigates to path, replacing the current history entry.
func (r *Router) Replace(ctx context.Context, path string, state any) {
	r.Navigate(ctx, path, WithReplace(), WithState(state))
}

// Back moves one entry back in history. The resulting popstate dispatches.
func (r *Router) Back() {
	r.history.Back()
}

// Forward moves one entry forward in history.
func (r *Router) Forward() {
	r.history.Forward()
}

// Go moves delta entries through history; negative values go back.
func (r *Router) Go(delta int) {
	r.history.Go(delta)
}

// handlePopState re-dispatches the location history moved to.
func (r *Router) handlePopState(state any) {
	r.mu.Lock()
	started := r.started
	ctx := r.baseCtx
	r.mu.Unlock()
	if !started {
		return
	}
	r.dispatch(ctx, hashPath(r.history.Hash()), state)
}

// dispatch runs match → guards → middleware → handler → notify for fullPath.
// History has already been updated by the caller.
func (r *Router) dispatch(ctx context.Context, fullPath string, state any) {
	fullPath = normalizeFull(fullPath)
	id := r.newID()
	log := r.logger.With("nav_id", id)

	res, err := r.Resolve(fullPath)
	if err != nil {
		r.handleError(ctx, err, fullPath)
		return
	}

	log.Debug("route matched", "path", res.Path, "pattern", res.Pattern)

	rc := &Context{
		ID:       id,
		Path:     res.Path,
		FullPath: res.FullPath,
		Pattern:  res.Pattern,
		Params:   res.Params,
		Query:    res.Query,
		State:    state,
		Router:   r,
	}

	decision := r.runGuards(ctx, log, rc)
	if !decision.Allowed() {
		if target, ok := decision.RedirectTarget(); ok {
			log.Info("navigation redirected by guard", "path", fullPath, "target", target)
			r.Navigate(ctx, target, WithReplace())
			return
		}
		log.Info("navigation aborted by guard", "path", fullPath)
		return
	}

	r.runMiddleware(ctx, log, rc)

	r.mu.Lock()
	r.current = Location{Path: fullPath, Params: rc.Params, Query: rc.Query}
	onChange := r.onChange
	r.mu.Unlock()

	if err := protect(func() error { return res.handler(ctx, rc) }); err != nil {
		r.handleError(ctx, &HandlerError{Pattern: res.Pattern, Path: fullPath, Err: err}, fullPath)
		return
	}

	if onChange != nil {
		err := protect(func() error {
			onChange(fullPath, rc.Path, rc.Params.clone(), cloneQuery(rc.Query))
			return nil
		})
		if err != nil {
			r.handleError(ctx, fmt.Errorf("route change callback: %w", err), fullPath)
			return
		}
	}

	r.publish(log, Event{
		FullPath: fullPath,
		Path:     rc.Path,
		Params:   rc.Params,
		Query:    rc.Query,
	})
}

// runGuards runs guards in order until one does not allow.
func (r *Router) runGuards(ctx context.Context, log *slog.Logger, rc *Context) Decision {
	r.mu.Lock()
	guards := r.guards
	r.mu.Unlock()

	for _, g := range guards {
		var d Decision
		err := protect(func() error {
			var err error
			d, err = g.fn(ctx, rc)
			return err
		})
		if err != nil {
			log.Error("guard failed", "path", rc.FullPath, "error", err)
			return Abort()
		}
		if !d.Allowed() {
			return d
		}
	}
	return Allow()
}

// runMiddleware runs every middleware in order; failures are logged only.
func (r *Router) runMiddleware(ctx context.Context, log *slog.Logger, rc *Context) {
	r.mu.Lock()
	middleware := r.middleware
	r.mu.Unlock()

	for _, m := range middleware {
		if err := protect(func() error { return m.fn(ctx, rc) }); err != nil {
			log.Error("middleware failed", "path", rc.FullPath, "error", err)
		}
	}
}

// publish delivers ev to every subscriber. A panicking subscriber is logged
// and does not affect the others.
func (r *Router) publish(log *slog.Logger, ev Event) {
	r.mu.Lock()
	subs := r.subs
	r.mu.Unlock()

	for _, s := range subs {
		err := protect(func() error {
			s.fn(Event{
				FullPath: ev.FullPath,
				Path:     ev.Path,
				Params:   ev.Params.clone(),
				Query:    cloneQuery(ev.Query),
			})
			return nil
		})
		if err != nil {
			log.Error("route change subscriber failed", "path", ev.FullPath, "error", err)
		}
	}
}

// handleError applies the route error policy: the OnRouteError callback if
// one is set, otherwise a replace navigation to the fallback path unless the
// failing path is the fallback itself.
func (r *Router) handleError(ctx context.Context, err error, path string) {
	r.mu.Lock()
	onError := r.onError
	fallback := r.fallback
	r.mu.Unlock()

	if onError != nil {
		onError(err, path)
		return
	}

	r.logger.Error("route error", "path", path, "error", err)
	if path != fallback {
		r.Navigate(ctx, fallback, WithReplace())
	}
}
