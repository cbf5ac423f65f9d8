package router

import "context"

// Handler renders a matched route. The router ignores everything a handler
// does except its error: a non-nil error goes to the route error policy.
type Handler func(ctx context.Context, rc *Context) error

// Guard decides whether a navigation may proceed.
// A non-nil error aborts the navigation the same way Abort does.
type Guard func(ctx context.Context, rc *Context) (Decision, error)

// Middleware observes a navigation after every guard allowed it.
// A non-nil error is logged; it never stops the navigation.
type Middleware func(ctx context.Context, rc *Context) error

// Route pairs a pattern with its handler.
type Route struct {
	// Pattern is the path template (e.g., "/research/:id")
	Pattern string

	// Handler is invoked when Pattern matches
	Handler Handler
}

// Param is a single extracted path parameter.
type Param struct {
	Name  string
	Value string
}

// Params holds path parameters in the order they appear in the pattern.
type Params []Param

// Get returns the value of the named parameter.
func (p Params) Get(name string) (string, bool) {
	for _, param := range p {
		if param.Name == name {
			return param.Value, true
		}
	}
	return "", false
}

// Value returns the value of the named parameter, or "".
func (p Params) Value(name string) string {
	v, _ := p.Get(name)
	return v
}

// Map returns the parameters as a map.
func (p Params) Map() map[string]string {
	m := make(map[string]string, len(p))
	for _, param := range p {
		m[param.Name] = param.Value
	}
	return m
}

func (p Params) clone() Params {
	if p == nil {
		return nil
	}
	return append(Params(nil), p...)
}

// Context is the per-navigation bundle handed to guards, middleware and the
// handler. It is built fresh for every navigation.
type Context struct {
	// ID identifies this navigation in logs and traces
	ID string

	// Path is the query-stripped path (e.g., "/research/42")
	Path string

	// FullPath is the normalized path including the query string
	FullPath string

	// Pattern is the route pattern that matched Path
	Pattern string

	// Params are the extracted path parameters
	Params Params

	// Query holds the parsed query string
	Query map[string]string

	// State is the history state the navigation carried
	State any

	// Router is the router running this navigation
	Router *Router
}

// Location describes the most recently dispatched route.
type Location struct {
	// Path is the full path, including any query string
	Path   string
	Params Params
	Query  map[string]string
}

// Event is published to subscribers after every successful dispatch.
type Event struct {
	FullPath string
	Path     string
	Params   Params
	Query    map[string]string
}

// ClickEvent is the subset of a DOM mouse event the router looks at.
type ClickEvent struct {
	// Button is the mouse button; 0 is the primary button
	Button int

	MetaKey  bool
	CtrlKey  bool
	ShiftKey bool
	AltKey   bool

	// Href is the raw href attribute of the closest enclosing anchor,
	// or "" when the click did not land inside an anchor
	Href string
}

type decisionKind int

const (
	decisionAbort decisionKind = iota
	decisionAllow
	decisionRedirect
)

// Decision is the outcome of a guard. The zero value aborts.
type Decision struct {
	kind   decisionKind
	target string
}

// Allow lets the navigation continue to the next guard.
func Allow() Decision {
	return Decision{kind: decisionAllow}
}

// Abort silently stops the navigation.
func Abort() Decision {
	return Decision{kind: decisionAbort}
}

// Redirect abandons the navigation and replaces it with a navigation to path.
func Redirect(path string) Decision {
	return Decision{kind: decisionRedirect, target: path}
}

// Allowed reports whether the decision lets the navigation continue.
func (d Decision) Allowed() bool {
	return d.kind == decisionAllow
}

// RedirectTarget returns the redirect path, if this is a redirect.
func (d Decision) RedirectTarget() (string, bool) {
	if d.kind != decisionRedirect {
		return "", false
	}
	return d.target, true
}

// String implements fmt.Stringer.
func (d Decision) String() string {
	switch d.kind {
	case decisionAllow:
		return "allow"
	case decisionRedirect:
		return "redirect(" + d.target + ")"
	default:
		return "abort"
	}
}
