package router

import (
	"github.com/vango-dev/folio/pkg/routepath"
)

// routeEntry is a registered pattern.
type routeEntry struct {
	// pattern is the template exactly as registered
	pattern string

	// segments are the non-empty pattern segments, nil for static patterns
	segments []string

	// parameterized is true when the pattern contains ":"
	parameterized bool

	handler Handler
}

// routeTable keeps patterns in registration order.
type routeTable struct {
	entries []*routeEntry
	byPath  map[string]*routeEntry
}

func newRouteTable() routeTable {
	return routeTable{byPath: make(map[string]*routeEntry)}
}

// add registers a pattern. Re-registering a pattern swaps its handler but
// keeps its original position.
func (t *routeTable) add(pattern string, handler Handler) {
	if existing, ok := t.byPath[pattern]; ok {
		existing.handler = handler
		return
	}
	e := &routeEntry{
		pattern:       pattern,
		parameterized: routepath.HasParams(pattern),
		handler:       handler,
	}
	if e.parameterized {
		e.segments = routepath.Segments(pattern)
	}
	t.entries = append(t.entries, e)
	t.byPath[pattern] = e
}

// remove deletes a pattern and reports whether it was registered.
func (t *routeTable) remove(pattern string) bool {
	if _, ok := t.byPath[pattern]; !ok {
		return false
	}
	delete(t.byPath, pattern)
	for i, e := range t.entries {
		if e.pattern == pattern {
			t.entries = append(t.entries[:i], t.entries[i+1:]...)
			break
		}
	}
	return true
}

// match finds the entry for a normalized, query-stripped path.
// Exact patterns take priority; parameterized patterns are then tried in
// registration order.
func (t *routeTable) match(path string) *routeEntry {
	if e, ok := t.byPath[path]; ok {
		return e
	}

	segments := routepath.Segments(path)
	for _, e := range t.entries {
		if e.parameterized && e.matches(segments) {
			return e
		}
	}
	return nil
}

// patterns returns the registered patterns in order.
func (t *routeTable) patterns() []string {
	out := make([]string, len(t.entries))
	for i, e := range t.entries {
		out[i] = e.pattern
	}
	return out
}

// matches checks path segments against the pattern segment by segment.
func (e *routeEntry) matches(segments []string) bool {
	if len(segments) != len(e.segments) {
		return false
	}
	for i, seg := range e.segments {
		if routepath.IsParam(seg) {
			if segments[i] == "" {
				return false
			}
			continue
		}
		if seg != segments[i] {
			return false
		}
	}
	return true
}

// params extracts parameter values from a path this entry matched.
func (e *routeEntry) params(path string) Params {
	if !e.parameterized {
		return Params{}
	}
	segments := routepath.Segments(path)
	params := make(Params, 0, len(e.segments))
	for i, seg := range e.segments {
		if !routepath.IsParam(seg) || i >= len(segments) {
			continue
		}
		name := seg[1:]
		if idx := params.index(name); idx >= 0 {
			params[idx].Value = segments[i]
			continue
		}
		params = append(params, Param{Name: name, Value: segments[i]})
	}
	return params
}

func (p Params) index(name string) int {
	for i, param := range p {
		if param.Name == name {
			return i
		}
	}
	return -1
}
