package router

import (
	"net/url"
	"strings"

	"github.com/vango-dev/folio/pkg/routepath"
)

// BuildURL fills the ":name" segments of pattern from params and appends the
// encoded query string. Values are path-escaped. Placeholders without a
// value are left as they are; params that name no placeholder are ignored.
// Query keys are emitted in sorted order.
//
//	BuildURL("/research/:id", map[string]string{"id": "42"}, map[string]string{"tab": "notes"})
//	// "/research/42?tab=notes"
func BuildURL(pattern string, params, query map[string]string) string {
	parts := strings.Split(pattern, "/")
	for i, part := range parts {
		if !routepath.IsParam(part) {
			continue
		}
		if v, ok := params[part[1:]]; ok {
			parts[i] = url.PathEscape(v)
		}
	}
	out := strings.Join(parts, "/")

	if qs := routepath.EncodeQuery(query); qs != "" {
		out += "?" + qs
	}
	return out
}

// BuildURL is the method form of the package-level BuildURL.
func (r *Router) BuildURL(pattern string, params, query map[string]string) string {
	return BuildURL(pattern, params, query)
}
