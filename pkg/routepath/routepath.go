// Package routepath holds the path and query helpers shared by the router
// and its collaborators.
//
// Paths handled here are hash-fragment contents such as "/research/42?tab=1".
// Normalization is deliberately shallow: it never collapses slashes, resolves
// dot segments, or decodes escapes, because registered patterns are compared
// against the normalized form byte for byte.
package routepath

import (
	"net/url"
	"sort"
	"strings"
)

// Root is the canonical root path.
const Root = "/"

// Normalize returns the canonical absolute form of path.
//
//   - "" becomes "/"
//   - a missing leading "/" is prepended
//   - trailing "/" characters are removed unless the path is "/"
//
// Callers that carry a query string must split it off first; Normalize does
// not look for "?".
func Normalize(path string) string {
	if path == "" {
		return Root
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	for len(path) > 1 && strings.HasSuffix(path, "/") {
		path = path[:len(path)-1]
	}
	return path
}

// SplitPathAndQuery splits input on the first "?".
// The query is returned without the leading "?". A missing path portion
// (input starting with "?") yields "/".
func SplitPathAndQuery(input string) (path, query string) {
	path, query, _ = strings.Cut(input, "?")
	if path == "" {
		path = Root
	}
	return path, query
}

// Segments splits path on "/" and drops empty segments, so leading,
// trailing and doubled slashes do not change the segment count.
func Segments(path string) []string {
	parts := strings.Split(path, "/")
	out := parts[:0]
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// IsParam reports whether a pattern segment is a ":name" parameter.
func IsParam(segment string) bool {
	return strings.HasPrefix(segment, ":")
}

// HasParams reports whether pattern contains any ":" at all.
// A pattern that does is only ever matched segment-wise.
func HasParams(pattern string) bool {
	return strings.Contains(pattern, ":")
}

// ParseQuery parses a raw query string ("a=1&b=2", no leading "?") into a
// map. Keys and values are form-decoded ("+" is a space). When a key repeats,
// the last value wins. Each "%XX" escape is decoded on its own; one that is
// not followed by two hex digits is kept literally, the way browsers treat
// URL search params.
func ParseQuery(raw string) map[string]string {
	query := make(map[string]string)
	if raw == "" {
		return query
	}
	for _, pair := range strings.Split(raw, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		query[decode(key)] = decode(value)
	}
	return query
}

func decode(s string) string {
	if !strings.ContainsAny(s, "%+") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '+':
			b.WriteByte(' ')
		case c == '%' && i+2 < len(s) && isHex(s[i+1]) && isHex(s[i+2]):
			b.WriteByte(unhex(s[i+1])<<4 | unhex(s[i+2]))
			i += 2
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isHex(c byte) bool {
	return '0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case c >= 'a':
		return c - 'a' + 10
	case c >= 'A':
		return c - 'A' + 10
	default:
		return c - '0'
	}
}

// EncodeQuery encodes query as "a=1&b=2" with keys in sorted order.
// It returns "" for an empty map.
func EncodeQuery(query map[string]string) string {
	if len(query) == 0 {
		return ""
	}
	values := make(url.Values, len(query))
	for k, v := range query {
		values.Set(k, v)
	}
	return values.Encode()
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
