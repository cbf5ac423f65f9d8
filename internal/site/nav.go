package site

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vango-dev/folio/internal/config"
	"github.com/vango-dev/folio/pkg/routepath"
)

// HomeTitle is the title of the root breadcrumb.
const HomeTitle = "Home"

// LinkActive reports whether a nav link to linkPath is highlighted while
// path is current. The root link is only active on the root itself.
func LinkActive(linkPath, path string) bool {
	if linkPath == path {
		return true
	}
	return path != routepath.Root && linkPath != routepath.Root && strings.HasPrefix(path, linkPath)
}

// NavItems marks the active links for path.
func NavItems(links []config.NavLink, path string) []NavItem {
	items := make([]NavItem, len(links))
	for i, l := range links {
		items[i] = NavItem{Path: l.Path, Label: l.Label, Active: LinkActive(l.Path, path)}
	}
	return items
}

// Breadcrumbs builds the trail for path: the root crumb, then one crumb per
// path prefix. Prefixes without a configured title use their last segment,
// title-cased.
func Breadcrumbs(path string, titles map[string]string) []Crumb {
	rootTitle := HomeTitle
	if t, ok := titles[routepath.Root]; ok {
		rootTitle = t
	}
	crumbs := []Crumb{{Path: routepath.Root, Title: rootTitle}}

	prefix := ""
	for _, seg := range routepath.Segments(path) {
		prefix += "/" + seg
		title, ok := titles[prefix]
		if !ok {
			title = formatPathTitle(seg)
		}
		crumbs = append(crumbs, Crumb{Path: prefix, Title: title})
	}
	return crumbs
}

// BreadcrumbsVisible reports whether the trail is shown for path.
func BreadcrumbsVisible(path string, crumbs []Crumb) bool {
	return path != routepath.Root && len(crumbs) > 1
}

// formatPathTitle turns "machine-learning" into "Machine Learning".
func formatPathTitle(seg string) string {
	words := strings.Split(seg, "-")
	for i, w := range words {
		if w == "" {
			continue
		}
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
