// Package router implements hash-fragment routing for the Folio portfolio.
//
// The router provides:
//   - An ordered route table of path patterns with ":name" parameters
//   - Exact-before-parameterized matching with strict segment counts
//   - Query string parsing (last duplicate key wins)
//   - Sequential guards that allow, abort, or redirect a navigation
//   - Sequential middleware that observes a navigation but cannot stop it
//   - History integration through the History interface
//   - Change notification for navigation-aware UI (menus, breadcrumbs)
//
// # Patterns
//
// Patterns are slash-separated templates. Segments starting with ":" are
// parameters and match any non-empty segment; all other segments must match
// literally:
//
//	/research          → only /research
//	/research/:id      → /research/42, /research/about-me
//	/interests/category/:category
//
// An exact pattern always wins over a parameterized one, whatever the
// registration order. Among parameterized patterns the first registered one
// wins. There are no catch-all patterns: a path with a different number of
// segments never matches.
//
// # Pipeline
//
// Every navigation, whether it comes from Navigate, a popstate event, or a
// link click, goes through the same steps:
//
//	normalize → match → params/query → guards → middleware → handler → notify
//
// Failures never escape Navigate. A missing route or a failing handler goes
// to the OnRouteError callback, or by default to a replace navigation to the
// fallback path ("/").
//
// # Usage
//
//	r := router.New(history.NewMemory(""),
//	    router.WithRoutes(
//	        router.Route{Pattern: "/", Handler: home},
//	        router.Route{Pattern: "/research/:id", Handler: project},
//	    ),
//	)
//	r.AddGuard(requireAdmin)
//	r.Start(ctx)
//
//	r.Navigate(ctx, "/research/42?tab=notes")
//	// r.Current().Params.Value("id") == "42"
package router
