// Package site is the portfolio application: it registers the page routes,
// the admin guard, the observability middleware, and the navigation and
// breadcrumb subscribers on a router, and renders pages into a View.
package site
