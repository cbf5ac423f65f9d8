// Package browser binds the router to a real browser when compiled with
// GOOS=js GOARCH=wasm.
//
// History implements router.History on window.history and the location
// hash. Go values passed as navigation state stay on the Go side: the
// browser entry only carries a numeric key that maps back to the value.
// Replacing an entry reuses its key, and pushing drops the values of the
// forward entries the browser discards.
//
// BindLinks installs one document-level click listener that hands anchor
// clicks to Router.HandleLinkClick and cancels the browser's default
// navigation for the clicks the router took.
//
//	h := browser.NewHistory()
//	r := router.New(h, router.WithRoutes(routes...))
//	release := browser.BindLinks(r)
//	defer release()
//	r.Start(ctx)
//
// On other platforms only the state bookkeeping is compiled.
package browser
