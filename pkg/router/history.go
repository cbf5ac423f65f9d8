package router

// History is the browser history surface the router drives.
//
// URLs passed to PushState and ReplaceState are hash fragments of the form
// "#/path?query". The router is the only writer; other code that pushes
// entries directly bypasses guards and desynchronizes the current route.
type History interface {
	// PushState adds a history entry carrying state.
	PushState(state any, url string) error

	// ReplaceState overwrites the current history entry.
	ReplaceState(state any, url string) error

	// Back, Forward and Go move through the history stack. Moving fires a
	// popstate notification; they never dispatch on their own.
	Back()
	Forward()
	Go(delta int)

	// Hash returns the current location hash including the leading "#",
	// or "" when there is none.
	Hash() string

	// OnPopState registers fn to be called with the entry state whenever the
	// active entry changes through Back, Forward or Go. The returned func
	// removes the registration.
	OnPopState(fn func(state any)) (remove func())
}
