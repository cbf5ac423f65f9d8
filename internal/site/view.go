package site

import (
	"sync"
)

// NavItem is a rendered navigation link.
type NavItem struct {
	Path   string
	Label  string
	Active bool
}

// Crumb is one breadcrumb entry.
type Crumb struct {
	Path  string
	Title string
}

// ViewState is a snapshot of what the page shows.
type ViewState struct {
	// Title is the page heading of the active route.
	Title string

	// HTML is the main content.
	HTML string

	// Fullscreen is set by the agent page and cleared on leaving it.
	Fullscreen bool

	// ScrollResets counts scroll-to-top requests.
	ScrollResets int

	Nav             []NavItem
	Breadcrumbs     []Crumb
	ShowBreadcrumbs bool
}

// View is the page model route handlers and subscribers write into.
// A browser binding mirrors it into the DOM through OnChange.
type View struct {
	mu        sync.Mutex
	state     ViewState
	listeners map[int]func(ViewState)
	nextID    int
}

// NewView creates an empty view.
func NewView() *View {
	return &View{listeners: make(map[int]func(ViewState))}
}

// Snapshot returns a copy of the current state.
func (v *View) Snapshot() ViewState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.snapshotLocked()
}

// OnChange registers fn to run after every update. The returned func
// removes it.
func (v *View) OnChange(fn func(ViewState)) (remove func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.nextID++
	id := v.nextID
	v.listeners[id] = fn
	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.listeners, id)
	}
}

// SetContent replaces the main content.
func (v *View) SetContent(title, html string) {
	v.update(func(s *ViewState) {
		s.Title = title
		s.HTML = html
	})
}

// SetFullscreen sets the full-screen flag.
func (v *View) SetFullscreen(on bool) {
	v.update(func(s *ViewState) { s.Fullscreen = on })
}

// ScrollToTop requests a scroll to the top of the page.
func (v *View) ScrollToTop() {
	v.update(func(s *ViewState) { s.ScrollResets++ })
}

func (v *View) setNav(items []NavItem) {
	v.update(func(s *ViewState) { s.Nav = items })
}

func (v *View) setBreadcrumbs(crumbs []Crumb, show bool) {
	v.update(func(s *ViewState) {
		s.Breadcrumbs = crumbs
		s.ShowBreadcrumbs = show
	})
}

func (v *View) update(fn func(*ViewState)) {
	v.mu.Lock()
	fn(&v.state)
	snap := v.snapshotLocked()
	listeners := make([]func(ViewState), 0, len(v.listeners))
	for _, l := range v.listeners {
		listeners = append(listeners, l)
	}
	v.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}

func (v *View) snapshotLocked() ViewState {
	s := v.state
	s.Nav = append([]NavItem(nil), v.state.Nav...)
	s.Breadcrumbs = append([]Crumb(nil), v.state.Breadcrumbs...)
	return s
}
