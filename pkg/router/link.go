package router

import "strings"

// HandleLinkClick routes an in-page link click.
//
// It returns true when the router took over the click, in which case the
// caller must prevent the browser default. Clicks are left alone when the
// router is not started, when a button other than the primary one was used,
// when any modifier key was held (so "open in new tab" keeps working), or
// when the href is not a "#/" fragment.
func (r *Router) HandleLinkClick(ev ClickEvent) bool {
	r.mu.Lock()
	started := r.started
	ctx := r.baseCtx
	r.mu.Unlock()

	if !started || !IsRouterLink(ev) {
		return false
	}

	r.Navigate(ctx, ev.Href[1:])
	return true
}

// IsRouterLink reports whether a click should be handled by the router.
func IsRouterLink(ev ClickEvent) bool {
	if ev.Button != 0 {
		return false
	}
	if ev.MetaKey || ev.CtrlKey || ev.ShiftKey || ev.AltKey {
		return false
	}
	return strings.HasPrefix(ev.Href, "#/")
}
