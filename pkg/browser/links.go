//go:build js && wasm

package browser

import (
	"syscall/js"

	"github.com/vango-dev/folio/pkg/router"
)

// BindLinks routes clicks on in-app anchors through r. The returned func
// removes the listener.
func BindLinks(r *router.Router) (release func()) {
	doc := js.Global().Get("document")
	fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) == 0 {
			return nil
		}
		ev := args[0]
		ce, ok := clickEvent(ev)
		if !ok {
			return nil
		}
		if r.HandleLinkClick(ce) {
			ev.Call("preventDefault")
		}
		return nil
	})
	doc.Call("addEventListener", "click", fn)

	return func() {
		doc.Call("removeEventListener", "click", fn)
		fn.Release()
	}
}

// clickEvent reads the nearest anchor of a DOM click event.
func clickEvent(ev js.Value) (router.ClickEvent, bool) {
	target := ev.Get("target")
	if target.IsUndefined() || target.IsNull() || target.Get("closest").IsUndefined() {
		return router.ClickEvent{}, false
	}
	anchor := target.Call("closest", "a[href]")
	if anchor.IsNull() {
		return router.ClickEvent{}, false
	}
	return router.ClickEvent{
		Button:   ev.Get("button").Int(),
		MetaKey:  ev.Get("metaKey").Bool(),
		CtrlKey:  ev.Get("ctrlKey").Bool(),
		ShiftKey: ev.Get("shiftKey").Bool(),
		AltKey:   ev.Get("altKey").Bool(),
		Href:     anchor.Call("getAttribute", "href").String(),
	}, true
}
