//go:build js && wasm

// Command folio-wasm runs the portfolio site in the browser.
//
//	GOOS=js GOARCH=wasm go build -o folio.wasm ./cmd/folio-wasm
package main

import (
	"context"
	"os"
	"strings"
	"syscall/js"

	"github.com/vango-dev/folio/internal/config"
	"github.com/vango-dev/folio/internal/site"
	"github.com/vango-dev/folio/pkg/browser"
)

func main() {
	cfg := config.New()
	if raw := js.Global().Get("folioConfig"); raw.Type() == js.TypeString {
		parsed, err := config.Parse([]byte(raw.String()))
		if err != nil {
			println("[folio] invalid folioConfig:", err.Error())
		} else {
			cfg = parsed
		}
	}
	logger := cfg.Logger(os.Stderr)

	s, err := site.New(browser.NewHistory(), cfg, site.WithLogger(logger))
	if err != nil {
		println("[folio] FATAL:", err.Error())
		return
	}

	doc := js.Global().Get("document")
	lastScroll := 0
	s.View().OnChange(func(v site.ViewState) {
		renderView(doc, v)
		if v.ScrollResets != lastScroll {
			lastScroll = v.ScrollResets
			js.Global().Get("window").Call("scrollTo", map[string]any{"top": 0, "behavior": "smooth"})
		}
	})

	release := browser.BindLinks(s.Router())
	defer release()

	if err := s.Start(context.Background()); err != nil {
		println("[folio] start failed:", err.Error())
		return
	}

	select {}
}

// renderView mirrors the view state into the page.
func renderView(doc js.Value, v site.ViewState) {
	content := doc.Call("getElementById", "main-content")
	if content.IsNull() {
		return
	}
	content.Set("innerHTML", v.HTML)
	content.Get("classList").Call("toggle", "agent-fullscreen", v.Fullscreen)
	content.Get("classList").Call("toggle", "with-breadcrumb", v.ShowBreadcrumbs)

	links := doc.Call("querySelectorAll", ".nav-link")
	for i := 0; i < links.Length(); i++ {
		link := links.Index(i)
		path := strings.TrimPrefix(link.Call("getAttribute", "href").String(), "#")
		active := false
		for _, item := range v.Nav {
			if item.Path == path {
				active = item.Active
			}
		}
		link.Get("classList").Call("toggle", "active", active)
	}

	crumbs := doc.Call("getElementById", "breadcrumb-nav")
	if crumbs.IsNull() {
		return
	}
	crumbs.Get("classList").Call("toggle", "hidden", !v.ShowBreadcrumbs)
	list := crumbs.Call("querySelector", ".breadcrumb-list")
	if list.IsNull() {
		return
	}
	list.Set("innerHTML", "")
	for i, c := range v.Breadcrumbs {
		li := doc.Call("createElement", "li")
		li.Set("className", "breadcrumb-item")
		if i == len(v.Breadcrumbs)-1 {
			span := doc.Call("createElement", "span")
			span.Set("className", "breadcrumb-current")
			span.Set("textContent", c.Title)
			li.Call("appendChild", span)
		} else {
			a := doc.Call("createElement", "a")
			a.Set("className", "breadcrumb-link")
			a.Set("href", "#"+c.Path)
			a.Set("textContent", c.Title)
			li.Call("appendChild", a)
		}
		list.Call("appendChild", li)
	}
}
