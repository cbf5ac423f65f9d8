package router

import (
	"context"
	"testing"
)

func TestIsRouterLink(t *testing.T) {
	tests := []struct {
		name string
		ev   ClickEvent
		want bool
	}{
		{"plain hash link", ClickEvent{Href: "#/research"}, true},
		{"root hash link", ClickEvent{Href: "#/"}, true},
		{"middle button", ClickEvent{Button: 1, Href: "#/research"}, false},
		{"right button", ClickEvent{Button: 2, Href: "#/research"}, false},
		{"ctrl", ClickEvent{CtrlKey: true, Href: "#/research"}, false},
		{"meta", ClickEvent{MetaKey: true, Href: "#/research"}, false},
		{"shift", ClickEvent{ShiftKey: true, Href: "#/research"}, false},
		{"alt", ClickEvent{AltKey: true, Href: "#/research"}, false},
		{"no anchor", ClickEvent{}, false},
		{"plain anchor", ClickEvent{Href: "#top"}, false},
		{"external", ClickEvent{Href: "https://example.com/#/x"}, false},
		{"relative file", ClickEvent{Href: "images/cv.pdf"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRouterLink(tt.ev); got != tt.want {
				t.Errorf("IsRouterLink(%+v) = %v, want %v", tt.ev, got, tt.want)
			}
		})
	}
}

func TestHandleLinkClickNavigates(t *testing.T) {
	r, h, rec := startedRouter(t, []string{"/", "/research/:id"})

	var guardCalls int
	r.AddGuard(func(context.Context, *Context) (Decision, error) {
		guardCalls++
		return Allow(), nil
	})

	if !r.HandleLinkClick(ClickEvent{Href: "#/research/9?tab=notes"}) {
		t.Fatal("HandleLinkClick returned false")
	}

	if rec.calls["/research/:id"] != 1 {
		t.Errorf("calls = %v", rec.calls)
	}
	if guardCalls != 1 {
		t.Errorf("guards ran %d times for a link click, want 1", guardCalls)
	}
	if got := h.Current().URL; got != "#/research/9?tab=notes" {
		t.Errorf("history URL = %q", got)
	}
}

func TestHandleLinkClickIgnoresModifiedClicks(t *testing.T) {
	r, h, _ := startedRouter(t, []string{"/", "/a"})

	if r.HandleLinkClick(ClickEvent{CtrlKey: true, Href: "#/a"}) {
		t.Error("ctrl-click handled")
	}
	if len(h.Entries()) != 1 {
		t.Error("ignored click changed history")
	}
}
