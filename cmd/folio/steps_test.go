package main

import (
	"testing"

	"github.com/vango-dev/folio/pkg/router"
)

func TestParseStep(t *testing.T) {
	tests := []struct {
		raw  string
		want step
	}{
		{"/research/1", step{kind: stepNavigate, path: "/research/1"}},
		{"replace:/agent", step{kind: stepReplace, path: "/agent"}},
		{"back", step{kind: stepBack}},
		{"forward", step{kind: stepForward}},
		{"go:-2", step{kind: stepGo, delta: -2}},
		{"click:#/agent", step{kind: stepClick, click: router.ClickEvent{Href: "#/agent"}}},
		{"click:#/agent+ctrl+shift", step{kind: stepClick, click: router.ClickEvent{Href: "#/agent", CtrlKey: true, ShiftKey: true}}},
		{"click:#/agent+middle", step{kind: stepClick, click: router.ClickEvent{Href: "#/agent", Button: 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := parseStep(tt.raw)
			if err != nil {
				t.Fatalf("parseStep(%q) error: %v", tt.raw, err)
			}
			tt.want.raw = tt.raw
			if got != tt.want {
				t.Errorf("parseStep(%q) = %+v, want %+v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestParseStepInvalid(t *testing.T) {
	for _, raw := range []string{"research", "go:x", "replace:", "click:#/a+hyper", "sideways"} {
		if _, err := parseStep(raw); err == nil {
			t.Errorf("parseStep(%q) should fail", raw)
		}
	}
}
