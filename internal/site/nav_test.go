package site

import (
	"reflect"
	"testing"

	"github.com/vango-dev/folio/internal/config"
)

func TestLinkActive(t *testing.T) {
	tests := []struct {
		link, path string
		want       bool
	}{
		{"/", "/", true},
		{"/", "/research", false},
		{"/research", "/research", true},
		{"/research", "/research/1", true},
		{"/research", "/", false},
		{"/agent", "/research", false},
	}
	for _, tt := range tests {
		if got := LinkActive(tt.link, tt.path); got != tt.want {
			t.Errorf("LinkActive(%q, %q) = %v, want %v", tt.link, tt.path, got, tt.want)
		}
	}
}

func TestNavItems(t *testing.T) {
	items := NavItems(config.DefaultNav(), "/interests/timeline")
	var active []string
	for _, it := range items {
		if it.Active {
			active = append(active, it.Path)
		}
	}
	if !reflect.DeepEqual(active, []string{"/interests"}) {
		t.Errorf("active = %v", active)
	}
}

func TestBreadcrumbs(t *testing.T) {
	titles := config.DefaultBreadcrumbs()

	tests := []struct {
		path    string
		want    []Crumb
		visible bool
	}{
		{
			path:    "/",
			want:    []Crumb{{Path: "/", Title: "Home"}},
			visible: false,
		},
		{
			path: "/research/1",
			want: []Crumb{
				{Path: "/", Title: "Home"},
				{Path: "/research", Title: "Research Projects"},
				{Path: "/research/1", Title: "1"},
			},
			visible: true,
		},
		{
			path: "/interests/category/machine-learning",
			want: []Crumb{
				{Path: "/", Title: "Home"},
				{Path: "/interests", Title: "Personal Interests"},
				{Path: "/interests/category", Title: "Category"},
				{Path: "/interests/category/machine-learning", Title: "Machine Learning"},
			},
			visible: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got := Breadcrumbs(tt.path, titles)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Breadcrumbs(%q) = %v, want %v", tt.path, got, tt.want)
			}
			if v := BreadcrumbsVisible(tt.path, got); v != tt.visible {
				t.Errorf("BreadcrumbsVisible = %v, want %v", v, tt.visible)
			}
		})
	}
}

func TestBreadcrumbsRootTitleOverride(t *testing.T) {
	got := Breadcrumbs("/agent", map[string]string{"/": "Start"})
	if got[0].Title != "Start" || got[1].Title != "Agent" {
		t.Errorf("Breadcrumbs = %v", got)
	}
}

func TestFormatPathTitle(t *testing.T) {
	tests := map[string]string{
		"research":         "Research",
		"machine-learning": "Machine Learning",
		"a--b":             "A  B",
		"42":               "42",
		"été-photos":       "Été Photos",
		"ñandú":            "Ñandú",
		"東京-trip":          "東京 Trip",
	}
	for in, want := range tests {
		if got := formatPathTitle(in); got != want {
			t.Errorf("formatPathTitle(%q) = %q, want %q", in, got, want)
		}
	}
}
