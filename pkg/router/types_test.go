package router

import (
	"reflect"
	"testing"
)

func TestDecision(t *testing.T) {
	if !Allow().Allowed() {
		t.Error("Allow().Allowed() = false")
	}
	if Abort().Allowed() || (Decision{}).Allowed() {
		t.Error("Abort or zero Decision allowed")
	}
	if _, ok := Abort().RedirectTarget(); ok {
		t.Error("Abort has a redirect target")
	}

	d := Redirect("/login")
	if d.Allowed() {
		t.Error("Redirect allowed")
	}
	if target, ok := d.RedirectTarget(); !ok || target != "/login" {
		t.Errorf("RedirectTarget() = %q, %v", target, ok)
	}
	if d.String() != "redirect(/login)" {
		t.Errorf("String() = %q", d.String())
	}
}

func TestParams(t *testing.T) {
	p := Params{{Name: "category", Value: "music"}, {Name: "id", Value: "3"}}

	if v, ok := p.Get("id"); !ok || v != "3" {
		t.Errorf("Get(id) = %q, %v", v, ok)
	}
	if _, ok := p.Get("missing"); ok {
		t.Error("Get(missing) ok")
	}
	if p.Value("missing") != "" {
		t.Error("Value(missing) not empty")
	}
	if !reflect.DeepEqual(p.Map(), map[string]string{"category": "music", "id": "3"}) {
		t.Errorf("Map() = %v", p.Map())
	}
}

func TestRouteEntryParamsOrder(t *testing.T) {
	table := newRouteTable()
	table.add("/:year/:month/:slug", nil)

	e := table.match("/2024/05/launch")
	if e == nil {
		t.Fatal("no match")
	}
	want := Params{{"year", "2024"}, {"month", "05"}, {"slug", "launch"}}
	if got := e.params("/2024/05/launch"); !reflect.DeepEqual(got, want) {
		t.Errorf("params = %v, want %v", got, want)
	}
}

func TestRouteEntryDuplicateParamNameLastWins(t *testing.T) {
	table := newRouteTable()
	table.add("/:id/x/:id", nil)

	e := table.match("/1/x/2")
	if e == nil {
		t.Fatal("no match")
	}
	want := Params{{"id", "2"}}
	if got := e.params("/1/x/2"); !reflect.DeepEqual(got, want) {
		t.Errorf("params = %v, want %v", got, want)
	}
}
