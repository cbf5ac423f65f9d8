package history

import "testing"

func TestMemoryPushAndBack(t *testing.T) {
	m := NewMemory("")

	var popped []any
	m.OnPopState(func(state any) { popped = append(popped, state) })

	_ = m.PushState("a", "#/a")
	_ = m.PushState("b", "#/b")

	if m.Hash() != "#/b" {
		t.Fatalf("Hash() = %q, want #/b", m.Hash())
	}

	m.Back()
	if m.Hash() != "#/a" {
		t.Errorf("after Back Hash() = %q, want #/a", m.Hash())
	}
	if len(popped) != 1 || popped[0] != "a" {
		t.Errorf("popped = %v, want [a]", popped)
	}

	m.Forward()
	if m.Hash() != "#/b" {
		t.Errorf("after Forward Hash() = %q, want #/b", m.Hash())
	}
}

func TestMemoryPushDropsForwardEntries(t *testing.T) {
	m := NewMemory("#/")
	_ = m.PushState(nil, "#/a")
	_ = m.PushState(nil, "#/b")
	m.Back()
	_ = m.PushState(nil, "#/c")

	entries := m.Entries()
	if len(entries) != 3 {
		t.Fatalf("len(entries) = %d, want 3", len(entries))
	}
	if entries[2].URL != "#/c" {
		t.Errorf("entries[2] = %q, want #/c", entries[2].URL)
	}

	m.Forward()
	if m.Index() != 2 {
		t.Errorf("Forward past end moved index to %d", m.Index())
	}
}

func TestMemoryReplace(t *testing.T) {
	m := NewMemory("#/a")
	_ = m.ReplaceState("s", "#/b")

	if len(m.Entries()) != 1 {
		t.Errorf("ReplaceState added an entry")
	}
	if got := m.Current(); got.URL != "#/b" || got.State != "s" {
		t.Errorf("Current() = %+v", got)
	}
}

func TestMemoryGoOutOfRange(t *testing.T) {
	m := NewMemory("")
	calls := 0
	m.OnPopState(func(any) { calls++ })

	m.Go(-1)
	m.Go(0)
	m.Go(5)

	if calls != 0 {
		t.Errorf("listeners called %d times, want 0", calls)
	}
}

func TestMemoryHash(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"", ""},
		{"#", ""},
		{"#/", "#/"},
		{"index.html#/research", "#/research"},
		{"/no/fragment", ""},
	}
	for _, tt := range tests {
		if got := NewMemory(tt.url).Hash(); got != tt.want {
			t.Errorf("Hash() for %q = %q, want %q", tt.url, got, tt.want)
		}
	}
}

func TestMemoryRemoveListener(t *testing.T) {
	m := NewMemory("")
	_ = m.PushState(nil, "#/a")

	calls := 0
	remove := m.OnPopState(func(any) { calls++ })
	remove()
	remove()

	m.Back()
	if calls != 0 {
		t.Errorf("removed listener called %d times", calls)
	}
	if m.Listeners() != 0 {
		t.Errorf("Listeners() = %d, want 0", m.Listeners())
	}
}
