// Package history provides History implementations for the router.
//
// Memory keeps the stack in process. It is what the CLI simulator and the
// tests run against; the browser build uses package browser instead.
package history

import (
	"strings"
	"sync"
)

// Entry is one history entry.
type Entry struct {
	URL   string
	State any
}

type listener struct {
	id int
	fn func(state any)
}

// Memory is an in-process history stack with browser semantics: pushing
// discards forward entries, replacing rewrites the active entry, and moving
// outside the stack does nothing.
//
// Popstate listeners are called synchronously after the move, outside the
// lock, so a listener may push or replace entries.
type Memory struct {
	mu        sync.Mutex
	entries   []Entry
	index     int
	listeners []listener
	nextID    int
}

// NewMemory creates a history whose only entry is initialURL
// (e.g. "" or "#/research/42").
func NewMemory(initialURL string) *Memory {
	return &Memory{entries: []Entry{{URL: initialURL}}}
}

// PushState adds an entry after the active one and drops any forward entries.
func (m *Memory) PushState(state any, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries[:m.index+1], Entry{URL: url, State: state})
	m.index++
	return nil
}

// ReplaceState overwrites the active entry.
func (m *Memory) ReplaceState(state any, url string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[m.index] = Entry{URL: url, State: state}
	return nil
}

// Back is Go(-1).
func (m *Memory) Back() { m.Go(-1) }

// Forward is Go(1).
func (m *Memory) Forward() { m.Go(1) }

// Go moves delta entries and notifies popstate listeners. A zero delta or a
// target outside the stack is ignored.
func (m *Memory) Go(delta int) {
	m.mu.Lock()
	target := m.index + delta
	if delta == 0 || target < 0 || target >= len(m.entries) {
		m.mu.Unlock()
		return
	}
	m.index = target
	state := m.entries[target].State
	listeners := m.listeners
	m.mu.Unlock()

	for _, l := range listeners {
		l.fn(state)
	}
}

// Hash returns the fragment of the active entry, including "#".
func (m *Memory) Hash() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	url := m.entries[m.index].URL
	if i := strings.IndexByte(url, '#'); i >= 0 && i < len(url)-1 {
		return url[i:]
	}
	return ""
}

// OnPopState registers a popstate listener.
func (m *Memory) OnPopState(fn func(state any)) (remove func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	id := m.nextID
	m.listeners = append(m.listeners, listener{id: id, fn: fn})

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, l := range m.listeners {
			if l.id == id {
				m.listeners = append(m.listeners[:i:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

// Current returns the active entry.
func (m *Memory) Current() Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries[m.index]
}

// Entries returns a copy of the stack.
func (m *Memory) Entries() []Entry {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Entry(nil), m.entries...)
}

// Index returns the position of the active entry.
func (m *Memory) Index() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.index
}

// Listeners returns the number of registered popstate listeners.
func (m *Memory) Listeners() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.listeners)
}
