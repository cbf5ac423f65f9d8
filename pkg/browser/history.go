//go:build js && wasm

package browser

import (
	"fmt"
	"sync"
	"syscall/js"
)

// stateKey is the property of history.state holding the Go state key.
const stateKey = "folioKey"

// History is router.History backed by window.history.
type History struct {
	mu sync.Mutex

	window  js.Value
	history js.Value

	states *stateTable

	listeners    map[int]func(state any)
	nextListener int
	popFn        js.Func
	bound        bool
}

// NewHistory returns a History for the global window.
func NewHistory() *History {
	window := js.Global().Get("window")
	return &History{
		window:    window,
		history:   window.Get("history"),
		states:    newStateTable(),
		listeners: make(map[int]func(state any)),
	}
}

// PushState adds a history entry.
func (h *History) PushState(state any, url string) error {
	return h.write("pushState", state, url)
}

// ReplaceState overwrites the current entry.
func (h *History) ReplaceState(state any, url string) error {
	return h.write("replaceState", state, url)
}

func (h *History) write(method string, state any, url string) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("history.%s(%q): %v", method, url, rec)
		}
	}()

	current := entryKey(h.history.Get("state"))

	h.mu.Lock()
	var key int
	if method == "replaceState" {
		key = h.states.replace(current, state)
	} else {
		key = h.states.push(current, state)
	}
	h.mu.Unlock()

	h.history.Call(method, map[string]any{stateKey: key}, "", url)
	return nil
}

// Back moves one entry back.
func (h *History) Back() { h.history.Call("back") }

// Forward moves one entry forward.
func (h *History) Forward() { h.history.Call("forward") }

// Go moves delta entries.
func (h *History) Go(delta int) { h.history.Call("go", delta) }

// Hash returns window.location.hash.
func (h *History) Hash() string {
	return h.window.Get("location").Get("hash").String()
}

// OnPopState registers fn for popstate events. The window listener is
// installed with the first registration and removed with the last.
func (h *History) OnPopState(fn func(state any)) (remove func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextListener++
	id := h.nextListener
	h.listeners[id] = fn
	if !h.bound {
		h.popFn = js.FuncOf(h.onPopState)
		h.window.Call("addEventListener", "popstate", h.popFn)
		h.bound = true
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.listeners, id)
			if len(h.listeners) == 0 && h.bound {
				h.window.Call("removeEventListener", "popstate", h.popFn)
				h.popFn.Release()
				h.bound = false
			}
		})
	}
}

func (h *History) onPopState(_ js.Value, args []js.Value) any {
	var state any
	if len(args) > 0 {
		state = h.lookup(args[0].Get("state"))
	}

	h.mu.Lock()
	listeners := make([]func(any), 0, len(h.listeners))
	for _, l := range h.listeners {
		listeners = append(listeners, l)
	}
	h.mu.Unlock()

	for _, l := range listeners {
		l(state)
	}
	return nil
}

// lookup maps a browser entry state back to the Go value it stands for.
func (h *History) lookup(v js.Value) any {
	key := entryKey(v)
	if key == 0 {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.states.get(key)
}

// entryKey returns the Go state key stored in a browser entry state, or 0.
func entryKey(v js.Value) int {
	if v.Type() != js.TypeObject {
		return 0
	}
	key := v.Get(stateKey)
	if key.Type() != js.TypeNumber {
		return 0
	}
	return key.Int()
}
