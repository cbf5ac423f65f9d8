package browser

// stateTable keeps the Go values behind browser history entries.
//
// Keys grow with every push and a replace keeps the key of the entry it
// overwrites, so keys increase along the browser's stack. A push from the
// entry holding key k drops every key above k: the browser discards those
// forward entries at the same moment.
type stateTable struct {
	states  map[int]any
	nextKey int
}

func newStateTable() *stateTable {
	return &stateTable{states: make(map[int]any)}
}

// push stores state for a new entry pushed on top of the entry holding
// current (0 when that entry carries no key) and returns the new key.
func (t *stateTable) push(current int, state any) int {
	if current > 0 {
		for k := range t.states {
			if k > current {
				delete(t.states, k)
			}
		}
	}
	t.nextKey++
	t.states[t.nextKey] = state
	return t.nextKey
}

// replace stores state for the entry holding current and returns its key.
// An entry without a key gets a fresh one.
func (t *stateTable) replace(current int, state any) int {
	if _, ok := t.states[current]; ok && current > 0 {
		t.states[current] = state
		return current
	}
	t.nextKey++
	t.states[t.nextKey] = state
	return t.nextKey
}

func (t *stateTable) get(key int) any {
	return t.states[key]
}

func (t *stateTable) len() int {
	return len(t.states)
}
