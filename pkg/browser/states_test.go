package browser

import "testing"

func TestStateTableReplaceReusesKey(t *testing.T) {
	st := newStateTable()
	k := st.push(0, "a")

	for i := 0; i < 10; i++ {
		if got := st.replace(k, i); got != k {
			t.Fatalf("replace() key = %d, want %d", got, k)
		}
	}
	if st.len() != 1 {
		t.Errorf("len() = %d after replaces, want 1", st.len())
	}
	if st.get(k) != 9 {
		t.Errorf("get(%d) = %v, want 9", k, st.get(k))
	}
}

func TestStateTablePushDropsForwardEntries(t *testing.T) {
	st := newStateTable()
	a := st.push(0, "a")
	b := st.push(a, "b")
	c := st.push(b, "c")

	// Back twice to a, then push: b and c are gone from the browser.
	d := st.push(a, "d")

	if st.get(b) != nil || st.get(c) != nil {
		t.Errorf("forward entries kept: b=%v c=%v", st.get(b), st.get(c))
	}
	if st.get(a) != "a" || st.get(d) != "d" {
		t.Errorf("get(a)=%v get(d)=%v", st.get(a), st.get(d))
	}
	if st.len() != 2 {
		t.Errorf("len() = %d, want 2", st.len())
	}
}

func TestStateTableUnkeyedEntry(t *testing.T) {
	st := newStateTable()
	a := st.push(0, "a")

	// An entry the browser created on its own (typed hash) has no key.
	st.push(0, "b")
	if st.get(a) != "a" {
		t.Error("push from an unkeyed entry dropped earlier state")
	}

	k := st.replace(0, "c")
	if k == a || st.get(k) != "c" {
		t.Errorf("replace(0) = %d, get = %v", k, st.get(k))
	}
}

func TestStateTableBoundedByNavigation(t *testing.T) {
	st := newStateTable()
	home := st.push(0, "home")

	// Navigate forward and back repeatedly, always pushing from home.
	for i := 0; i < 100; i++ {
		st.push(home, i)
	}
	if st.len() != 2 {
		t.Errorf("len() = %d, want 2", st.len())
	}
}
