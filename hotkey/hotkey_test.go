package hotkey

import (
	"strings"
	"testing"
)

func TestExecute(t *testing.T) {
	var got []string
	h := New().
		Add([]string{"l", "L"}, "left", func(h *Hotkey) { got = append(got, "left") }).
		Add(KeyCode{Code: []byte{3}, Name: "Ctrl+C"}, "stop", func(h *Hotkey) { h.Stop() }).
		Add("n", "nothing", nil).
		Unknown(func(h *Hotkey, key []byte) { got = append(got, "unknown "+string(key)) })

	if !h.Execute([]byte("l")) || !h.Execute([]byte("L")) {
		t.Errorf("added key not found")
	}
	if !h.Execute([]byte("n")) {
		t.Errorf("key with nil action not found")
	}
	if h.Execute([]byte("x")) {
		t.Errorf("unknown key reported as found")
	}
	want := []string{"left", "left", "unknown x"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("wrong actions executed, got %v, want %v", got, want)
	}

	if h.Stopped() {
		t.Errorf("stopped before stop key")
	}
	h.Execute([]byte{3})
	if !h.Stopped() {
		t.Errorf("not stopped after stop key")
	}
}

func TestString(t *testing.T) {
	h := New().
		Add("r", "right", nil).
		Add([]string{"q", "Q"}, "quit", nil).
		Add(KeyCode{Code: []byte{3}, Name: "Ctrl+C"}, "stop", nil)

	help := h.String()
	lines := strings.Split(strings.TrimSpace(help), "\n")
	if len(lines) != 3 {
		t.Fatalf("wrong number of help lines, help:\n%s", help)
	}
	// Sorted by first key name
	for i, prefix := range []string{"Ctrl+C", "[q Q]", "r"} {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("wrong help line %d: %q", i, lines[i])
		}
	}
}

func TestAddWrongType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Add with wrong keys type did not panic")
		}
	}()
	New().Add(42, "wrong", nil)
}
