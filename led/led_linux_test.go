package led

import (
	"errors"
	"os"
	"testing"

	"golang.org/x/sys/unix"
)

func TestSetNotConsole(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("can't create pipe, err: %s", err)
	}
	defer r.Close()
	defer w.Close()

	c := Open(int(w.Fd()))
	err = c.Set(CapsLock)
	if err == nil {
		t.Fatalf("Set on pipe returned no error")
	}
	if !errors.Is(err, unix.ENOTTY) {
		t.Errorf("wrong error on pipe, err: %s", err)
	}
	if err = c.Release(); err == nil {
		t.Errorf("Release on pipe returned no error")
	}
}

func TestBits(t *testing.T) {
	if ScrollLock != 1 || NumLock != 2 || CapsLock != 4 || All != 7 {
		t.Errorf("wrong LED bits: %d %d %d %d", ScrollLock, NumLock, CapsLock, All)
	}
}
