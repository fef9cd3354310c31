//go:build linux

package term

import (
	"io"
	"os"
	"testing"
	"time"
)

// pipe returns read and write ends of a new pipe and closes them at the end
// of the test
func pipe(t *testing.T) (r, w *os.File) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("can't create pipe, err: %s", err)
	}
	t.Cleanup(func() {
		r.Close()
		w.Close()
	})
	return
}

func TestKeyAvailable(t *testing.T) {
	r, w := pipe(t)
	fd := int(r.Fd())

	ok, err := KeyAvailable(fd)
	if err != nil {
		t.Fatalf("KeyAvailable on empty pipe, err: %s", err)
	}
	if ok {
		t.Errorf("key available on empty pipe")
	}

	w.Write([]byte("l"))

	// Check twice, KeyAvailable must not consume the byte
	for i := 0; i < 2; i++ {
		ok, err = KeyAvailable(fd)
		if err != nil {
			t.Fatalf("KeyAvailable, err: %s", err)
		}
		if !ok {
			t.Errorf("key not available after write, check %d", i)
		}
	}

	key, err := ReadKey(fd)
	if err != nil {
		t.Fatalf("can't read key, err: %s", err)
	}
	if key != 'l' {
		t.Errorf("wrong key, key = %q", key)
	}

	ok, _ = KeyAvailable(fd)
	if ok {
		t.Errorf("key available after it was read")
	}
}

func TestWaitKey(t *testing.T) {
	r, w := pipe(t)
	fd := int(r.Fd())

	// Timeout expires when nothing written
	start := time.Now()
	ok, err := WaitKey(fd, 50*time.Millisecond)
	if err != nil {
		t.Fatalf("WaitKey, err: %s", err)
	}
	if ok {
		t.Errorf("WaitKey returned key on empty pipe")
	}
	if d := time.Since(start); d < 40*time.Millisecond {
		t.Errorf("WaitKey returned too early, after %v", d)
	}

	// Returns as soon as a key is written
	go func() {
		time.Sleep(20 * time.Millisecond)
		w.Write([]byte("q"))
	}()
	start = time.Now()
	ok, err = WaitKey(fd, 5*time.Second)
	if err != nil {
		t.Fatalf("WaitKey, err: %s", err)
	}
	if !ok {
		t.Errorf("WaitKey did not see written key")
	}
	if d := time.Since(start); d > 2*time.Second {
		t.Errorf("WaitKey did not return early, after %v", d)
	}
}

func TestReadKeyEOF(t *testing.T) {
	r, w := pipe(t)
	w.Close()

	_, err := ReadKey(int(r.Fd()))
	if err != io.EOF {
		t.Errorf("wrong error on closed pipe, err: %v", err)
	}
}

func TestMakeCbreakNotTerminal(t *testing.T) {
	r, _ := pipe(t)
	fd := int(r.Fd())

	if IsTerminal(fd) {
		t.Fatalf("pipe reported as terminal")
	}
	if _, err := MakeCbreak(fd); err == nil {
		t.Errorf("MakeCbreak on pipe returned no error")
	}
	if _, err := GetState(fd); err == nil {
		t.Errorf("GetState on pipe returned no error")
	}
	if err := RestoreState(fd, nil); err == nil {
		t.Errorf("RestoreState with nil state returned no error")
	}
}
