package teolog

import (
	"bytes"
	"strings"
	"testing"
)

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New()
	log.SetOutput(&buf)
	log.SetLevel("info")

	log.Error.Println("error message")
	log.Info.Println("info message")
	log.Debug.Println("debug message")
	log.Debugv.Println("debug-v message")

	out := buf.String()
	for _, msg := range []string{"[erro] error message", "[info] info message"} {
		if !strings.Contains(out, msg) {
			t.Errorf("message %q not printed, output: %s", msg, out)
		}
	}
	for _, msg := range []string{"debug message", "debug-v message"} {
		if strings.Contains(out, msg) {
			t.Errorf("message %q printed at info level", msg)
		}
	}
}

func TestLevelFromStr(t *testing.T) {
	log := New()
	for str, level := range map[string]int{
		"":       None,
		"none":   None,
		"ERROR":  Error,
		"Info":   Info,
		"debug":  Debug,
		"debugv": Debugv,
		"loud":   None,
	} {
		log.SetLevel(str)
		if log.Level() != level {
			t.Errorf("wrong level for %q, level = %d", str, log.Level())
		}
	}
}

func TestLevelNone(t *testing.T) {
	var buf bytes.Buffer
	log := New()
	log.SetOutput(&buf)
	log.SetLevel(None)
	log.SetFlags(0)

	log.Error.Println("error message")
	if buf.Len() != 0 {
		t.Errorf("message printed at none level: %s", buf.String())
	}
}
