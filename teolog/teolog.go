// Copyright 2022 Kirill Scherba <kirill@scherba.ru>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Teolog message logger extends standart go log with levels. There is there
// next levels from hi to low:
// NONE, ERROR, INFO, DEBUG, DEBUGV
//
// Messages are written to stderr by default, stdout belongs to the
// application.
package teolog

import (
	"io"
	"log"
	"os"
	"strings"
)

type Teolog struct {
	Error  *log.Logger
	Info   *log.Logger
	Debug  *log.Logger
	Debugv *log.Logger
	levels []*log.Logger
	level  int
	out    io.Writer
}

const (
	None = iota
	Error
	Info
	Debug
	Debugv
)

// New create new teolog, all levels are enabled
func New() (teolog *Teolog) {
	flag := log.LstdFlags | log.Lmsgprefix | log.Lshortfile | log.Lmicroseconds
	teolog = &Teolog{
		Error:  log.New(os.Stderr, "[erro] ", flag),
		Info:   log.New(os.Stderr, "[info] ", flag),
		Debug:  log.New(os.Stderr, "[debu] ", flag),
		Debugv: log.New(os.Stderr, "[debv] ", flag),
		level:  Debugv,
		out:    os.Stderr,
	}
	teolog.levels = append(teolog.levels,
		teolog.Error, teolog.Info, teolog.Debug, teolog.Debugv,
	)

	return
}

func (l *Teolog) SetFlags(flag int) {
	for _, tl := range l.levels {
		tl.SetFlags(flag | log.Lmsgprefix)
	}
}

// SetOutput sets output destination of enabled levels
func (l *Teolog) SetOutput(w io.Writer) {
	l.out = w
	l.SetLevel(l.level)
}

// Level returns current log level
func (l *Teolog) Level() int {
	return l.level
}

// SetLevel set log level. There is there next levels from hi to low:
// NONE, ERROR, INFO, DEBUG, DEBUGV
func (l *Teolog) SetLevel(leveli interface{}) {
	var level int
	switch v := leveli.(type) {
	case int:
		level = v
	case string:
		level = l.levelFromStr(v)
	}
	l.level = level
	for i, tl := range l.levels {
		if i < level {
			tl.SetOutput(l.out)
		} else {
			tl.SetOutput(io.Discard)
		}
	}
}

func (l *Teolog) levelFromStr(level string) int {
	switch strings.ToLower(level) {
	case "none":
		return None
	case "error":
		return Error
	case "info":
		return Info
	case "debug":
		return Debug
	case "debugv":
		return Debugv
	default:
		return None
	}
}
