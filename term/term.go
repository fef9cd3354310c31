// Copyright 2022 Kirill Scherba <kirill@scherba.ru>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package term provides support functions for dealing with terminals, as
// commonly found on UNIX systems.
//
// MakeCbreak and KeyAvailable are the most interesting:
//
//	oldState, err := term.MakeCbreak(fd)
//	if err != nil {
//		return err
//	}
//	defer term.RestoreState(fd, oldState)
//
//	if ok, _ := term.KeyAvailable(fd); ok {
//		key, _ := term.ReadKey(fd)
//	}
//
// See the keyprobe example.
package term

import (
	"errors"
	"time"

	xterm "golang.org/x/term"
)

// ErrUnsupported is returned on systems without termios support.
var ErrUnsupported = errors.New("terminal: not supported on this system")

// KeysFuncs contains functions which return key codes returned by ReadKey
type KeysFuncs struct {
}

// Keys contains functions which return key codes returned by ReadKey
var Keys KeysFuncs

// CtrlC return Ctrl+C key code
func (k KeysFuncs) CtrlC() byte { return 3 }

// CtrlD return Ctrl+D key code
func (k KeysFuncs) CtrlD() byte { return 4 }

// Esc return Escape key code
func (k KeysFuncs) Esc() byte { return 27 }

// State contains the state of a terminal.
type State struct {
	state
}

// IsTerminal returns whether the given file descriptor is a terminal.
func IsTerminal(fd int) bool {
	return xterm.IsTerminal(fd)
}

// MakeCbreak puts the terminal connected to fd into non canonical, non echo
// mode and returns the previous state of the terminal so that it can be
// restored. Signal generating keys (Ctrl+C) keep working.
func MakeCbreak(fd int) (*State, error) {
	return makeCbreak(fd)
}

// GetState returns the current state of a terminal which may be useful to
// restore the terminal after a signal.
func GetState(fd int) (*State, error) {
	return getState(fd)
}

// RestoreState restores the terminal connected to the given file descriptor to a
// previous state.
func RestoreState(fd int, oldState *State) error {
	if oldState == nil {
		return errors.New("terminal: nil state")
	}
	return restoreState(fd, oldState)
}

// KeyAvailable reports whether a byte can be read from fd without blocking.
// It never waits and never consumes the byte.
func KeyAvailable(fd int) (bool, error) {
	return keyAvailable(fd)
}

// WaitKey waits up to timeout for a byte to become readable on fd. It returns
// false when the timeout expires or the wait is interrupted by a signal.
func WaitKey(fd int, timeout time.Duration) (bool, error) {
	if timeout <= 0 {
		return keyAvailable(fd)
	}
	return waitKey(fd, timeout)
}

// ReadKey reads exactly one byte from fd
func ReadKey(fd int) (byte, error) {
	return readKey(fd)
}
