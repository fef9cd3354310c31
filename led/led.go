// Copyright 2022 Kirill Scherba <kirill@scherba.ru>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package led drives the keyboard lights of a Linux virtual console.
//
//	c := led.Open(int(os.Stdout.Fd()))
//	defer c.Release()
//	c.Set(led.ScrollLock | led.CapsLock)
//
// The calling process must own the console (or be root), otherwise Set
// returns a permission error.
package led

import "errors"

// Console LED bits as used by KDSETLED
const (
	ScrollLock = 1 << iota
	NumLock
	CapsLock
)

// All is the mask of every console LED
const All = ScrollLock | NumLock | CapsLock

// ErrUnsupported is returned on systems without console LED ioctls.
var ErrUnsupported = errors.New("led: console lights not supported on this system")

// Console is a console file descriptor which lights are controlled by
type Console struct {
	fd int
}

// Open returns Console which controls lights through fd. Nothing is checked
// until the first Set.
func Open(fd int) *Console {
	return &Console{fd: fd}
}

// Set lights the LEDs selected by mask, bits outside All are dropped
func (c *Console) Set(mask uint8) error {
	return setLED(c.fd, mask&All)
}

// Release gives the LEDs back to the keyboard, they show the real Scroll, Num
// and Caps Lock state again
func (c *Console) Release() error {
	return setLED(c.fd, keyboardFlags)
}
