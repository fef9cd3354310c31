// Copyright 2022 Kirill Scherba <kirill@scherba.ru>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bitops is a console lights demonstration of bit shift operations.
// Keys l and r shift a single lit LED left or right, the light keeps moving
// in the last direction every tick until q is pressed.
package bitops

import "github.com/kirill-scherba/bitops/led"

// Bitmode is a mask with exactly one of three LED bits set
type Bitmode uint8

// Bitmode values, first is the initial one
const (
	First Bitmode = led.ScrollLock
	Mid   Bitmode = led.NumLock
	Last  Bitmode = led.CapsLock
)

// Left shifts bitmode left, the bit after Last wraps to First
func (b Bitmode) Left() Bitmode {
	b <<= 1
	if b == Last<<1 {
		b = First
	}
	return b
}

// Right shifts bitmode right, the bit before First wraps to Last
func (b Bitmode) Right() Bitmode {
	b >>= 1
	if b == 0 {
		b = Last
	}
	return b
}

// Valid reports whether exactly one LED bit is set
func (b Bitmode) Valid() bool {
	return b == First || b == Mid || b == Last
}

// String returns bitmode as three binary digits, e.g. 010
func (b Bitmode) String() string {
	s := []byte("000")
	for i := range s {
		if b&(Last>>i) != 0 {
			s[i] = '1'
		}
	}
	return string(s)
}

// Direction is the way the light moves on idle ticks
type Direction int

const (
	None Direction = iota
	Left
	Right
)

// Shift moves b one step in direction d
func (d Direction) Shift(b Bitmode) Bitmode {
	switch d {
	case Left:
		return b.Left()
	case Right:
		return b.Right()
	}
	return b
}

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}
