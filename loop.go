// Copyright 2022 Kirill Scherba <kirill@scherba.ru>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Control loop module

package bitops

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kirill-scherba/bitops/hotkey"
	"github.com/kirill-scherba/bitops/teolog"
)

// DefaultTick is the idle tick period
const DefaultTick = 500 * time.Millisecond

// Input is the keyboard the loop reads keys from
type Input interface {
	// KeyAvailable reports whether a key can be read without waiting
	KeyAvailable() (bool, error)
	// WaitKey waits up to timeout for a key, true if key can be read
	WaitKey(timeout time.Duration) (bool, error)
	// ReadKey reads one key byte
	ReadKey() (byte, error)
}

// Indicator shows bitmode mask
type Indicator interface {
	Set(mask uint8) error
}

// Tick option of New sets idle tick period
type Tick time.Duration

// Loop reads keys and moves the lit LED
type Loop struct {
	input     Input
	indicator Indicator
	out       io.Writer
	clock     Clock
	log       *teolog.Teolog
	tick      time.Duration
	hotkey    *hotkey.Hotkey
	bitmode   Bitmode
	direction Direction
	stat      Statistic
}

// New creates control loop. Options may be Tick, Clock, *teolog.Teolog and
// io.Writer for quit message output (os.Stdout by default).
func New(input Input, indicator Indicator, options ...interface{}) (l *Loop, err error) {

	l = &Loop{
		input:     input,
		indicator: indicator,
		out:       os.Stdout,
		clock:     WallClock,
		tick:      DefaultTick,
		bitmode:   First,
	}

	for _, opt := range options {
		switch v := opt.(type) {
		case Tick:
			if v <= 0 {
				return nil, fmt.Errorf("wrong tick %v", time.Duration(v))
			}
			l.tick = time.Duration(v)
		case *teolog.Teolog:
			l.log = v
		case Clock:
			l.clock = v
		case io.Writer:
			l.out = v
		default:
			return nil, fmt.Errorf("wrong option type %T", opt)
		}
	}

	if l.log == nil {
		l.log = teolog.New()
		l.log.SetLevel(teolog.None)
	}
	l.hotkey = l.newHotkey()

	return
}

// Run reads and executes keys until quit key pressed or ctx is done. It
// returns nil after quit and ctx error after ctx is done. The loop runs once,
// next calls return nil at once.
func (l *Loop) Run(ctx context.Context) error {
	l.stat.setStarted()
	l.log.Info.Printf("loop started, bitmode %s, tick %v", l.bitmode, l.tick)
	l.log.Debug.Print("hotkeys:\n", l.hotkey)
	defer func() { l.log.Info.Println("loop stopped:", l.stat) }()

	for !l.hotkey.Stopped() {
		if err := ctx.Err(); err != nil {
			return err
		}

		ok, err := l.input.KeyAvailable()
		if err != nil {
			return fmt.Errorf("can't check input: %w", err)
		}

		// Move the light while no key pressed. The tick after the delay uses
		// the last processed key even when a new key is already waiting.
		if !ok {
			if _, err = l.delay(l.tick); err != nil {
				return fmt.Errorf("can't wait input: %w", err)
			}
			l.idleTick()
			continue
		}

		key, err := l.input.ReadKey()
		if err != nil {
			return fmt.Errorf("can't read key: %w", err)
		}
		l.stat.keys++
		l.log.Debugv.Printf("got key %q", key)
		l.hotkey.Execute([]byte{key})
	}

	return nil
}

// Bitmode returns current bitmode
func (l *Loop) Bitmode() Bitmode { return l.bitmode }

// Direction returns direction of the last processed key
func (l *Loop) Direction() Direction { return l.direction }

// Statistic returns loop statistic
func (l *Loop) Statistic() Statistic { return l.stat }

// Hotkey returns loop hotkey menu
func (l *Loop) Hotkey() *hotkey.Hotkey { return l.hotkey }

// shift sets direction, moves the light one step and shows it
func (l *Loop) shift(d Direction) {
	l.direction = d
	l.bitmode = d.Shift(l.bitmode)
	l.push()
}

// idleTick moves the light in direction of the last processed key
func (l *Loop) idleTick() {
	if l.direction == None {
		return
	}
	l.stat.ticks++
	l.bitmode = l.direction.Shift(l.bitmode)
	l.push()
}

// push writes bitmode to indicator, write errors are counted and skipped
func (l *Loop) push() {
	l.stat.pushes++
	if err := l.indicator.Set(uint8(l.bitmode)); err != nil {
		l.stat.pushErrors++
		l.log.Debug.Println("can't set indicator:", err)
		return
	}
	l.log.Debugv.Println("indicator set", l.bitmode)
}
