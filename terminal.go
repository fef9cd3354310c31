// Copyright 2022 Kirill Scherba <kirill@scherba.ru>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitops

import (
	"time"

	"github.com/kirill-scherba/bitops/term"
)

// Terminal is loop Input reading keys from terminal file descriptor
type Terminal struct {
	fd int
}

// NewTerminal creates Terminal input. The terminal should be in cbreak mode,
// see term.MakeCbreak.
func NewTerminal(fd int) *Terminal {
	return &Terminal{fd: fd}
}

func (t *Terminal) KeyAvailable() (bool, error) { return term.KeyAvailable(t.fd) }

func (t *Terminal) WaitKey(timeout time.Duration) (bool, error) {
	return term.WaitKey(t.fd, timeout)
}

func (t *Terminal) ReadKey() (byte, error) { return term.ReadKey(t.fd) }
