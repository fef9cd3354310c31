// Copyright 2022 Kirill Scherba <kirill@scherba.ru>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package led

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// Console ioctl from linux/kd.h
const kdSetLED = 0x4B32

// Any value with bits above All makes the kernel show keyboard flags
const keyboardFlags = 0xFF

func setLED(fd int, mask uint8) error {
	if err := unix.IoctlSetInt(fd, kdSetLED, int(mask)); err != nil {
		return fmt.Errorf("led: KDSETLED %#x: %w", mask, err)
	}
	return nil
}
