// Copyright 2022 Kirill Scherba <kirill@scherba.ru>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !linux

package led

const keyboardFlags = 0xFF

func setLED(fd int, mask uint8) error {
	return ErrUnsupported
}
