// Copyright 2022 Kirill Scherba <kirill@scherba.ru>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitops

import "time"

// delay waits d or less if key pressed. It returns true when a key is
// available to read.
func (l *Loop) delay(d time.Duration) (bool, error) {
	start := l.clock.Millis()
	for {
		left := d - time.Duration(l.clock.Millis()-start)*time.Millisecond
		if left <= 0 {
			return false, nil
		}
		ok, err := l.input.WaitKey(left)
		if err != nil || ok {
			return ok, err
		}
	}
}
