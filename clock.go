// Copyright 2022 Kirill Scherba <kirill@scherba.ru>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitops

import "time"

// Clock returns wall clock time in milliseconds
type Clock interface {
	Millis() int64
}

type wallClock struct{}

func (wallClock) Millis() int64 { return time.Now().UnixMilli() }

// WallClock is the system clock
var WallClock Clock = wallClock{}
