// Copyright 2022 Kirill Scherba <kirill@scherba.ru>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Loop statistic module

package bitops

import (
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Statistic counts control loop events
type Statistic struct {
	started    time.Time
	keys       int
	ticks      int
	pushes     int
	pushErrors int
}

// setStarted set loop start time
func (s *Statistic) setStarted() {
	s.started = time.Now()
}

// Keys returns number of keys read
func (s *Statistic) Keys() int { return s.keys }

// Ticks returns number of idle ticks which moved the light
func (s *Statistic) Ticks() int { return s.ticks }

// Pushes returns number of indicator writes
func (s *Statistic) Pushes() int { return s.pushes }

// PushErrors returns number of failed indicator writes
func (s *Statistic) PushErrors() int { return s.pushErrors }

// String returns statistic in one line
func (s Statistic) String() string {
	p := message.NewPrinter(language.English)
	var run time.Duration
	if !s.started.IsZero() {
		run = time.Since(s.started).Round(time.Millisecond)
	}
	return p.Sprintf("keys %d, ticks %d, pushes %d, push errors %d, run time %v",
		s.keys, s.ticks, s.pushes, s.pushErrors, run)
}
