// Copyright 2022 Kirill Scherba <kirill@scherba.ru>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bitops

import (
	"fmt"

	"github.com/kirill-scherba/bitops/hotkey"
)

// newHotkey creates loop hotkey menu
func (l *Loop) newHotkey() *hotkey.Hotkey {
	return hotkey.New().
		Add([]string{"l", "L"}, "shift light left", func(h *hotkey.Hotkey) {
			l.shift(Left)
		}).
		Add([]string{"r", "R"}, "shift light right", func(h *hotkey.Hotkey) {
			l.shift(Right)
		}).
		Add([]string{"q", "Q"}, "quit application", func(h *hotkey.Hotkey) {
			fmt.Fprint(l.out, "\nQuit\n")
			h.Stop()
		}).

		// Other keys stop the light and show it again
		Unknown(func(h *hotkey.Hotkey, key []byte) {
			l.shift(None)
		})
}
