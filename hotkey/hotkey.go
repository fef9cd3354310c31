// Copyright 2022 Kirill Scherba <kirill@scherba.ru>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package hotkey provides support functions for managing hotkeys in
// terminal/console application.
//
// Function Add is the most common requirement:
//
//	h := hotkey.New()
//	h.Add("H", "help", func(h *hotkey.Hotkey) { fmt.Print(h) })
//
// The caller reads keys itself and passes them to Execute, so actions run on
// the caller's goroutine.
package hotkey

import (
	"errors"
	"fmt"
	"sort"
)

type Hotkey struct {
	hotkeys map[string]*hotkeyData
	unknown func(h *Hotkey, key []byte)
	stop    bool
}

type hotkeyData struct {
	keys        []KeyCode
	description string
	action      func(h *Hotkey)
}

// New Create new hotkey menu
func New() *Hotkey {
	h := &Hotkey{}
	h.hotkeys = make(map[string]*hotkeyData)
	return h
}

// KeyCode define key code and key name which shows in hotkey menu
type KeyCode struct {
	Code []byte
	Name string
}

// name return KeyCode name
func (hk KeyCode) name() string {
	if len(hk.Name) > 0 {
		return hk.Name
	}
	return string(hk.Code)
}

// Add hotkey menu. Keys may be a string, []string, []byte, KeyCode or
// []KeyCode.
func (h *Hotkey) Add(keys interface{}, description string, action func(h *Hotkey)) *Hotkey {

	var keysAr []KeyCode
	switch v := keys.(type) {
	case []byte:
		keysAr = append(keysAr, KeyCode{Code: v})
	case string:
		keysAr = append(keysAr, KeyCode{Code: []byte(v)})
	case []string:
		for i := range v {
			keysAr = append(keysAr, KeyCode{Code: []byte(v[i])})
		}
	case KeyCode:
		keysAr = append(keysAr, v)
	case []KeyCode:
		keysAr = append(keysAr, v...)
	default:
		err := errors.New("wrong type of letters parameter")
		panic(err)
	}

	hd := &hotkeyData{keysAr, description, action}
	for _, l := range keysAr {
		h.hotkeys[string(l.Code)] = hd
	}
	return h
}

// Unknown sets action executed for keys which were not added
func (h *Hotkey) Unknown(action func(h *Hotkey, key []byte)) *Hotkey {
	h.unknown = action
	return h
}

// Execute runs action of key and reports whether the key was found in menu.
// Keys not found are passed to the Unknown action.
func (h *Hotkey) Execute(key []byte) bool {
	hd, ok := h.hotkeys[string(key)]
	if !ok {
		if h.unknown != nil {
			h.unknown(h, key)
		}
		return false
	}
	if hd.action != nil {
		hd.action(h)
	}
	return true
}

// Stop marks hotkey menu stopped, the caller checks it with Stopped
func (h *Hotkey) Stop() {
	h.stop = true
}

// Stopped return true after Stop was called
func (h *Hotkey) Stopped() bool {
	return h.stop
}

// String return string contains hotkey menu help
func (h *Hotkey) String() (str string) {
	var ar []*hotkeyData
	// find in hotkeyData slice
	find := func(hd *hotkeyData) bool {
		for _, v := range ar {
			if v == hd {
				return true
			}
		}
		return false
	}
	// add to hotkeyData slice if does not exists
	add := func(hd *hotkeyData) {
		if find(hd) {
			return
		}
		ar = append(ar, hd)
	}
	// sort hotkeyData slice by first hotkey
	sort := func() {
		sort.Slice(ar, func(i, j int) bool {
			return ar[i].keys[0].name() < ar[j].keys[0].name()
		})
	}

	// Add hotkeyData to slice and sort it
	for i := range h.hotkeys {
		add(h.hotkeys[i])
	}
	sort()

	// Add hotkeys and description to returns string
	for i := range ar {
		var keys interface{}
		if len(ar[i].keys) > 1 {
			k := []string{}
			for _, key := range ar[i].keys {
				k = append(k, key.name())
			}
			keys = k
		} else {
			keys = ar[i].keys[0].name()
		}
		str += fmt.Sprintf("%v\t\t%s\n", keys, ar[i].description)
	}

	return
}
