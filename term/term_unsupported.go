// Copyright 2022 Kirill Scherba <kirill@scherba.ru>. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd

package term

import (
	"fmt"
	"runtime"
	"time"
)

type state struct{}

func makeCbreak(fd int) (*State, error) {
	return nil, fmt.Errorf("%w: MakeCbreak on %s/%s", ErrUnsupported, runtime.GOOS, runtime.GOARCH)
}

func getState(fd int) (*State, error) {
	return nil, fmt.Errorf("%w: GetState on %s/%s", ErrUnsupported, runtime.GOOS, runtime.GOARCH)
}

func restoreState(fd int, state *State) error {
	return fmt.Errorf("%w: RestoreState on %s/%s", ErrUnsupported, runtime.GOOS, runtime.GOARCH)
}

func keyAvailable(fd int) (bool, error) {
	return false, fmt.Errorf("%w: KeyAvailable on %s/%s", ErrUnsupported, runtime.GOOS, runtime.GOARCH)
}

func waitKey(fd int, timeout time.Duration) (bool, error) {
	return false, fmt.Errorf("%w: WaitKey on %s/%s", ErrUnsupported, runtime.GOOS, runtime.GOARCH)
}

func readKey(fd int) (byte, error) {
	return 0, fmt.Errorf("%w: ReadKey on %s/%s", ErrUnsupported, runtime.GOOS, runtime.GOARCH)
}
