// Bitops console lights application. Keys l and r move the lit keyboard LED
// left and right, q quits.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/kirill-scherba/bitops"
	"github.com/kirill-scherba/bitops/led"
	"github.com/kirill-scherba/bitops/teolog"
	"github.com/kirill-scherba/bitops/term"
)

const (
	appName    = "Bitops console lights application"
	appShort   = "bitops"
	appVersion = "0.1.0"
)

var loglevel = flag.String("loglevel", "", "set log level: none, error, info, debug, debugv")

var log = teolog.New()

func main() {
	os.Exit(run())
}

// run starts application and returns exit code. Terminal and lights are
// restored by deferred calls before it returns.
func run() int {

	// Parse flags
	flag.Parse()
	log.SetLevel(*loglevel)
	log.Info.Printf("%s ver. %s", appName, appVersion)

	// Set terminal mode
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprintf(os.Stderr, "%s: can't start: stdin is not a terminal\n", appShort)
		return 1
	}
	oldState, err := term.MakeCbreak(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: can't set terminal mode: %s\n", appShort, err)
		return 1
	}
	defer func() {
		if err := term.RestoreState(fd, oldState); err != nil {
			log.Error.Println("can't restore terminal mode:", err)
		}
	}()

	// Keyboard lights of the console stdout is connected to
	console := led.Open(int(os.Stdout.Fd()))
	defer func() {
		if err := console.Release(); err != nil {
			log.Debug.Println("can't release console lights:", err)
		}
	}()

	loop, err := bitops.New(bitops.NewTerminal(fd), console, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: can't create loop: %s\n", appShort, err)
		return 1
	}

	// React to Ctrl+C
	ctx, stop := notifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = loop.Run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			cause := context.Cause(ctx)
			log.Info.Println("interrupted:", cause)
			return exitCode(cause)
		}
		log.Error.Println(err)
		fmt.Fprintf(os.Stderr, "%s: %s\n", appShort, err)
		return 1
	}

	return 0
}

// signalError is the cause of context canceled by signal
type signalError struct {
	sig syscall.Signal
}

func (e signalError) Error() string { return "got signal " + e.sig.String() }

// exitCode returns 128 plus signal number for signalError and 1 for other
// errors
func exitCode(err error) int {
	var se signalError
	if errors.As(err, &se) {
		return 128 + int(se.sig)
	}
	return 1
}

// notifyContext returns context canceled with signalError cause when one of
// sigs arrives
func notifyContext(parent context.Context, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)
	c := make(chan os.Signal, 1)
	signal.Notify(c, sigs...)
	go func() {
		select {
		case sig := <-c:
			if s, ok := sig.(syscall.Signal); ok {
				cancel(signalError{s})
				return
			}
			cancel(fmt.Errorf("got signal %s", sig))
		case <-ctx.Done():
		}
	}()
	return ctx, func() {
		signal.Stop(c)
		cancel(context.Canceled)
	}
}
