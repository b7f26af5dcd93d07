// Package signals cancels in-flight work when the shell interrupts
// prompter, so a slow source command never holds up the next prompt.
package signals

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Interrupts are the signals that cancel the context from WithInterrupt.
// SIGHUP covers the terminal going away while a hook is still running.
var Interrupts = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP}

// WithInterrupt derives a context that is canceled when any of Interrupts
// arrives. The returned stop releases the signal handler; call it once the
// command is finished.
func WithInterrupt(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, Interrupts...)

	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(sigChan)
	}()

	return ctx, cancel
}
