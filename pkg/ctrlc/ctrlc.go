package ctrlc

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// HandleCtrlC cancels on the first interrupt and exits once in-flight work
// has had grace to wind down.
func HandleCtrlC(cancel context.CancelFunc) {
	handle(cancel, time.Millisecond*250, os.Exit)
}

func handle(cancel context.CancelFunc, grace time.Duration, exit func(int)) chan<- os.Signal {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	logger := slog.Default().With("area", "ctrlc")
	go func() {
		sig := <-c
		logger.Info("ctrl-c", "signal", sig.String())
		cancel()
		time.Sleep(grace)
		exit(1)
	}()
	return c
}
