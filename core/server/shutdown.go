package server

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/dmitrymomot/innkeeper/core/logger"
)

// ShutdownNotice is printed once the first shutdown signal arrives.
const ShutdownNotice = "signal received, starting graceful shutdown"

type shutdownConfig struct {
	out       io.Writer
	logger    *slog.Logger
	interrupt <-chan os.Signal
	terminate <-chan os.Signal
	injected  bool
}

// ShutdownOption configures WaitForShutdown.
type ShutdownOption func(*shutdownConfig)

// WithNoticeWriter sets where the shutdown notice is printed. Defaults to stdout.
func WithNoticeWriter(w io.Writer) ShutdownOption {
	return func(c *shutdownConfig) {
		if w != nil {
			c.out = w
		}
	}
}

// WithShutdownLogger sets the logger the received signal is reported to.
func WithShutdownLogger(l *slog.Logger) ShutdownOption {
	return func(c *shutdownConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithSignals replaces the process signal sources. A nil channel never fires.
func WithSignals(interrupt, terminate <-chan os.Signal) ShutdownOption {
	return func(c *shutdownConfig) {
		c.interrupt = interrupt
		c.terminate = terminate
		c.injected = true
	}
}

// WaitForShutdown blocks until the process receives an interrupt or, on unix,
// SIGTERM. The first signal wins: the notice is printed and logged and the
// signal is returned. If ctx ends first it returns nil without printing.
func WaitForShutdown(ctx context.Context, opts ...ShutdownOption) os.Signal {
	cfg := &shutdownConfig{
		out:    os.Stdout,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	if !cfg.injected {
		interrupt := make(chan os.Signal, 1)
		signal.Notify(interrupt, os.Interrupt)
		defer signal.Stop(interrupt)
		cfg.interrupt = interrupt

		if terminate := notifyTerminate(); terminate != nil {
			defer signal.Stop(terminate)
			cfg.terminate = terminate
		}
	}

	var sig os.Signal
	select {
	case sig = <-cfg.interrupt:
	case sig = <-cfg.terminate:
	case <-ctx.Done():
		return nil
	}

	fmt.Fprintln(cfg.out, ShutdownNotice)
	cfg.logger.InfoContext(ctx, ShutdownNotice, logger.Signal(sig.String()))
	return sig
}

// ShutdownContext returns a context cancelled on the first shutdown signal.
// The cancellation cause wraps ErrShutdownSignal. Calling the returned
// cancel function releases the signal handlers.
func ShutdownContext(parent context.Context, opts ...ShutdownOption) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancelCause(parent)

	go func() {
		if sig := WaitForShutdown(ctx, opts...); sig != nil {
			cancel(fmt.Errorf("%w: %s", ErrShutdownSignal, sig))
		}
	}()

	return ctx, func() { cancel(context.Canceled) }
}
