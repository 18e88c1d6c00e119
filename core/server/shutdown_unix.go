//go:build unix

package server

import (
	"os"
	"os/signal"
	"syscall"
)

func notifyTerminate() chan os.Signal {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGTERM)
	return c
}
