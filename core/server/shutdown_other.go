//go:build !unix

package server

import "os"

// SIGTERM is not delivered on these platforms.
func notifyTerminate() chan os.Signal {
	return nil
}
