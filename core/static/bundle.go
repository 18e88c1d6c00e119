package static

import (
	"bytes"
	"fmt"
	"io/fs"
	"net/http"
	"sync"

	"github.com/dmitrymomot/innkeeper/core/handler"
)

// Loader produces the body of a bundle.
type Loader func() ([]byte, error)

// Bundle serves a body computed once, on the first request, and reused for
// every request after that. Concurrent first requests wait for the single
// computation. A load error is kept as well, so the loader must be
// deterministic (e.g. read from an embed.FS).
func Bundle[C handler.Context](contentType, cacheControl string, load Loader) handler.HandlerFunc[C] {
	get := sync.OnceValues(load)

	return func(ctx C) handler.Response {
		return func(w http.ResponseWriter, r *http.Request) error {
			body, err := get()
			if err != nil {
				return fmt.Errorf("static: load bundle: %w", err)
			}

			w.Header().Set("Content-Type", contentType)
			if cacheControl != "" {
				w.Header().Set("Cache-Control", cacheControl)
			}
			w.WriteHeader(http.StatusOK)
			if r.Method == http.MethodHead {
				return nil
			}
			_, err = w.Write(body)
			return err
		}
	}
}

// Concat returns a Loader joining the given files from fsys with a newline,
// in the order given.
func Concat(fsys fs.FS, files ...string) Loader {
	return func() ([]byte, error) {
		parts := make([][]byte, 0, len(files))
		for _, name := range files {
			data, err := fs.ReadFile(fsys, name)
			if err != nil {
				return nil, fmt.Errorf("static: read %s: %w", name, err)
			}
			parts = append(parts, data)
		}
		return bytes.Join(parts, []byte("\n")), nil
	}
}
