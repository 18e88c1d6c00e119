package static

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
)

// validateStartup checks that a file or directory exists and is accessible at startup.
func validateStartup(path string, mustBeDir bool) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			if mustBeDir {
				return fmt.Errorf("directory does not exist: %s", path)
			}
			return fmt.Errorf("file does not exist: %s", path)
		}
		return fmt.Errorf("error accessing path: %w", err)
	}

	if mustBeDir && !info.IsDir() {
		return fmt.Errorf("path is not a directory: %s", path)
	}

	if !mustBeDir && info.IsDir() {
		return fmt.Errorf("path is a directory, not a file: %s", path)
	}

	return nil
}

type encoding struct {
	name string
	ext  string
}

var encodingExt = map[string]string{
	"br":   ".br",
	"gzip": ".gz",
}

func defaultEncodings() []encoding {
	return []encoding{{name: "br", ext: ".br"}, {name: "gzip", ext: ".gz"}}
}

// acceptsEncoding reports whether the Accept-Encoding header allows coding.
// A q value of zero rejects it, a "*" entry accepts anything not listed.
func acceptsEncoding(r *http.Request, coding string) bool {
	wildcard := false
	for _, header := range r.Header.Values("Accept-Encoding") {
		for part := range strings.SplitSeq(header, ",") {
			name, params, _ := strings.Cut(strings.TrimSpace(part), ";")
			name = strings.ToLower(strings.TrimSpace(name))

			q := 1.0
			if v, ok := strings.CutPrefix(strings.TrimSpace(params), "q="); ok {
				if f, err := strconv.ParseFloat(v, 64); err == nil {
					q = f
				}
			}

			switch name {
			case coding:
				return q > 0
			case "*":
				wildcard = q > 0
			}
		}
	}
	return wildcard
}

// addVary appends field to the Vary header unless it is already listed,
// e.g. by a compression wrapper further out.
func addVary(h http.Header, field string) {
	for _, v := range h.Values("Vary") {
		for name := range strings.SplitSeq(v, ",") {
			name = strings.TrimSpace(name)
			if name == "*" || strings.EqualFold(name, field) {
				return
			}
		}
	}
	h.Add("Vary", field)
}
