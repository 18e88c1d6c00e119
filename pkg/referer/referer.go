// Package referer reads the Referer request header, e.g. to send a user
// back to the page a form was posted from.
package referer

import (
	"net/http"
	"strings"
)

// Get returns the Referer header of r with surrounding double quotes
// removed. The boolean is false when the header is absent.
func Get(r *http.Request) (string, bool) {
	values, ok := r.Header["Referer"]
	if !ok || len(values) == 0 {
		return "", false
	}
	return strings.Trim(strings.TrimSpace(values[0]), `"`), true
}

// GetOr returns the referer of r, or fallback when the header is absent or empty.
func GetOr(r *http.Request, fallback string) string {
	if ref, ok := Get(r); ok && ref != "" {
		return ref
	}
	return fallback
}
