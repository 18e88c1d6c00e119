package response

import (
	"net/http"

	"github.com/dmitrymomot/innkeeper/core/handler"
)

// Redirect creates a 302 Found response with no body.
func Redirect(url string) handler.Response {
	return RedirectWithStatus(url, http.StatusFound)
}

// RedirectPermanent creates a 301 Moved Permanently response.
func RedirectPermanent(url string) handler.Response {
	return RedirectWithStatus(url, http.StatusMovedPermanently)
}

// RedirectSeeOther creates a 303 See Other response, used after form posts.
func RedirectSeeOther(url string) handler.Response {
	return RedirectWithStatus(url, http.StatusSeeOther)
}

// RedirectWithStatus creates a redirect with a custom status code.
// Status codes outside the 3xx range fall back to 302. The response always
// carries Location; htmx requests also get HX-Redirect so a full page
// navigation happens instead of a swap.
func RedirectWithStatus(url string, status int) handler.Response {
	if status < 300 || status >= 400 {
		status = http.StatusFound
	}
	return func(w http.ResponseWriter, r *http.Request) error {
		if IsHTMX(r) {
			w.Header().Set(HeaderHXRedirect, url)
		}
		w.Header().Set("Location", url)
		w.WriteHeader(status)
		return nil
	}
}
