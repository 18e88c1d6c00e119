package handler

import (
	"errors"
	"net/http"
)

// ErrNilResponse is passed to the error handler when a handler returns a nil Response.
var ErrNilResponse = errors.New("handler returned nil response")

// ContextFactory builds a request context for a typed handler.
type ContextFactory[C Context] func(w http.ResponseWriter, r *http.Request) C

// Adapt converts a typed handler into a standard http.Handler so it can be
// mounted on any router. Errors returned by the handler or its Response are
// passed to onErr exactly once.
func Adapt[C Context](h HandlerFunc[C], newContext ContextFactory[C], onErr ErrorHandler[C]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := newContext(w, r)

		resp := h(ctx)
		if resp == nil {
			onErr(ctx, ErrNilResponse)
			return
		}

		if err := resp(ctx.ResponseWriter(), ctx.Request()); err != nil {
			onErr(ctx, err)
		}
	})
}
