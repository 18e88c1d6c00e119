package health

import (
	"github.com/dmitrymomot/innkeeper/core/handler"
	"github.com/dmitrymomot/innkeeper/core/response"
)

// Liveness indicates if the service process is running.
// Always returns "ALIVE" with 200 OK. No dependency checks.
func Liveness[C handler.Context](C) handler.Response {
	return response.String("ALIVE")
}

// NoContent returns HTTP 204 without body. Ideal for high-frequency checks.
func NoContent[C handler.Context](C) handler.Response {
	return response.NoContent()
}
