package middleware

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/innkeeper/pkg/clientip"
)

// clientIPContextKey is used as a key for storing client IP in request context.
type clientIPContextKey struct{}

// ClientIPConfig configures the client IP extraction middleware.
type ClientIPConfig struct {
	// HeaderName specifies the response header name for the client IP (default: "X-Client-IP")
	HeaderName string
	// StoreInHeader determines whether to include the IP in response headers
	StoreInHeader bool
}

// ClientIP resolves the client IP once per request and stores it in the
// request context for logging and rate limiting.
func ClientIP(next http.Handler) http.Handler {
	return ClientIPWithConfig(ClientIPConfig{})(next)
}

// ClientIPWithConfig creates a client IP middleware with custom configuration.
func ClientIPWithConfig(cfg ClientIPConfig) func(http.Handler) http.Handler {
	if cfg.HeaderName == "" {
		cfg.HeaderName = "X-Client-IP"
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientip.GetIP(r)
			if cfg.StoreInHeader && ip != "" {
				w.Header().Set(cfg.HeaderName, ip)
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), clientIPContextKey{}, ip)))
		})
	}
}

// GetClientIP retrieves the client IP stored by the ClientIP middleware.
func GetClientIP(ctx context.Context) (string, bool) {
	ip, ok := ctx.Value(clientIPContextKey{}).(string)
	return ip, ok && ip != ""
}

// RequestClientIP returns the IP stored in the request context, resolving
// it from the request when the ClientIP middleware did not run.
func RequestClientIP(r *http.Request) string {
	if ip, ok := GetClientIP(r.Context()); ok {
		return ip
	}
	return clientip.GetIP(r)
}
