package middleware

import (
	"fmt"
	"mime"
	"net/http"

	"github.com/dmitrymomot/innkeeper/core/apperr"
	"github.com/dmitrymomot/innkeeper/core/handler"
	"github.com/dmitrymomot/innkeeper/core/response"
)

// Common size constants for convenience
const (
	KB int64 = 1024
	MB       = 1024 * KB
	GB       = 1024 * MB
)

// BodyLimitConfig configures the request body limit middleware.
type BodyLimitConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool

	// MaxSize is the maximum allowed size in bytes (default: 4MB)
	MaxSize int64

	// ContentTypeLimit allows setting different limits per media type
	// Example: {"multipart/form-data": 10 * MB}
	ContentTypeLimit map[string]int64
}

// BodyTooLargeError is the cause of the form rejection returned for oversized bodies.
type BodyTooLargeError struct {
	Size  int64
	Limit int64
}

func (e BodyTooLargeError) Error() string {
	return fmt.Sprintf("request body of %s exceeds limit of %s", formatBytes(e.Size), formatBytes(e.Limit))
}

// BodyLimit creates a body limit middleware with a 4MB limit.
func BodyLimit[C handler.Context]() handler.Middleware[C] {
	return BodyLimitWithConfig[C](BodyLimitConfig{})
}

// BodyLimitWithSize creates a body limit middleware with a specified size limit.
func BodyLimitWithSize[C handler.Context](maxSize int64) handler.Middleware[C] {
	return BodyLimitWithConfig[C](BodyLimitConfig{MaxSize: maxSize})
}

// BodyLimitWithConfig restricts request body size. A declared Content-Length
// over the limit is rejected up front with apperr.FormRejection. Otherwise
// the body is wrapped in http.MaxBytesReader, so a body that turns out too
// large fails the form decode, which is reported as a form rejection too.
func BodyLimitWithConfig[C handler.Context](cfg BodyLimitConfig) handler.Middleware[C] {
	if cfg.MaxSize <= 0 {
		cfg.MaxSize = 4 * MB
	}

	return func(next handler.HandlerFunc[C]) handler.HandlerFunc[C] {
		return func(ctx C) handler.Response {
			req := ctx.Request()
			if cfg.Skip != nil && cfg.Skip(req) {
				return next(ctx)
			}

			maxSize := cfg.MaxSize
			if cfg.ContentTypeLimit != nil {
				if mediaType, _, err := mime.ParseMediaType(req.Header.Get("Content-Type")); err == nil {
					if limit, ok := cfg.ContentTypeLimit[mediaType]; ok {
						maxSize = limit
					}
				}
			}

			if req.ContentLength > maxSize {
				return response.Error(apperr.FormRejectionError(BodyTooLargeError{
					Size:  req.ContentLength,
					Limit: maxSize,
				}))
			}

			if req.Body != nil && req.Body != http.NoBody {
				req.Body = http.MaxBytesReader(ctx.ResponseWriter(), req.Body, maxSize)
			}

			return next(ctx)
		}
	}
}

// formatBytes formats bytes into a human-readable string
func formatBytes(bytes int64) string {
	switch {
	case bytes >= GB:
		return fmt.Sprintf("%.2f GB", float64(bytes)/float64(GB))
	case bytes >= MB:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(MB))
	case bytes >= KB:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(KB))
	default:
		return fmt.Sprintf("%d bytes", bytes)
	}
}
