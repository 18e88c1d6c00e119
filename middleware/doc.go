// Package middleware provides the cross-cutting layers of the innkeeper HTTP stack.
//
// Two flavours are provided. Request ID, client IP, security headers, request
// logging, and metrics are plain net/http middleware, installed on the router
// with Use, so they observe the final status even when the error presenter
// wrote it. The write rate limiter
// and the body limit are handler.Middleware and fail with apperr errors that
// the presenter renders.
//
// Usage:
//
//	metrics := middleware.NewMetrics(prometheus.DefaultRegisterer)
//
//	r := chi.NewRouter()
//	r.Use(
//		middleware.RequestID,
//		middleware.ClientIP,
//		middleware.SecurityHeaders,
//		middleware.Logging(log),
//		metrics.Handler,
//	)
//
//	limiter := middleware.NewWriteLimiter(middleware.RateLimitConfig{Interval: 3 * time.Second})
//	post := handler.Chain(createPost,
//		middleware.RateLimit[*web.Context](limiter),
//		middleware.BodyLimitWithSize[*web.Context](2*middleware.MB),
//	)
//
// Presented errors can be counted per kind by passing metrics.ObserveError to
// response.WithObserver.
package middleware
