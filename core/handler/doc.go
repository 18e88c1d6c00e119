// Package handler provides the types shared by every HTTP-facing package of
// the application: a request Context, the Response render function, typed
// handlers, error handlers and middleware.
//
// Handlers never write to the connection directly. They return a Response,
// and the Response is executed by Adapt, which also routes any returned
// error to a single ErrorHandler:
//
//	func home(ctx *web.Context) handler.Response {
//		return response.Redirect("/inn/0")
//	}
//
//	mux.Method(http.MethodGet, "/", handler.Adapt(home, web.NewContext, presenter.Handle))
//
// Middleware composes with Chain; the first middleware listed runs first:
//
//	h := handler.Chain(createPost, middleware.RequestID[*web.Context](), limiter.Middleware())
package handler
