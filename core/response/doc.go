// Package response builds handler.Response values: plain bodies, redirects,
// buffered template rendering with a 500 fallback, and the error presenter
// that maps apperr kinds to HTTP outcomes.
//
// Rendering a page:
//
//	func show(ctx *web.Context) handler.Response {
//		return response.Render(views.Inn(data), "html")
//	}
//
// If the component fails the client gets a 500 whose body is the error text.
//
// Presenting errors:
//
//	p := response.NewPresenter(pages, response.WithLogger(log))
//	onErr := response.ErrorHandler[*web.Context](p)
//
// Every apperr kind maps to exactly one Outcome (see Resolve). NonLogin
// redirects to /signin with no body; all other kinds render the error page
// with their status code.
package response
