package response

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/innkeeper/core/apperr"
	"github.com/dmitrymomot/innkeeper/core/handler"
	"github.com/dmitrymomot/innkeeper/core/logger"
	"github.com/dmitrymomot/innkeeper/core/page"
)

// Observer is notified of every presented error.
type Observer func(kind apperr.Kind, status int)

// Presenter turns errors into HTTP responses using the outcome table.
type Presenter struct {
	pages    *page.Builder
	view     ErrorView
	logger   *slog.Logger
	observer Observer
}

// PresenterOption configures a Presenter.
type PresenterOption func(*Presenter)

// WithLogger sets the logger failures are reported to.
func WithLogger(l *slog.Logger) PresenterOption {
	return func(p *Presenter) {
		if l != nil {
			p.logger = l
		}
	}
}

// WithErrorView replaces the error page component.
func WithErrorView(v ErrorView) PresenterOption {
	return func(p *Presenter) {
		if v != nil {
			p.view = v
		}
	}
}

// WithObserver registers a hook called for each presented error, e.g. to
// count errors by kind.
func WithObserver(o Observer) PresenterOption {
	return func(p *Presenter) {
		p.observer = o
	}
}

// NewPresenter creates a Presenter building page context with pages.
func NewPresenter(pages *page.Builder, opts ...PresenterOption) *Presenter {
	p := &Presenter{
		pages:  pages,
		view:   DefaultErrorView,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.pages == nil {
		p.pages = page.NewBuilder(page.Config{}, page.BuildInfo{})
	}
	return p
}

// Present maps err to a response. NonLogin redirects to the sign-in page
// without logging; every other error is logged and rendered as the error
// page with the status from the outcome table.
func (p *Presenter) Present(err error) handler.Response {
	e := apperr.As(err)
	if e == nil {
		e = apperr.InternalError(handler.ErrNilResponse)
	}
	out := ResolveKind(e.Kind)

	if p.observer != nil {
		p.observer(e.Kind, out.Status)
	}

	if out.IsRedirect() {
		return RedirectWithStatus(out.Redirect, out.Status)
	}

	data := ErrorPage{
		Page:   p.pages.Build("Error", page.DefaultSiteConfig(), nil, false),
		Status: StatusLine(out.Status),
		Error:  e.Error(),
	}
	render := RenderWithStatus(p.view(data), "html", out.Status)

	return func(w http.ResponseWriter, r *http.Request) error {
		p.logger.ErrorContext(r.Context(), "request failed",
			logger.StatusCode(out.Status),
			logger.ErrorKind(e.Kind.String()),
			logger.Error(e),
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
		)
		return render(w, r)
	}
}

// ErrorHandler adapts p to the handler error contract.
func ErrorHandler[C handler.Context](p *Presenter) handler.ErrorHandler[C] {
	return func(ctx C, err error) {
		Send(ctx, p.Present(err))
	}
}

// NotFound is a handler presenting apperr.ErrNotFound.
func NotFound[C handler.Context](C) handler.Response {
	return Error(apperr.ErrNotFound)
}
