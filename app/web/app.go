package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/klauspost/compress/gzhttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrymomot/innkeeper/core/config"
	"github.com/dmitrymomot/innkeeper/core/handler"
	"github.com/dmitrymomot/innkeeper/core/health"
	"github.com/dmitrymomot/innkeeper/core/logger"
	"github.com/dmitrymomot/innkeeper/core/page"
	"github.com/dmitrymomot/innkeeper/core/response"
	"github.com/dmitrymomot/innkeeper/core/server"
	"github.com/dmitrymomot/innkeeper/core/static"
	"github.com/dmitrymomot/innkeeper/middleware"
)

// HomePath is where the site root redirects to.
const HomePath = "/inn/0"

// App wires configuration, routing, error presentation, and the HTTP server.
type App struct {
	config    Config
	logger    *slog.Logger
	build     page.BuildInfo
	registry  *prometheus.Registry
	checks    []health.Check
	pages     *page.Builder
	presenter *response.Presenter
	metrics   *middleware.Metrics
	limiter   *middleware.WriteLimiter
	router    chi.Router
	handler   http.Handler
	server    *server.Server
	loadCfg   bool
}

// AppOption configures an App.
type AppOption func(*App) error

// NewApp builds the application. Without WithConfig the configuration is
// loaded from the environment.
func NewApp(opts ...AppOption) (*App, error) {
	app := &App{
		logger:  logger.Nop(),
		loadCfg: true,
	}

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	if app.loadCfg {
		if err := config.Load(&app.config); err != nil {
			return nil, err
		}
	}

	if app.registry == nil {
		app.registry = prometheus.NewRegistry()
		app.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	if info, err := os.Stat(app.config.StaticDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("web: static dir %q is not a directory", app.config.StaticDir)
	}
	for _, d := range app.config.Page.ServeDirs {
		if info, err := os.Stat(d.Dir); err != nil || !info.IsDir() {
			return nil, fmt.Errorf("web: serve dir %q for %s is not a directory", d.Dir, d.Path)
		}
	}

	app.pages = page.NewBuilder(app.config.Page, app.build, page.WithLogger(app.logger))
	app.metrics = middleware.NewMetrics(app.registry)
	app.presenter = response.NewPresenter(app.pages,
		response.WithLogger(app.logger),
		response.WithObserver(app.metrics.ObserveError),
	)
	app.limiter = middleware.NewWriteLimiter(middleware.RateLimitConfig{
		Interval: app.config.WriteInterval,
		Burst:    app.config.WriteBurst,
	})

	compress, err := gzhttp.NewWrapper(gzhttp.MinSize(gzhttp.DefaultMinSize))
	if err != nil {
		return nil, fmt.Errorf("web: gzip wrapper: %w", err)
	}

	app.router = chi.NewRouter()
	app.routes()
	app.handler = compress(app.router)

	if app.server == nil {
		s, err := server.NewFromConfig(app.config.Server, server.WithLogger(app.logger))
		if err != nil {
			return nil, err
		}
		app.server = s
	}

	return app, nil
}

// WithConfig uses cfg instead of loading configuration from the environment.
func WithConfig(cfg Config) AppOption {
	return func(app *App) error {
		app.config = cfg
		app.loadCfg = false
		return nil
	}
}

func WithLogger(logger *slog.Logger) AppOption {
	return func(app *App) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		app.logger = logger
		return nil
	}
}

func WithServer(server *server.Server) AppOption {
	return func(app *App) error {
		if server == nil {
			return errors.New("server cannot be nil")
		}
		app.server = server
		return nil
	}
}

// WithBuildInfo sets the build metadata shown in page footers.
func WithBuildInfo(build page.BuildInfo) AppOption {
	return func(app *App) error {
		app.build = build
		return nil
	}
}

// WithRegistry sets the Prometheus registry metrics are registered with and
// served from.
func WithRegistry(reg *prometheus.Registry) AppOption {
	return func(app *App) error {
		if reg == nil {
			return errors.New("registry cannot be nil")
		}
		app.registry = reg
		return nil
	}
}

// WithReadinessCheck adds a dependency check to /health/ready.
func WithReadinessCheck(check health.Check) AppOption {
	return func(app *App) error {
		if check == nil {
			return errors.New("readiness check cannot be nil")
		}
		app.checks = append(app.checks, check)
		return nil
	}
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Pages returns the page context builder shared by all handlers.
func (a *App) Pages() *page.Builder {
	return a.pages
}

// Get registers a read handler for GET and HEAD.
func (a *App) Get(pattern string, h handler.HandlerFunc[*Context], mws ...handler.Middleware[*Context]) {
	adapted := a.adapt(h, mws...)
	a.router.Method(http.MethodGet, pattern, adapted)
	a.router.Method(http.MethodHead, pattern, adapted)
}

// Post registers a write handler. Writes are rate limited per client and
// their bodies are size limited.
func (a *App) Post(pattern string, h handler.HandlerFunc[*Context], mws ...handler.Middleware[*Context]) {
	mws = append([]handler.Middleware[*Context]{
		middleware.RateLimit[*Context](a.limiter),
		middleware.BodyLimitWithSize[*Context](a.config.MaxBodySize),
	}, mws...)
	a.router.Method(http.MethodPost, pattern, a.adapt(h, mws...))
}

// Run serves until ctx is cancelled or a shutdown signal arrives, then
// drains the server.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := server.ShutdownContext(ctx, server.WithShutdownLogger(a.logger))
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(a.server.Run(ctx, a.handler))

	a.logger.InfoContext(ctx, "application started",
		logger.Component("app"),
		slog.String("app", a.config.AppName),
		slog.String("env", a.config.Env),
		slog.String("version", a.build.Version),
	)

	return g.Wait()
}

func (a *App) adapt(h handler.HandlerFunc[*Context], mws ...handler.Middleware[*Context]) http.Handler {
	return handler.Adapt(handler.Chain(h, mws...), newContext, response.ErrorHandler[*Context](a.presenter))
}

func (a *App) routes() {
	r := a.router

	security := middleware.DevelopmentSecurity
	if a.config.IsProduction() {
		security = middleware.BalancedSecurity
	}

	r.Use(
		middleware.RequestID,
		middleware.ClientIP,
		middleware.SecurityHeadersWithConfig(security),
		middleware.LoggingWithConfig(middleware.LoggingConfig{
			Logger: a.logger,
			Skip:   isProbe,
		}),
		a.metrics.Handler,
	)

	r.NotFound(a.adapt(response.NotFound[*Context]).ServeHTTP)
	r.MethodNotAllowed(a.adapt(response.NotFound[*Context]).ServeHTTP)

	a.Get("/", func(*Context) handler.Response {
		return response.Redirect(HomePath)
	})

	a.Get(stylesheetPath, static.Bundle[*Context](stylesheetContentType, stylesheetCacheControl,
		static.Concat(assets, stylesheets...)))
	assetsDir := static.ServeDir[*Context](a.config.StaticDir, static.WithStripPrefix("/static"))
	a.Get("/static", assetsDir)
	a.Get("/static/*", assetsDir)

	for _, d := range a.config.Page.ServeDirs {
		dir := static.ServeDir[*Context](d.Dir, static.WithStripPrefix(d.Path))
		a.Get(d.Path, dir)
		a.Get(d.Path+"/*", dir)
	}

	a.Get("/health/live", health.Liveness[*Context])
	a.Get("/health/ready", health.Readiness[*Context](a.logger, a.checks...))

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(a.registry, promhttp.HandlerOpts{
		Registry: a.registry,
	}))
}

func isProbe(r *http.Request) bool {
	return r.URL.Path == "/health/live" || r.URL.Path == "/health/ready" || r.URL.Path == "/metrics"
}
