package site

import (
	"context"
	stderrors "errors"
	"log/slog"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/trace"

	"github.com/vango-dev/folio/internal/config"
	"github.com/vango-dev/folio/internal/errors"
	"github.com/vango-dev/folio/pkg/middleware"
	"github.com/vango-dev/folio/pkg/routepath"
	"github.com/vango-dev/folio/pkg/router"
)

// Site wires the portfolio onto a router.
type Site struct {
	cfg      *config.Config
	logger   *slog.Logger
	history  router.History
	store    *Store
	renderer *Renderer
	view     *View
	router   *router.Router

	fallback string

	metrics []middleware.MetricsOption

	mu     sync.Mutex
	admin  bool
	ctx    context.Context
	errs   []*errors.FolioError
	cancel []func()
}

// Option configures a Site.
type Option func(*options)

type options struct {
	logger         *slog.Logger
	store          *Store
	registry       prometheus.Registerer
	tracerProvider trace.TracerProvider
	newID          func() string
}

// WithLogger sets the logger shared by the site and its router.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithStore replaces the bundled content.
func WithStore(store *Store) Option {
	return func(o *options) { o.store = store }
}

// WithMetricsRegistry registers navigation metrics with reg instead of the
// default Prometheus registerer.
func WithMetricsRegistry(reg prometheus.Registerer) Option {
	return func(o *options) { o.registry = reg }
}

// WithTracerProvider sets the provider for navigation spans.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(o *options) { o.tracerProvider = tp }
}

// WithIDGenerator overrides navigation ids.
func WithIDGenerator(gen func() string) Option {
	return func(o *options) { o.newID = gen }
}

// New builds the site on history. A nil cfg uses config.New().
func New(history router.History, cfg *config.Config, opts ...Option) (*Site, error) {
	if cfg == nil {
		cfg = config.New()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := options{logger: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	if o.store == nil {
		store, err := DefaultStore()
		if err != nil {
			return nil, err
		}
		o.store = store
	}

	s := &Site{
		cfg:      cfg,
		logger:   o.logger,
		history:  history,
		store:    o.store,
		renderer: NewRenderer(),
		view:     NewView(),
		fallback: routepath.Normalize(cfg.Router.FallbackPath),
		admin:    cfg.Session.Admin,
		ctx:      context.Background(),
	}

	ropts := []router.Option{
		router.WithLogger(o.logger),
		router.WithFallbackPath(s.fallback),
		router.WithRoutes(s.routes()...),
		router.WithOnRouteChange(s.onRouteChange),
		router.WithOnRouteError(s.onRouteError),
	}
	if o.newID != nil {
		ropts = append(ropts, router.WithIDGenerator(o.newID))
	}
	s.router = router.New(history, ropts...)

	s.router.AddGuard(s.adminGuard)
	s.router.AddMiddleware(middleware.Logging(o.logger))

	if cfg.Metrics.Enabled {
		mopts := []middleware.MetricsOption{middleware.WithNamespace(cfg.Metrics.Namespace)}
		if o.registry != nil {
			mopts = append(mopts, middleware.WithRegistry(o.registry))
		}
		s.metrics = mopts
		s.router.AddMiddleware(middleware.Prometheus(mopts...))
		s.cancel = append(s.cancel, middleware.ObserveRouter(s.router, mopts...))
	}

	if cfg.Tracing.Enabled {
		topts := []middleware.OTelOption{
			middleware.WithTracerName(cfg.Tracing.TracerName),
			middleware.WithIncludeQuery(cfg.Tracing.IncludeQuery),
		}
		if o.tracerProvider != nil {
			topts = append(topts, middleware.WithTracerProvider(o.tracerProvider))
		}
		s.router.AddMiddleware(middleware.OpenTelemetry(topts...))
	}

	s.cancel = append(s.cancel,
		s.router.Subscribe(s.updateNav),
		s.router.Subscribe(s.updateBreadcrumbs),
	)

	return s, nil
}

// Router returns the underlying router.
func (s *Site) Router() *router.Router { return s.router }

// View returns the page model.
func (s *Site) View() *View { return s.view }

// Store returns the content store.
func (s *Site) Store() *Store { return s.store }

// Start shows the configured initial path when the location has no hash,
// then starts the router.
func (s *Site) Start(ctx context.Context) error {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	if s.history.Hash() == "" && s.cfg.Router.InitialPath != "/" {
		if err := s.history.ReplaceState(nil, "#"+s.cfg.Router.InitialPath); err != nil {
			return errors.New("F002").WithPath(s.cfg.Router.InitialPath).Wrap(err)
		}
	}
	s.router.Start(ctx)
	return nil
}

// Stop stops the router and detaches the site's subscribers.
func (s *Site) Stop() {
	s.router.Stop()
	s.mu.Lock()
	cancel := s.cancel
	s.cancel = nil
	s.mu.Unlock()
	for _, fn := range cancel {
		fn()
	}
}

// SetAdmin grants or revokes access to the admin page.
func (s *Site) SetAdmin(admin bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.admin = admin
}

// IsAdmin reports whether the visitor may open the admin page.
func (s *Site) IsAdmin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.admin
}

// Errors returns the route errors seen so far, oldest first.
func (s *Site) Errors() []*errors.FolioError {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*errors.FolioError(nil), s.errs...)
}

func (s *Site) adminGuard(_ context.Context, rc *router.Context) (router.Decision, error) {
	if rc.Pattern == PathAdmin && !s.IsAdmin() {
		return router.Redirect(PathHome), nil
	}
	return router.Allow(), nil
}

func (s *Site) onRouteChange(_, path string, _ router.Params, _ map[string]string) {
	if path != PathAgent {
		s.view.SetFullscreen(false)
	}
	s.view.ScrollToTop()
}

// onRouteError records the error, then applies the router's usual policy:
// replace-navigate to the fallback unless the failing path is the fallback.
func (s *Site) onRouteError(err error, path string) {
	if s.metrics != nil {
		middleware.RecordRouteError(err, s.metrics...)
	}

	fe := routeError(err, path)
	s.mu.Lock()
	s.errs = append(s.errs, fe)
	ctx := s.ctx
	s.mu.Unlock()

	s.logger.Error("route error", "path", path, "code", fe.Code, "error", err)

	if path != s.fallback {
		s.router.Navigate(ctx, s.fallback, router.WithReplace())
	}
}

func (s *Site) updateNav(ev router.Event) {
	s.view.setNav(NavItems(s.cfg.Nav, ev.Path))
}

func (s *Site) updateBreadcrumbs(ev router.Event) {
	crumbs := Breadcrumbs(ev.Path, s.cfg.Breadcrumbs)
	s.view.setBreadcrumbs(crumbs, BreadcrumbsVisible(ev.Path, crumbs))
}

// routeError converts a router error into a coded error.
func routeError(err error, path string) *errors.FolioError {
	var fe *errors.FolioError
	if stderrors.As(err, &fe) {
		return fe
	}
	if stderrors.Is(err, router.ErrRouteNotFound) {
		return errors.New("F001").WithPath(path).Wrap(err)
	}
	return errors.New("F002").WithPath(path).Wrap(err)
}
