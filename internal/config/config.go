package config

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/vango-dev/folio/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "folio.json"

	// DefaultFallbackPath is where the router goes after a route error.
	DefaultFallbackPath = "/"

	// DefaultInitialPath is the path used when the location has no hash.
	DefaultInitialPath = "/"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "info"

	// DefaultLogFormat is the default log handler format.
	DefaultLogFormat = "text"

	// DefaultMetricsNamespace is the default Prometheus namespace.
	DefaultMetricsNamespace = "folio"

	// DefaultTracerName is the default OpenTelemetry tracer name.
	DefaultTracerName = "folio"
)

// Config represents the complete folio.json configuration.
type Config struct {
	// Name is the site name.
	Name string `json:"name,omitempty"`

	// Router contains navigation settings.
	Router RouterConfig `json:"router"`

	// Log contains logging settings.
	Log LogConfig `json:"log"`

	// Metrics contains Prometheus settings.
	Metrics MetricsConfig `json:"metrics"`

	// Tracing contains OpenTelemetry settings.
	Tracing TracingConfig `json:"tracing"`

	// Nav lists the navigation links shown in the site header.
	Nav []NavLink `json:"nav,omitempty"`

	// Breadcrumbs maps a path prefix to its breadcrumb title.
	Breadcrumbs map[string]string `json:"breadcrumbs,omitempty"`

	// Session contains the simulated visitor session.
	Session SessionConfig `json:"session"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RouterConfig contains navigation settings.
type RouterConfig struct {
	// InitialPath is dispatched on start when the location has no hash.
	InitialPath string `json:"initialPath,omitempty"`

	// FallbackPath is where the default error policy navigates.
	FallbackPath string `json:"fallbackPath,omitempty"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is text or json.
	Format string `json:"format,omitempty"`
}

// MetricsConfig contains Prometheus settings.
type MetricsConfig struct {
	// Enabled turns on the navigation metrics middleware.
	Enabled bool `json:"enabled"`

	// Namespace prefixes every metric name.
	Namespace string `json:"namespace,omitempty"`
}

// TracingConfig contains OpenTelemetry settings.
type TracingConfig struct {
	// Enabled turns on the navigation tracing middleware.
	Enabled bool `json:"enabled"`

	// TracerName is the instrumentation scope name.
	TracerName string `json:"tracerName,omitempty"`

	// IncludeQuery records query keys on navigation spans.
	IncludeQuery bool `json:"includeQuery,omitempty"`
}

// NavLink is one entry of the site navigation.
type NavLink struct {
	Path  string `json:"path"`
	Label string `json:"label"`
}

// SessionConfig describes the visitor the site renders for.
type SessionConfig struct {
	// Admin grants access to the /admin page.
	Admin bool `json:"admin,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Router: RouterConfig{
			InitialPath:  DefaultInitialPath,
			FallbackPath: DefaultFallbackPath,
		},
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Metrics: MetricsConfig{
			Enabled:   true,
			Namespace: DefaultMetricsNamespace,
		},
		Tracing: TracingConfig{
			Enabled:    true,
			TracerName: DefaultTracerName,
		},
		Nav:         DefaultNav(),
		Breadcrumbs: DefaultBreadcrumbs(),
	}
}

// DefaultNav returns the navigation links of the portfolio site.
func DefaultNav() []NavLink {
	return []NavLink{
		{Path: "/", Label: "Home"},
		{Path: "/agent", Label: "Agent"},
		{Path: "/research", Label: "Research"},
		{Path: "/interests", Label: "Interests"},
	}
}

// DefaultBreadcrumbs returns the breadcrumb titles of the portfolio site.
func DefaultBreadcrumbs() map[string]string {
	return map[string]string{
		"/agent":              "AI Agent",
		"/research":           "Research Projects",
		"/interests":          "Personal Interests",
		"/interests/timeline": "Timeline",
		"/interests/category": "Category",
		"/admin":              "Admin",
	}
}

// Load reads configuration from the specified directory.
// It looks for folio.json in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadOrDefault is Load, except that a missing folio.json yields the
// defaults instead of an error.
func LoadOrDefault(dir string) (*Config, error) {
	cfg, err := Load(dir)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return New(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("F101").
				WithPath(path).
				WithDetail("No folio.json found in " + filepath.Dir(path)).
				WithSuggestion("Create folio.json or run without --config to use defaults").
				Wrap(err)
		}
		return nil, errors.New("F101").WithPath(path).Wrap(err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, errors.FromError(err, "F101").WithPath(path)
	}
	cfg.configPath = path
	return cfg, nil
}

// Parse decodes and validates a folio.json document.
func Parse(data []byte) (*Config, error) {
	cfg := New()
	// Explicit lists and maps in the document replace the defaults.
	cfg.Nav = nil
	cfg.Breadcrumbs = nil
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("F101").
			WithDetail("Failed to parse folio.json: " + err.Error()).
			WithSuggestion("Check that folio.json is valid JSON")
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Router.InitialPath == "" {
		c.Router.InitialPath = DefaultInitialPath
	}
	if c.Router.FallbackPath == "" {
		c.Router.FallbackPath = DefaultFallbackPath
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Metrics.Namespace == "" {
		c.Metrics.Namespace = DefaultMetricsNamespace
	}
	if c.Tracing.TracerName == "" {
		c.Tracing.TracerName = DefaultTracerName
	}
	if c.Nav == nil {
		c.Nav = DefaultNav()
	}
	if c.Breadcrumbs == nil {
		c.Breadcrumbs = DefaultBreadcrumbs()
	}
}

var metricNamespace = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return errors.New("F102").WithDetail(fmt.Sprintf(format, args...))
	}

	if !strings.HasPrefix(c.Router.InitialPath, "/") {
		return invalid("router.initialPath must start with \"/\", got %q", c.Router.InitialPath)
	}
	if !strings.HasPrefix(c.Router.FallbackPath, "/") {
		return invalid("router.fallbackPath must start with \"/\", got %q", c.Router.FallbackPath)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return invalid("%v", err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return invalid("log.format must be text or json, got %q", c.Log.Format)
	}
	if !metricNamespace.MatchString(c.Metrics.Namespace) {
		return invalid("metrics.namespace %q is not a valid metric name prefix", c.Metrics.Namespace)
	}
	for i, link := range c.Nav {
		if !strings.HasPrefix(link.Path, "/") {
			return invalid("nav[%d].path must start with \"/\", got %q", i, link.Path)
		}
		if link.Label == "" {
			return invalid("nav[%d].label is empty", i)
		}
	}
	for prefix := range c.Breadcrumbs {
		if !strings.HasPrefix(prefix, "/") {
			return invalid("breadcrumbs key %q must start with \"/\"", prefix)
		}
	}
	return nil
}

// ParseLevel converts a level name to a slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("log.level must be debug, info, warn or error, got %q", name)
	}
	return level, nil
}

// Logger builds the slog logger described by the log section.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level, err := ParseLevel(c.Log.Level)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
