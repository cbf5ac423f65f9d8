package main

import (
	"os"

	"github.com/vango-dev/folio/internal/config"
	"github.com/vango-dev/folio/internal/site"
	"github.com/vango-dev/folio/pkg/history"
)

// loadConfig reads folio.json from the flag directory, falling back to
// defaults when the file does not exist.
func loadConfig(flags *globalFlags) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(flags.dir)
	if err != nil {
		return nil, err
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// buildSite creates the site on an in-memory history starting at startURL.
func buildSite(cfg *config.Config, startURL string, opts ...site.Option) (*site.Site, *history.Memory, error) {
	h := history.NewMemory(startURL)
	opts = append([]site.Option{site.WithLogger(cfg.Logger(os.Stderr))}, opts...)
	s, err := site.New(h, cfg, opts...)
	if err != nil {
		return nil, nil, err
	}
	return s, h, nil
}
