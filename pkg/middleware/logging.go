package middleware

import (
	"context"
	"log/slog"

	"github.com/vango-dev/folio/pkg/router"
)

// Logging creates middleware that writes one debug record per navigation.
// A nil logger uses slog.Default().
func Logging(logger *slog.Logger) router.Middleware {
	if logger == nil {
		logger = slog.Default()
	}
	return func(ctx context.Context, rc *router.Context) error {
		logger.LogAttrs(ctx, slog.LevelDebug, "navigation",
			slog.String("nav_id", rc.ID),
			slog.String("path", rc.FullPath),
			slog.String("pattern", rc.Pattern),
			slog.Any("params", rc.Params.Map()),
		)
		return nil
	}
}
