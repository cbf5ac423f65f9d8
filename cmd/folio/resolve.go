package main

import (
	stderrors "errors"

	"github.com/spf13/cobra"

	"github.com/vango-dev/folio/internal/errors"
	"github.com/vango-dev/folio/pkg/routepath"
	"github.com/vango-dev/folio/pkg/router"
)

func resolveCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <path>",
		Short: "Show which route a path matches",
		Long: `Match a path against the route table without dispatching it.

Examples:
  folio resolve /research/42
  folio resolve "/interests/category/hiking?sort=date"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			s, _, err := buildSite(cfg, "")
			if err != nil {
				return err
			}

			res, err := s.Router().Resolve(args[0])
			if err != nil {
				if stderrors.Is(err, router.ErrRouteNotFound) {
					return errors.New("F001").
						WithPath(routepath.Normalize(args[0])).
						WithSuggestion("Run `folio routes` to list registered patterns")
				}
				return err
			}

			success(cmd, "%s matches %s", res.FullPath, res.Pattern)
			for _, p := range res.Params {
				info(cmd, "param %s = %q", p.Name, p.Value)
			}
			for _, k := range routepath.SortedKeys(res.Query) {
				info(cmd, "query %s = %q", k, res.Query[k])
			}
			return nil
		},
	}
}
