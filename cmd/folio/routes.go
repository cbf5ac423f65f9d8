package main

import (
	"github.com/spf13/cobra"
	"github.com/vango-dev/folio/pkg/routepath"
)

func routesCmd(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "List registered route patterns",
		Long: `List the site's route patterns in registration order.

Static patterns are matched before parameterized ones, so their order
only matters among patterns with ":" segments.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			s, _, err := buildSite(cfg, "")
			if err != nil {
				return err
			}
			for _, pattern := range s.Router().Routes() {
				kind := "static"
				if routepath.HasParams(pattern) {
					kind = "param"
				}
				info(cmd, "%-32s %s", pattern, kind)
			}
			return nil
		},
	}
}
