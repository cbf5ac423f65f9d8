package main

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"

	"github.com/vango-dev/folio/internal/site"
)

func navCmd(flags *globalFlags) *cobra.Command {
	var (
		start   string
		admin   bool
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "nav <step>...",
		Short: "Replay a navigation session",
		Long: `Start the site on an in-memory history and apply each step in order,
printing the route after every step.

Steps:
  /path                 navigate (pushes a history entry)
  replace:/path         navigate, replacing the current entry
  back, forward, go:N   move through history
  click:#/path[+mod]    link click; mods are ctrl, meta, shift, alt, middle

Examples:
  folio nav /research /research/1 back
  folio nav --admin /admin
  folio nav --start "#/interests" click:#/interests/timeline click:#/agent+ctrl`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps, err := parseSteps(args)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(flags)
			if err != nil {
				return err
			}
			if admin {
				cfg.Session.Admin = true
			}

			reg := prometheus.NewRegistry()
			s, h, err := buildSite(cfg, start, site.WithMetricsRegistry(reg))
			if err != nil {
				return err
			}

			ctx := context.Background()
			if err := s.Start(ctx); err != nil {
				return err
			}
			defer s.Stop()

			printState(cmd, "start", s, h.Index())
			for _, st := range steps {
				applyStep(ctx, cmd, s, st)
				printState(cmd, st.raw, s, h.Index())
			}

			for _, fe := range s.Errors() {
				warn(cmd, "%s", fe.FormatCompact())
			}
			if metrics {
				return writeMetrics(cmd.OutOrStdout(), reg)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&start, "start", "", `Initial location hash, e.g. "#/research"`)
	cmd.Flags().BoolVar(&admin, "admin", false, "Browse as an admin")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Print navigation metrics at the end")
	return cmd
}

func applyStep(ctx context.Context, cmd *cobra.Command, s *site.Site, st step) {
	r := s.Router()
	switch st.kind {
	case stepNavigate:
		r.Navigate(ctx, st.path)
	case stepReplace:
		r.Replace(ctx, st.path, nil)
	case stepBack:
		r.Back()
	case stepForward:
		r.Forward()
	case stepGo:
		r.Go(st.delta)
	case stepClick:
		if !r.HandleLinkClick(st.click) {
			info(cmd, "click on %q left to the browser", st.click.Href)
		}
	}
}

func printState(cmd *cobra.Command, label string, s *site.Site, index int) {
	v := s.View().Snapshot()
	loc := s.Router().Current()

	line := fmt.Sprintf("%-24s → %-28s %q", label, loc.Path, v.Title)
	if v.ShowBreadcrumbs {
		titles := make([]string, len(v.Breadcrumbs))
		for i, c := range v.Breadcrumbs {
			titles[i] = c.Title
		}
		line += "  [" + strings.Join(titles, " › ") + "]"
	}
	if v.Fullscreen {
		line += "  (fullscreen)"
	}
	success(cmd, "%s  #%d", line, index)
}

// writeMetrics prints every counter in reg, one sample per line.
func writeMetrics(w io.Writer, reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), formatLabels(m.GetLabel()), m.GetCounter().GetValue())
		}
	}
	return nil
}

func formatLabels(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = fmt.Sprintf("%s=%q", l.GetName(), l.GetValue())
	}
	sort.Strings(parts)
	return "{" + strings.Join(parts, ",") + "}"
}
