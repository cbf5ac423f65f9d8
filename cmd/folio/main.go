package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vango-dev/folio/internal/errors"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		errors.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}

// globalFlags are shared by every command.
type globalFlags struct {
	dir      string
	logLevel string
}

func rootCmd() *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   "folio",
		Short: "Inspect and simulate the Folio hash router",
		Long: `Folio is a hash-based client-side router and the portfolio site built on it.

The CLI loads folio.json from --dir (or uses defaults), builds the site
on an in-memory history, and lets you inspect routes or replay a
navigation session without a browser.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.dir, "dir", "d", ".", "Directory containing folio.json")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Override log.level from folio.json")

	cmd.AddCommand(
		routesCmd(&flags),
		resolveCmd(&flags),
		navCmd(&flags),
		versionCmd(),
	)
	return cmd
}

// success prints a success message.
func success(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.OutOrStdout(), "\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
