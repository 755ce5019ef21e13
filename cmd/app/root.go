package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "site-crawler",
		Short: "Discover the pages of a site for accessibility scanning",
		Long: `site-crawler walks a site breadth first from a start URL and lists the
HTML pages it finds, within a page budget and a link depth budget.

Pages are loaded in a headless browser through Playwright by default.
Use --engine static to load them with plain HTTP requests instead.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(NewCrawlCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
