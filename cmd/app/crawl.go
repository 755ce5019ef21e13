package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/yingtu35/site-crawler/internal/config"
	"github.com/yingtu35/site-crawler/internal/crawler"
	"github.com/yingtu35/site-crawler/internal/export"
	"github.com/yingtu35/site-crawler/internal/logging"
	"github.com/yingtu35/site-crawler/internal/webscraper"
)

// NewCrawlCmd creates the crawl command
func NewCrawlCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crawl [url]",
		Short: "Crawl a site and list its HTML pages",
		Long: `Crawl a site breadth first from the given URL.

Links to other hosts, static assets (css, js, images, fonts, pdf) and
non-HTTP schemes are never followed. Tracking parameters (utm_source,
utm_medium, utm_campaign), fragments and trailing slashes are ignored when
deciding whether two links point to the same page.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCrawl,
	}

	flags := cmd.Flags()
	flags.StringP("config", "c", "", "Path to a YAML configuration file")
	flags.IntP("max-pages", "p", crawler.DefaultMaxPages, "Maximum number of HTML pages to record")
	flags.IntP("max-depth", "d", crawler.DefaultMaxDepth, "Maximum number of link hops from the start URL")
	flags.Bool("same-domain-only", true, "Only follow links on the start URL's hostname")
	flags.String("user-agent", "", "User agent of the browsing session")
	flags.StringP("engine", "e", config.EnginePlaywright, "Page engine: playwright or static")
	flags.String("browser", webscraper.BrowserChromium, "Playwright browser: chromium, firefox or webkit")
	flags.StringP("format", "f", config.OutputTable, "Output format: table, csv or json")
	flags.StringP("output", "o", "", "Output file name without extension (csv and json)")

	return cmd
}

func runCrawl(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd, args)
	if err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}

	req := crawler.CrawlRequest{
		StartURL:       cfg.Crawl.StartURL,
		MaxPages:       cfg.Crawl.MaxPages,
		SameDomainOnly: cfg.Crawl.SameDomainOnly,
		MaxDepth:       cfg.Crawl.MaxDepth,
	}
	result, err := crawler.CrawlSite(newLauncher(cfg), req,
		crawler.WithUserAgent(cfg.Crawl.UserAgent),
		crawler.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("crawl %s: %w", req.StartURL, err)
	}

	if cfg.Output.Format == config.OutputTable {
		export.PrintResults(cmd.OutOrStdout(), result)
		return nil
	}

	exporter, err := export.New(cfg.Output.Format)
	if err != nil {
		return err
	}
	if err := exporter.Export(result, cfg.Output.File); err != nil {
		return fmt.Errorf("export results: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d pages to %s.%s\n", result.TotalFound, cfg.Output.File, cfg.Output.Format)
	return nil
}

// loadConfig reads the optional config file and applies the flags the user
// set explicitly on top of it
func loadConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	flags := cmd.Flags()

	cfg := config.Default()
	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = *loaded
	}

	if len(args) == 1 {
		cfg.Crawl.StartURL = args[0]
	}
	if flags.Changed("max-pages") {
		cfg.Crawl.MaxPages, _ = flags.GetInt("max-pages")
	}
	if flags.Changed("max-depth") {
		cfg.Crawl.MaxDepth, _ = flags.GetInt("max-depth")
	}
	if flags.Changed("same-domain-only") {
		cfg.Crawl.SameDomainOnly, _ = flags.GetBool("same-domain-only")
	}
	if flags.Changed("user-agent") {
		cfg.Crawl.UserAgent, _ = flags.GetString("user-agent")
	}
	if flags.Changed("engine") {
		cfg.Engine, _ = flags.GetString("engine")
	}
	if flags.Changed("browser") {
		cfg.Playwright.Browser, _ = flags.GetString("browser")
	}
	if flags.Changed("format") {
		cfg.Output.Format, _ = flags.GetString("format")
	}
	if flags.Changed("output") {
		cfg.Output.File, _ = flags.GetString("output")
	}
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		cfg.Logging.Level = "debug"
	}

	cfg.Normalise()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func newLauncher(cfg *config.Config) webscraper.Launcher {
	if cfg.Engine == config.EngineStatic {
		return webscraper.NewStaticLauncher(webscraper.StaticOptions{
			Client:       &http.Client{Timeout: cfg.Static.RequestTimeout.Duration},
			MaxBodyBytes: cfg.Static.MaxBodyBytes,
		})
	}
	return webscraper.NewPlaywrightLauncher(webscraper.PlaywrightOptions{
		Browser:             cfg.Playwright.Browser,
		Headless:            cfg.Playwright.Headless,
		SkipInstallBrowsers: cfg.Playwright.SkipInstallBrowsers,
	})
}
