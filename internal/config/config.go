// Package config loads the crawler configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/yingtu35/site-crawler/internal/crawler"
	"github.com/yingtu35/site-crawler/internal/logging"
	"github.com/yingtu35/site-crawler/internal/webscraper"
)

const (
	EnginePlaywright = "playwright"
	EngineStatic     = "static"

	OutputTable = "table"
	OutputCSV   = "csv"
	OutputJSON  = "json"
)

// Config captures everything needed to run a crawl from the command line
type Config struct {
	Crawl      CrawlConfig      `yaml:"crawl"`
	Engine     string           `yaml:"engine"`
	Playwright PlaywrightConfig `yaml:"playwright"`
	Static     StaticConfig     `yaml:"static"`
	Logging    LoggingConfig    `yaml:"logging"`
	Output     OutputConfig     `yaml:"output"`
}

// CrawlConfig holds the crawl request and its budgets
type CrawlConfig struct {
	StartURL       string `yaml:"start_url"`
	MaxPages       int    `yaml:"max_pages"`
	MaxDepth       int    `yaml:"max_depth"`
	SameDomainOnly bool   `yaml:"same_domain_only"`
	UserAgent      string `yaml:"user_agent"`
}

// PlaywrightConfig controls the headless browser engine
type PlaywrightConfig struct {
	Browser             string `yaml:"browser"`
	Headless            bool   `yaml:"headless"`
	SkipInstallBrowsers bool   `yaml:"skip_install_browsers"`
}

// StaticConfig controls the browser-free HTTP engine
type StaticConfig struct {
	RequestTimeout Duration `yaml:"request_timeout"`
	MaxBodyBytes   int64    `yaml:"max_body_bytes"`
}

// LoggingConfig selects log verbosity and format
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// OutputConfig selects how results are reported
type OutputConfig struct {
	Format string `yaml:"format"`
	File   string `yaml:"file"` // base name, the extension is added by the exporter
}

// Default returns a Config populated with the crawl defaults
func Default() Config {
	return Config{
		Crawl: CrawlConfig{
			MaxPages:       crawler.DefaultMaxPages,
			MaxDepth:       crawler.DefaultMaxDepth,
			SameDomainOnly: true,
			UserAgent:      webscraper.DefaultUserAgent,
		},
		Engine: EnginePlaywright,
		Playwright: PlaywrightConfig{
			Browser:  webscraper.BrowserChromium,
			Headless: true,
		},
		Static: StaticConfig{
			RequestTimeout: DurationFrom(10 * time.Second),
			MaxBodyBytes:   webscraper.DefaultMaxBodyBytes,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: logging.FormatText,
		},
		Output: OutputConfig{
			Format: OutputTable,
		},
	}
}

// Load reads configuration from a YAML file on top of the defaults. The
// result is not validated so callers can apply overrides first.
func Load(path string) (*Config, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer fh.Close()

	return LoadFromReader(fh)
}

// LoadFromReader decodes configuration from an arbitrary reader
func LoadFromReader(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Normalise()
	return &cfg, nil
}

// Normalise trims and lowercases enumerated values
func (c *Config) Normalise() {
	c.Crawl.StartURL = strings.TrimSpace(c.Crawl.StartURL)
	c.Crawl.UserAgent = strings.TrimSpace(c.Crawl.UserAgent)
	c.Engine = strings.ToLower(strings.TrimSpace(c.Engine))
	c.Playwright.Browser = strings.ToLower(strings.TrimSpace(c.Playwright.Browser))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	c.Output.File = strings.TrimSpace(c.Output.File)
}

// Validate enforces the invariants a crawl needs. A negative max depth is
// accepted: it validates the start URL without navigating anywhere.
func (c Config) Validate() error {
	if c.Crawl.StartURL == "" {
		return ErrNoStartURL
	}
	if c.Crawl.MaxPages <= 0 {
		return fmt.Errorf("%w (got %d)", ErrInvalidMaxPages, c.Crawl.MaxPages)
	}

	switch c.Engine {
	case EnginePlaywright:
		switch c.Playwright.Browser {
		case webscraper.BrowserChromium, webscraper.BrowserFirefox, webscraper.BrowserWebKit:
		default:
			return fmt.Errorf("%w (got %q)", ErrInvalidBrowser, c.Playwright.Browser)
		}
	case EngineStatic:
		if c.Static.RequestTimeout.Duration <= 0 {
			return ErrInvalidTimeout
		}
		if c.Static.MaxBodyBytes <= 0 {
			return fmt.Errorf("%w (got %d)", ErrInvalidMaxBodyBytes, c.Static.MaxBodyBytes)
		}
	default:
		return fmt.Errorf("%w (got %q)", ErrInvalidEngine, c.Engine)
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if c.Logging.Format != logging.FormatText && c.Logging.Format != logging.FormatJSON {
		return fmt.Errorf("unsupported log format %q", c.Logging.Format)
	}

	switch c.Output.Format {
	case OutputTable:
	case OutputCSV, OutputJSON:
		if c.Output.File == "" {
			return ErrMissingOutputFile
		}
	default:
		return fmt.Errorf("%w (got %q)", ErrInvalidOutputFormat, c.Output.Format)
	}
	return nil
}
