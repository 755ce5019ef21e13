// Package crawler discovers the pages of a site by walking its links
// breadth first, one navigation at a time.
package crawler

import (
	"log/slog"
	"strings"
	"time"

	"github.com/yingtu35/site-crawler/internal/webscraper"
	"github.com/yingtu35/site-crawler/pkg/domain"
)

const (
	DefaultMaxPages = 10
	DefaultMaxDepth = 3

	// NavigationTimeout bounds every page load
	NavigationTimeout = 10 * time.Second
)

// CrawlRequest describes a single crawl
type CrawlRequest struct {
	StartURL       string // absolute URL the crawl starts from
	MaxPages       int    // HTML pages to record before stopping, DefaultMaxPages when not positive
	SameDomainOnly bool   // only follow links whose hostname equals the start URL's
	MaxDepth       int    // link hops from the start URL; negative navigates nothing
}

// NewCrawlRequest returns a request for startURL with the default budgets
func NewCrawlRequest(startURL string) CrawlRequest {
	return CrawlRequest{
		StartURL:       startURL,
		MaxPages:       DefaultMaxPages,
		SameDomainOnly: true,
		MaxDepth:       DefaultMaxDepth,
	}
}

// CrawlResult lists the HTML pages found, in discovery order
type CrawlResult struct {
	URLs       []string `json:"urls"`
	TotalFound int      `json:"totalFound"`
	CrawlTime  int64    `json:"crawlTime"` // milliseconds
}

// Crawler holds the configuration shared by crawls. All traversal state is
// local to a Crawl call, so one Crawler may serve any number of crawls.
type Crawler struct {
	launcher  webscraper.Launcher
	userAgent string
	logger    *slog.Logger
}

// Option configures a Crawler
type Option func(*Crawler)

// WithUserAgent sets the user agent of the browsing context
func WithUserAgent(userAgent string) Option {
	return func(c *Crawler) {
		c.userAgent = userAgent
	}
}

// WithLogger sets the logger used for per-page diagnostics
func WithLogger(logger *slog.Logger) Option {
	return func(c *Crawler) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// New returns a Crawler that drives browsers from launcher
func New(launcher webscraper.Launcher, opts ...Option) *Crawler {
	c := &Crawler{
		launcher:  launcher,
		userAgent: webscraper.DefaultUserAgent,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CrawlSite runs one crawl with a Crawler built from launcher and opts
func CrawlSite(launcher webscraper.Launcher, req CrawlRequest, opts ...Option) (*CrawlResult, error) {
	return New(launcher, opts...).Crawl(req)
}

// Crawl walks the site from req.StartURL. Only an unusable start URL or a
// browser that cannot be started fail the crawl; every other problem drops
// the page or link concerned and the walk goes on.
func (c *Crawler) Crawl(req CrawlRequest) (*CrawlResult, error) {
	start := time.Now()
	if req.MaxPages <= 0 {
		req.MaxPages = DefaultMaxPages
	}

	startDomain, err := domain.GetDomain(req.StartURL)
	if err != nil {
		return nil, newCrawlError(KindInvalidStartURL, req.StartURL, err)
	}

	logger := c.logger.With("start_url", req.StartURL)

	session, err := c.open()
	if err != nil {
		return nil, err
	}
	defer session.close(logger)

	visited := make(map[string]struct{})
	urls := make([]string, 0, req.MaxPages)
	queue := newFrontier()
	queue.push(frontierEntry{url: req.StartURL, depth: 0})

	for queue.len() > 0 && len(urls) < req.MaxPages {
		entry, _ := queue.pop()

		normalized, err := domain.Normalize(entry.url)
		if err != nil {
			logger.Warn("failed to normalize URL", "url", entry.url, "error", newCrawlError(KindNormalize, entry.url, err))
			continue
		}
		if _, ok := visited[normalized]; ok {
			continue
		}
		visited[normalized] = struct{}{}

		if entry.depth > req.MaxDepth {
			continue
		}

		contentType, err := c.navigate(session.page, normalized)
		if err != nil {
			logger.Warn("failed to load page", "url", normalized, "depth", entry.depth, "error", err)
			continue
		}
		if !strings.Contains(contentType, "text/html") {
			logger.Debug("skipping non-HTML page", "url", normalized, "content_type", contentType)
			continue
		}

		urls = append(urls, normalized)

		if entry.depth >= req.MaxDepth {
			continue
		}

		hrefs, err := c.extract(session.page, normalized)
		if err != nil {
			logger.Warn("failed to extract links", "url", normalized, "error", err)
			continue
		}
		for _, link := range domain.ProcessLinks(hrefs, entry.url, startDomain, req.SameDomainOnly, logger) {
			if _, ok := visited[link]; ok || queue.contains(link) {
				continue
			}
			queue.push(frontierEntry{url: link, depth: entry.depth + 1})
		}
	}

	result := &CrawlResult{
		URLs:       urls,
		TotalFound: len(urls),
		CrawlTime:  time.Since(start).Milliseconds(),
	}
	logger.Info("crawl finished",
		"pages", result.TotalFound,
		"visited", len(visited),
		"crawl_time_ms", result.CrawlTime,
	)
	return result, nil
}
