package crawler

import (
	"log/slog"

	"github.com/yingtu35/site-crawler/internal/webscraper"
)

// session is the browser, context and page owned by one crawl
type session struct {
	browser webscraper.Browser
	context webscraper.Context
	page    webscraper.Page
}

// open launches a browser and opens a page in a fresh context. Anything
// acquired before a failure is released before returning.
func (c *Crawler) open() (s *session, err error) {
	s = &session{}
	defer func() {
		if r := recover(); r != nil {
			err = newCrawlError(KindLaunch, "", r)
		}
		if err != nil {
			s.close(c.logger)
			s = nil
		}
	}()

	s.browser, err = c.launcher.Launch()
	if err != nil {
		return s, newCrawlError(KindLaunch, "", err)
	}
	s.context, err = s.browser.NewContext(c.userAgent)
	if err != nil {
		return s, newCrawlError(KindLaunch, "", err)
	}
	s.page, err = s.context.NewPage()
	if err != nil {
		return s, newCrawlError(KindLaunch, "", err)
	}
	return s, nil
}

// close releases the context and then the browser. Teardown failures are
// only logged.
func (s *session) close(logger *slog.Logger) {
	if s.context != nil {
		if err := safeClose(s.context.Close); err != nil {
			logger.Warn("failed to close browser context", "error", err)
		}
	}
	if s.browser != nil {
		if err := safeClose(s.browser.Close); err != nil {
			logger.Warn("failed to close browser", "error", err)
		}
	}
}

func safeClose(closeFn func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = newCrawlError(KindLaunch, "", r)
		}
	}()
	return closeFn()
}

// navigate loads url in page and returns the content-type of the response.
// A panic inside the engine is reported as a navigation error like any
// other failure.
func (c *Crawler) navigate(page webscraper.Page, url string) (contentType string, err error) {
	defer func() {
		if r := recover(); r != nil {
			contentType, err = "", newCrawlError(KindNavigation, url, r)
		}
	}()

	c.logger.Debug("navigating", "url", url)
	resp, err := page.Goto(url, webscraper.GotoOptions{
		WaitUntil: webscraper.WaitUntilDOMContentLoaded,
		Timeout:   NavigationTimeout,
	})
	if err != nil {
		return "", newCrawlError(KindNavigation, url, err)
	}
	return headerValue(resp, "content-type"), nil
}

func headerValue(resp webscraper.Response, name string) string {
	if resp == nil {
		return ""
	}
	headers := resp.Headers()
	if headers == nil {
		return ""
	}
	return headers[name]
}

func (c *Crawler) extract(page webscraper.Page, url string) (hrefs []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			hrefs, err = nil, newCrawlError(KindExtraction, url, r)
		}
	}()

	hrefs, err = page.ExtractHrefs()
	if err != nil {
		return nil, newCrawlError(KindExtraction, url, err)
	}
	return hrefs, nil
}
