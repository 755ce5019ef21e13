// Package webscraper drives the page automation used by the crawler: it
// loads a page, reports the response headers, and lists the raw hrefs of
// every anchor in the loaded document.
package webscraper

import "time"

// Launcher starts an isolated browser instance
type Launcher interface {
	Launch() (Browser, error)
}

// Browser is a running browser instance. Close is idempotent.
type Browser interface {
	NewContext(userAgent string) (Context, error)
	Close() error
}

// Context is an isolated browsing session. Close is idempotent.
type Context interface {
	NewPage() (Page, error)
	Close() error
}

// Page is a single tab that can be navigated and inspected
type Page interface {
	// Goto navigates to url. The response may be nil with a nil error when
	// the engine has no main resource response to report.
	Goto(url string, opts GotoOptions) (Response, error)
	// ExtractHrefs returns the raw href attribute of every a[href] element
	// in the currently loaded document.
	ExtractHrefs() ([]string, error)
}

// Response is the main resource response of a navigation
type Response interface {
	// Headers returns the response headers keyed by lowercase name
	Headers() map[string]string
}

// GotoOptions controls a single navigation
type GotoOptions struct {
	WaitUntil string        // readiness criterion, see WaitUntilDOMContentLoaded
	Timeout   time.Duration // navigation timeout, DefaultTimeout when zero
}

func (o GotoOptions) timeout() time.Duration {
	if o.Timeout <= 0 {
		return DefaultTimeout
	}
	return o.Timeout
}
