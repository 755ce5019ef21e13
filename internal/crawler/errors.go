package crawler

import (
	"errors"
	"fmt"
)

// ErrorKind tags where a crawl failure happened
type ErrorKind int

const (
	KindInvalidStartURL ErrorKind = iota + 1 // fatal
	KindLaunch                               // fatal
	KindNormalize                            // per page
	KindNavigation                           // per page
	KindExtraction                           // per page
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidStartURL:
		return "invalid start url"
	case KindLaunch:
		return "launch"
	case KindNormalize:
		return "normalize"
	case KindNavigation:
		return "navigation"
	case KindExtraction:
		return "extraction"
	default:
		return "unknown"
	}
}

// Fatal reports whether errors of this kind abort the whole crawl
func (k ErrorKind) Fatal() bool {
	return k == KindInvalidStartURL || k == KindLaunch
}

const unknownErrorMessage = "Unknown error"

// CrawlError is the single error type produced by the crawler. Message is
// always set, even when the underlying cause is not an error value.
type CrawlError struct {
	Kind    ErrorKind
	URL     string
	Message string
	Err     error
}

func (e *CrawlError) Error() string {
	if e.URL == "" {
		return fmt.Sprintf("%s: %s", e.Kind, e.Message)
	}
	return fmt.Sprintf("%s %s: %s", e.Kind, e.URL, e.Message)
}

func (e *CrawlError) Unwrap() error {
	return e.Err
}

func newCrawlError(kind ErrorKind, url string, cause any) *CrawlError {
	err, _ := cause.(error)
	return &CrawlError{
		Kind:    kind,
		URL:     url,
		Message: errorMessage(cause),
		Err:     err,
	}
}

// errorMessage returns the message of cause when it is an error and a
// generic message for anything else
func errorMessage(cause any) string {
	err, ok := cause.(error)
	if !ok || err == nil {
		return unknownErrorMessage
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return unknownErrorMessage
}

// IsFatal reports whether err is a CrawlError that aborted a crawl
func IsFatal(err error) bool {
	var crawlErr *CrawlError
	return errors.As(err, &crawlErr) && crawlErr.Kind.Fatal()
}
