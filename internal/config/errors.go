package config

import "errors"

// Validation errors returned by Config.Validate, usable with errors.Is
var (
	// ErrNoStartURL is returned when neither the file nor the command line names a site
	ErrNoStartURL = errors.New("no start url: set crawl.start_url or pass a URL argument")

	// ErrInvalidMaxPages is returned when the page budget is not positive
	ErrInvalidMaxPages = errors.New("invalid crawl.max_pages: must be positive")

	// ErrInvalidEngine is returned for an engine other than playwright or static
	ErrInvalidEngine = errors.New("invalid engine: must be playwright or static")

	// ErrInvalidBrowser is returned for a browser Playwright does not ship
	ErrInvalidBrowser = errors.New("invalid playwright.browser: must be chromium, firefox or webkit")

	// ErrInvalidTimeout is returned when the static request timeout is not positive
	ErrInvalidTimeout = errors.New("invalid static.request_timeout: must be positive")

	// ErrInvalidMaxBodyBytes is returned when the static body cap is not positive
	ErrInvalidMaxBodyBytes = errors.New("invalid static.max_body_bytes: must be positive")

	// ErrInvalidOutputFormat is returned for an output format other than table, csv or json
	ErrInvalidOutputFormat = errors.New("invalid output.format: must be table, csv or json")

	// ErrMissingOutputFile is returned when csv or json output has no file name
	ErrMissingOutputFile = errors.New("output.file is required for csv and json output")
)
