package webscraper

import "time"

const (
	DefaultTimeout      = 10 * time.Second // navigation timeout
	DefaultMaxBodyBytes = 5 * 1024 * 1024  // body cap for the static engine
	DefaultUserAgent    = "Mozilla/5.0 (compatible; site-crawler/1.0; +https://github.com/yingtu35/site-crawler)"

	WaitUntilDOMContentLoaded = "domcontentloaded"
	WaitUntilLoad             = "load"

	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)
