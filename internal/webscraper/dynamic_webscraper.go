package webscraper

import (
	"errors"
	"fmt"
	"sync"

	"github.com/playwright-community/playwright-go"
)

// PlaywrightOptions configures the headless browser engine
type PlaywrightOptions struct {
	Browser             string // chromium, firefox or webkit
	Headless            bool   // run without a visible window
	SkipInstallBrowsers bool   // expect the browsers to be installed already
}

// PlaywrightLauncher starts a fresh Playwright driver and browser on every
// Launch. Nothing is shared between launches.
type PlaywrightLauncher struct {
	opts PlaywrightOptions
}

func NewPlaywrightLauncher(opts PlaywrightOptions) *PlaywrightLauncher {
	if opts.Browser == "" {
		opts.Browser = BrowserChromium
	}
	return &PlaywrightLauncher{opts: opts}
}

func (l *PlaywrightLauncher) Launch() (Browser, error) {
	pw, err := playwright.Run(&playwright.RunOptions{
		SkipInstallBrowsers: l.opts.SkipInstallBrowsers,
		Browsers:            []string{l.opts.Browser},
	})
	if err != nil {
		return nil, fmt.Errorf("start playwright: %w", err)
	}

	browserType, err := selectBrowserType(pw, l.opts.Browser)
	if err != nil {
		_ = pw.Stop()
		return nil, err
	}

	browser, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(l.opts.Headless),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("launch %s: %w", l.opts.Browser, err)
	}

	return &playwrightBrowser{pwClient: pw, browser: browser}, nil
}

func selectBrowserType(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case BrowserChromium:
		return pw.Chromium, nil
	case BrowserFirefox:
		return pw.Firefox, nil
	case BrowserWebKit:
		return pw.WebKit, nil
	default:
		return nil, fmt.Errorf("unsupported browser %q", name)
	}
}

type playwrightBrowser struct {
	pwClient *playwright.Playwright
	browser  playwright.Browser

	closeOnce sync.Once
	closeErr  error
}

func (b *playwrightBrowser) NewContext(userAgent string) (Context, error) {
	opts := playwright.BrowserNewContextOptions{}
	if userAgent != "" {
		opts.UserAgent = playwright.String(userAgent)
	}
	context, err := b.browser.NewContext(opts)
	if err != nil {
		return nil, fmt.Errorf("new browser context: %w", err)
	}
	return &playwrightContext{context: context}, nil
}

// Close shuts the browser down and then stops the driver process
func (b *playwrightBrowser) Close() error {
	b.closeOnce.Do(func() {
		var errs []error
		if err := b.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close browser: %w", err))
		}
		if err := b.pwClient.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("stop playwright: %w", err))
		}
		b.closeErr = errors.Join(errs...)
	})
	return b.closeErr
}

type playwrightContext struct {
	context playwright.BrowserContext

	closeOnce sync.Once
	closeErr  error
}

func (c *playwrightContext) NewPage() (Page, error) {
	page, err := c.context.NewPage()
	if err != nil {
		return nil, fmt.Errorf("new page: %w", err)
	}
	return &playwrightPage{page: page}, nil
}

func (c *playwrightContext) Close() error {
	c.closeOnce.Do(func() {
		c.closeErr = c.context.Close()
	})
	return c.closeErr
}

type playwrightPage struct {
	page playwright.Page
}

func (p *playwrightPage) Goto(url string, opts GotoOptions) (Response, error) {
	resp, err := p.page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: waitUntilState(opts.WaitUntil),
		Timeout:   playwright.Float(float64(opts.timeout().Milliseconds())),
	})
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, nil
	}
	return playwrightResponse{resp: resp}, nil
}

func (p *playwrightPage) ExtractHrefs() ([]string, error) {
	links, err := p.page.Locator("a[href]").All()
	if err != nil {
		return nil, fmt.Errorf("locate anchors: %w", err)
	}

	hrefs := make([]string, 0, len(links))
	for _, link := range links {
		href, err := link.GetAttribute("href")
		if err != nil {
			return nil, fmt.Errorf("read href: %w", err)
		}
		hrefs = append(hrefs, href)
	}
	return hrefs, nil
}

func waitUntilState(name string) *playwright.WaitUntilState {
	switch name {
	case WaitUntilLoad:
		return playwright.WaitUntilStateLoad
	default:
		return playwright.WaitUntilStateDomcontentloaded
	}
}

type playwrightResponse struct {
	resp playwright.Response
}

func (r playwrightResponse) Headers() map[string]string {
	return r.resp.Headers()
}
