package crawler

import (
	"errors"
	"sync"

	"github.com/yingtu35/site-crawler/internal/webscraper"
)

// fakeSite is a scripted set of pages served by fakeLauncher
type fakeSite map[string]fakePage

type fakePage struct {
	contentType string   // empty means no content-type header
	links       []string // raw hrefs on the page
	gotoErr     error
	gotoPanic   any
	nilResponse bool
	headerPanic any
	extractErr  error
}

func htmlPage(links ...string) fakePage {
	return fakePage{contentType: "text/html; charset=utf-8", links: links}
}

var errNotFound = errors.New("net::ERR_NAME_NOT_RESOLVED")

type fakeLauncher struct {
	site      fakeSite
	launchErr error

	mu             sync.Mutex
	navigations    []string
	userAgent      string
	browserClosed  int
	contextClosed  int
	extractedPages []string
}

func newFakeLauncher(site fakeSite) *fakeLauncher {
	return &fakeLauncher{site: site}
}

func (l *fakeLauncher) Launch() (webscraper.Browser, error) {
	if l.launchErr != nil {
		return nil, l.launchErr
	}
	return &fakeBrowser{l: l}, nil
}

func (l *fakeLauncher) navigationCount(url string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n := 0
	for _, u := range l.navigations {
		if u == url {
			n++
		}
	}
	return n
}

type fakeBrowser struct{ l *fakeLauncher }

func (b *fakeBrowser) NewContext(userAgent string) (webscraper.Context, error) {
	b.l.mu.Lock()
	b.l.userAgent = userAgent
	b.l.mu.Unlock()
	return &fakeContext{l: b.l}, nil
}

func (b *fakeBrowser) Close() error {
	b.l.mu.Lock()
	defer b.l.mu.Unlock()
	b.l.browserClosed++
	return nil
}

type fakeContext struct{ l *fakeLauncher }

func (c *fakeContext) NewPage() (webscraper.Page, error) {
	return &fakeTab{l: c.l}, nil
}

func (c *fakeContext) Close() error {
	c.l.mu.Lock()
	defer c.l.mu.Unlock()
	c.l.contextClosed++
	return nil
}

type fakeTab struct {
	l       *fakeLauncher
	current string
}

func (p *fakeTab) Goto(url string, opts webscraper.GotoOptions) (webscraper.Response, error) {
	p.l.mu.Lock()
	p.l.navigations = append(p.l.navigations, url)
	p.l.mu.Unlock()

	page, ok := p.l.site[url]
	if !ok {
		return nil, errNotFound
	}
	if page.gotoPanic != nil {
		panic(page.gotoPanic)
	}
	if page.gotoErr != nil {
		return nil, page.gotoErr
	}
	p.current = url
	if page.nilResponse {
		return nil, nil
	}
	headers := map[string]string{}
	if page.contentType != "" {
		headers["content-type"] = page.contentType
	}
	return fakeResponse{headers: headers, panicWith: page.headerPanic}, nil
}

func (p *fakeTab) ExtractHrefs() ([]string, error) {
	p.l.mu.Lock()
	p.l.extractedPages = append(p.l.extractedPages, p.current)
	p.l.mu.Unlock()

	page := p.l.site[p.current]
	if page.extractErr != nil {
		return nil, page.extractErr
	}
	return page.links, nil
}

type fakeResponse struct {
	headers   map[string]string
	panicWith any
}

func (r fakeResponse) Headers() map[string]string {
	if r.panicWith != nil {
		panic(r.panicWith)
	}
	return r.headers
}
