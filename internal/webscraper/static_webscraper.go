package webscraper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// ErrNoDocument is returned when hrefs are requested before an HTML page
// has been loaded
var ErrNoDocument = errors.New("no HTML document loaded")

// StaticOptions configures the browser-free engine
type StaticOptions struct {
	Client       *http.Client // defaults to a client without a global timeout
	MaxBodyBytes int64        // bodies are truncated past this size
}

// StaticLauncher loads pages with plain HTTP requests and reads anchors
// from the served HTML. Scripts are never executed.
type StaticLauncher struct {
	opts StaticOptions
}

func NewStaticLauncher(opts StaticOptions) *StaticLauncher {
	if opts.Client == nil {
		opts.Client = &http.Client{}
	}
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}
	return &StaticLauncher{opts: opts}
}

func (l *StaticLauncher) Launch() (Browser, error) {
	return &staticBrowser{opts: l.opts}, nil
}

type staticBrowser struct {
	opts StaticOptions
}

func (b *staticBrowser) NewContext(userAgent string) (Context, error) {
	return &staticContext{opts: b.opts, userAgent: userAgent}, nil
}

func (b *staticBrowser) Close() error { return nil }

type staticContext struct {
	opts      StaticOptions
	userAgent string
}

func (c *staticContext) NewPage() (Page, error) {
	return &staticPage{
		client:       c.opts.Client,
		maxBodyBytes: c.opts.MaxBodyBytes,
		userAgent:    c.userAgent,
	}, nil
}

func (c *staticContext) Close() error { return nil }

type staticPage struct {
	client       *http.Client
	maxBodyBytes int64
	userAgent    string

	doc *goquery.Document // document of the last HTML navigation
}

func (p *staticPage) Goto(url string, opts GotoOptions) (Response, error) {
	p.doc = nil

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	res, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer res.Body.Close()

	headers := make(map[string]string, len(res.Header))
	for name, values := range res.Header {
		headers[strings.ToLower(name)] = strings.Join(values, ", ")
	}

	contentType := headers["content-type"]
	if !strings.Contains(contentType, "text/html") {
		return staticResponse{headers: headers}, nil
	}

	body, err := io.ReadAll(io.LimitReader(res.Body, p.maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read body of %s: %w", url, err)
	}

	doc, err := parseDocument(body, contentType)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", url, err)
	}
	p.doc = doc

	return staticResponse{headers: headers}, nil
}

func (p *staticPage) ExtractHrefs() ([]string, error) {
	if p.doc == nil {
		return nil, ErrNoDocument
	}

	var hrefs []string
	p.doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		if href, ok := s.Attr("href"); ok {
			hrefs = append(hrefs, href)
		}
	})
	return hrefs, nil
}

// parseDocument decodes body to UTF-8 according to the declared charset and
// builds a queryable document from it
func parseDocument(body []byte, contentType string) (*goquery.Document, error) {
	reader, err := charset.NewReader(bytes.NewReader(body), contentType)
	if err != nil {
		return nil, fmt.Errorf("decode charset: %w", err)
	}
	root, err := html.Parse(reader)
	if err != nil {
		return nil, err
	}
	return goquery.NewDocumentFromNode(root), nil
}

type staticResponse struct {
	headers map[string]string
}

func (r staticResponse) Headers() map[string]string {
	return r.headers
}
