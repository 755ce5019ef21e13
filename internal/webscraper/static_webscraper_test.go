package webscraper

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPage(t *testing.T, opts StaticOptions) Page {
	t.Helper()

	browser, err := NewStaticLauncher(opts).Launch()
	require.NoError(t, err)
	t.Cleanup(func() { _ = browser.Close() })

	context, err := browser.NewContext("test-agent/1.0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = context.Close() })

	page, err := context.NewPage()
	require.NoError(t, err)
	return page
}

func TestStaticPage_GotoAndExtract(t *testing.T) {
	t.Parallel()

	userAgents := make(chan string, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			userAgents <- r.UserAgent()
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			w.Header().Set("X-Custom-Header", "yes")
			_, _ = w.Write([]byte(`<html><body>
				<a href="/about">About</a>
				<a href="contact?utm_source=nav#form">Contact</a>
				<a>No href</a>
				<a href="">Self</a>
				<a href="mailto:hi@example.com">Mail</a>
			</body></html>`))
		case "/report.pdf":
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write([]byte("%PDF-1.4"))
		}
	}))
	t.Cleanup(server.Close)

	page := newTestPage(t, StaticOptions{})

	resp, err := page.Goto(server.URL+"/", GotoOptions{WaitUntil: WaitUntilDOMContentLoaded})
	require.NoError(t, err)
	require.NotNil(t, resp)

	headers := resp.Headers()
	assert.Equal(t, "text/html; charset=utf-8", headers["content-type"])
	assert.Equal(t, "yes", headers["x-custom-header"])
	assert.Equal(t, "test-agent/1.0", <-userAgents)

	hrefs, err := page.ExtractHrefs()
	require.NoError(t, err)
	assert.Equal(t, []string{"/about", "contact?utm_source=nav#form", "", "mailto:hi@example.com"}, hrefs)

	resp, err = page.Goto(server.URL+"/report.pdf", GotoOptions{})
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", resp.Headers()["content-type"])

	_, err = page.ExtractHrefs()
	assert.ErrorIs(t, err, ErrNoDocument)
}

func TestStaticPage_DecodesCharset(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		// "caf\xe9" is "café" in latin-1
		_, _ = w.Write([]byte("<html><body><a href=\"/caf\xe9\">menu</a></body></html>"))
	}))
	t.Cleanup(server.Close)

	page := newTestPage(t, StaticOptions{})
	_, err := page.Goto(server.URL, GotoOptions{})
	require.NoError(t, err)

	hrefs, err := page.ExtractHrefs()
	require.NoError(t, err)
	assert.Equal(t, []string{"/café"}, hrefs)
}

func TestStaticPage_Timeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	t.Cleanup(func() {
		close(release)
		server.Close()
	})

	page := newTestPage(t, StaticOptions{})
	_, err := page.Goto(server.URL, GotoOptions{Timeout: 50 * time.Millisecond})
	assert.Error(t, err)
}

func TestStaticPage_TruncatesLargeBodies(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<a href="/first">1</a><a href="/second">2</a>`))
	}))
	t.Cleanup(server.Close)

	page := newTestPage(t, StaticOptions{MaxBodyBytes: 22})
	_, err := page.Goto(server.URL, GotoOptions{})
	require.NoError(t, err)

	hrefs, err := page.ExtractHrefs()
	require.NoError(t, err)
	assert.Equal(t, []string{"/first"}, hrefs)
}

func TestStaticPage_NetworkError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	page := newTestPage(t, StaticOptions{})
	_, err := page.Goto(url, GotoOptions{Timeout: time.Second})
	assert.Error(t, err)
}
