package domain

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"
)

// staticAssetExtensions never hold a page worth navigating to
var staticAssetExtensions = []string{
	".pdf", ".jpg", ".jpeg", ".png", ".gif", ".svg", ".css", ".js",
	".ico", ".woff", ".woff2", ".ttf", ".eot",
}

// IsValidLink reports whether a raw href is worth resolving at all.
// In-page anchors, mailto: and tel: links are rejected.
func IsValidLink(href string) bool {
	return !strings.HasPrefix(href, "#") &&
		!strings.HasPrefix(href, "mailto:") &&
		!strings.HasPrefix(href, "tel:")
}

// IsAllowedProtocol reports whether u uses http or https
func IsAllowedProtocol(u *url.URL) bool {
	if u == nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

// IsStaticAsset reports whether a URL path points to a static asset
func IsStaticAsset(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range staticAssetExtensions {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// ResolveLink turns an href found on pageURL into a normalized absolute URL.
// It returns an empty string when the link should be discarded. An error is
// only returned when pageURL itself is unusable or normalization fails.
func ResolveLink(href, pageURL, startDomain string, sameDomainOnly bool) (string, error) {
	if !IsValidLink(href) {
		return "", nil
	}

	base, err := parseAbsolute(pageURL)
	if err != nil {
		return "", fmt.Errorf("parse page url: %w", err)
	}
	ref, err := url.Parse(strings.TrimSpace(href))
	if err != nil {
		return "", nil
	}
	resolved := base.ResolveReference(ref)

	if !IsAllowedProtocol(resolved) || resolved.Hostname() == "" {
		return "", nil
	}
	if sameDomainOnly && !IsSameDomain(strings.ToLower(startDomain), resolved.String()) {
		return "", nil
	}
	if IsStaticAsset(resolved.Path) {
		return "", nil
	}

	normalized, err := Normalize(resolved.String())
	if err != nil {
		return "", fmt.Errorf("normalize %q: %w", resolved.String(), err)
	}
	return normalized, nil
}

// ProcessLinks resolves a batch of hrefs found on pageURL. The result is
// deduplicated and keeps the order of first occurrence. A failing href is
// logged and skipped without affecting the rest of the batch.
func ProcessLinks(hrefs []string, pageURL, startDomain string, sameDomainOnly bool, logger *slog.Logger) []string {
	if logger == nil {
		logger = slog.Default()
	}

	seen := make(map[string]struct{}, len(hrefs))
	links := make([]string, 0, len(hrefs))
	for _, href := range hrefs {
		link, err := ResolveLink(href, pageURL, startDomain, sameDomainOnly)
		if err != nil {
			logger.Debug("skipping link", "href", href, "page", pageURL, "error", err)
			continue
		}
		if link == "" {
			continue
		}
		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		links = append(links, link)
	}
	return links
}
