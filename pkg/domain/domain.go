package domain

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrInvalidURL is returned when a string cannot be parsed as an absolute URL
var ErrInvalidURL = errors.New("invalid URL")

// parseAbsolute parses u and requires both a scheme and a hostname
func parseAbsolute(u string) (*url.URL, error) {
	parsedUrl, err := url.Parse(strings.TrimSpace(u))
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidURL, u, err)
	}
	if parsedUrl.Scheme == "" || parsedUrl.Hostname() == "" {
		return nil, fmt.Errorf("%w: %q is not absolute", ErrInvalidURL, u)
	}
	return parsedUrl, nil
}

// GetDomain returns the lowercase hostname of a given URL, without port.
// No www stripping is done: hostnames are compared exactly.
func GetDomain(u string) (string, error) {
	parsedUrl, err := parseAbsolute(u)
	if err != nil {
		return "", err
	}
	return strings.ToLower(parsedUrl.Hostname()), nil
}

// IsSameDomain reports whether u has exactly the given hostname
func IsSameDomain(domain string, u string) bool {
	d, err := GetDomain(u)
	return err == nil && domain == d
}
