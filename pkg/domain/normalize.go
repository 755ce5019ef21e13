package domain

import (
	"net/url"
	"strings"
)

// trackingParams are dropped from the query string during normalization
var trackingParams = map[string]struct{}{
	"utm_source":   {},
	"utm_medium":   {},
	"utm_campaign": {},
}

var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
}

// Normalize returns the canonical form of an absolute URL. The fragment and
// tracking parameters are removed and a single trailing slash is stripped,
// so "https://example.com/" and "https://example.com#top" both normalize to
// "https://example.com".
func Normalize(raw string) (string, error) {
	u, err := parseAbsolute(raw)
	if err != nil {
		return "", err
	}

	u.Fragment = ""
	u.RawFragment = ""

	u.Scheme = strings.ToLower(u.Scheme)
	host := strings.ToLower(u.Hostname())
	if port := u.Port(); port != "" && port != defaultPorts[u.Scheme] {
		host = joinHostPort(host, port)
	} else if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}
	u.Host = host
	if u.Path == "" {
		u.Path = "/"
		u.RawPath = ""
	}

	if u.RawQuery != "" {
		u.RawQuery = stripTrackingParams(u.RawQuery)
	}
	u.ForceQuery = false

	s := u.String()
	if strings.HasSuffix(s, "/") && !strings.HasSuffix(s, "//") {
		s = strings.TrimSuffix(s, "/")
	}
	return s, nil
}

// stripTrackingParams removes tracking parameters while keeping the order
// and the original encoding of every other parameter
func stripTrackingParams(rawQuery string) string {
	pairs := strings.Split(rawQuery, "&")
	kept := pairs[:0]
	for _, pair := range pairs {
		if pair == "" {
			continue
		}
		key, _, _ := strings.Cut(pair, "=")
		if name, err := url.QueryUnescape(key); err == nil {
			key = name
		}
		if _, ok := trackingParams[key]; ok {
			continue
		}
		kept = append(kept, pair)
	}
	return strings.Join(kept, "&")
}

func joinHostPort(host, port string) string {
	if strings.Contains(host, ":") {
		return "[" + host + "]:" + port
	}
	return host + ":" + port
}
