package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"removes tracking params", "https://example.com/page?utm_source=x&id=1", "https://example.com/page?id=1"},
		{"removes every tracking param", "https://example.com/p?utm_medium=a&utm_campaign=b&utm_source=c", "https://example.com/p"},
		{"keeps other params in order", "https://example.com/p?z=3&utm_medium=m&a=1&utm_content=x", "https://example.com/p?z=3&a=1&utm_content=x"},
		{"strips fragment", "https://example.com/p#section", "https://example.com/p"},
		{"strips trailing slash", "https://example.com/page/", "https://example.com/page"},
		{"collapses root path", "https://example.com/", "https://example.com"},
		{"bare host", "https://example.com", "https://example.com"},
		{"root with query", "https://example.com?id=1", "https://example.com/?id=1"},
		{"lowercases host", "https://EXAMPLE.com/Path", "https://example.com/Path"},
		{"drops default port", "http://example.com:80/a", "http://example.com/a"},
		{"keeps custom port", "http://example.com:8080/a/", "http://example.com:8080/a"},
		{"keeps double trailing slash", "https://example.com/a//", "https://example.com/a//"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Normalize(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"https://example.com",
		"https://example.com/",
		"https://example.com/page/?utm_source=x&b=2&a=1#frag",
		"http://EXAMPLE.com:80/a/b/",
		"https://example.com/a//",
		"https://example.com/search?q=hello%20world&utm_campaign=spring",
		"http://[::1]:8080/x/",
		"https://example.com/?",
	}

	for _, in := range inputs {
		once, err := Normalize(in)
		require.NoError(t, err, in)
		twice, err := Normalize(once)
		require.NoError(t, err, once)
		assert.Equal(t, once, twice, "normalize is not idempotent for %q", in)
	}
}

func TestNormalize_InvalidURL(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"", "not a url", "/relative/path", "://invalid", "http://[::1", "http://:80/x", "https://:443"} {
		_, err := Normalize(in)
		assert.ErrorIs(t, err, ErrInvalidURL, in)
	}
}

func TestGetDomain(t *testing.T) {
	t.Parallel()

	d, err := GetDomain("https://WWW.Example.com:8443/page")
	require.NoError(t, err)
	assert.Equal(t, "www.example.com", d)

	_, err = GetDomain("example.com/page")
	assert.ErrorIs(t, err, ErrInvalidURL)

	assert.True(t, IsSameDomain("example.com", "http://example.com/a"))
	assert.False(t, IsSameDomain("example.com", "https://blog.example.com/a"))
}
