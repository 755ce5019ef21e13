package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for name, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := ParseLevel(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, err := New(&buf, "info", FormatJSON)
		require.NoError(t, err)

		logger.Debug("hidden")
		logger.Info("crawl finished", "pages", 3)

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "crawl finished", record["msg"])
		assert.EqualValues(t, 3, record["pages"])
	})

	t.Run("text", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, err := New(&buf, "debug", "")
		require.NoError(t, err)

		logger.Debug("navigating", "url", "https://example.com")
		assert.Contains(t, buf.String(), "url=https://example.com")
	})

	t.Run("unknown format", func(t *testing.T) {
		t.Parallel()

		_, err := New(&bytes.Buffer{}, "info", "xml")
		assert.Error(t, err)
	})
}
