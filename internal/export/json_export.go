package export

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/yingtu35/site-crawler/internal/crawler"
)

type JsonExporter struct{}

func NewJsonExporter() Exporter {
	return &JsonExporter{}
}

func (e *JsonExporter) Export(result *crawler.CrawlResult, filename string) error {
	file, err := os.Create(filename + ".json")
	if err != nil {
		slog.Error("failed to create export file", "file", filename, "error", err)
		return err
	}
	defer file.Close()

	return e.Write(file, result)
}

// Write encodes the result as indented JSON
func (e *JsonExporter) Write(w io.Writer, result *crawler.CrawlResult) error {
	record := *result
	if record.URLs == nil {
		record.URLs = []string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(record); err != nil {
		slog.Error("failed to export JSON", "error", err)
		return err
	}
	return nil
}
