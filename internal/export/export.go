// Package export writes crawl results to files or the terminal.
package export

import (
	"fmt"

	"github.com/yingtu35/site-crawler/internal/crawler"
)

type Exporter interface {
	// Export writes the result to filename, adding the format's extension
	Export(result *crawler.CrawlResult, filename string) error
}

// New returns the exporter for a file format: csv or json
func New(format string) (Exporter, error) {
	switch format {
	case "csv":
		return NewCSVExporter(), nil
	case "json":
		return NewJsonExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}
