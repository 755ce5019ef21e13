package export

import (
	"io"
	"log/slog"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/yingtu35/site-crawler/internal/crawler"
)

type PageRow struct {
	Order int    `csv:"Order"`
	URL   string `csv:"URL"`
}

type CSVExporter struct{}

func NewCSVExporter() Exporter {
	return &CSVExporter{}
}

func (e *CSVExporter) Export(result *crawler.CrawlResult, filename string) error {
	file, err := os.Create(filename + ".csv")
	if err != nil {
		slog.Error("failed to create export file", "file", filename, "error", err)
		return err
	}
	defer file.Close()

	return e.Write(file, result)
}

// Write encodes one row per discovered page, in discovery order
func (e *CSVExporter) Write(w io.Writer, result *crawler.CrawlResult) error {
	rows := e.transformData(result)
	if err := gocsv.Marshal(&rows, w); err != nil {
		slog.Error("failed to export CSV", "error", err)
		return err
	}
	return nil
}

func (e *CSVExporter) transformData(result *crawler.CrawlResult) []PageRow {
	rows := make([]PageRow, 0, len(result.URLs))
	for i, url := range result.URLs {
		rows = append(rows, PageRow{Order: i + 1, URL: url})
	}
	return rows
}
