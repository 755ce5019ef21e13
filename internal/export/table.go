package export

import (
	"fmt"
	"io"
	"time"

	"github.com/rodaine/table"

	"github.com/yingtu35/site-crawler/internal/crawler"
)

// PrintResults renders the discovered pages as a table followed by a summary line
func PrintResults(w io.Writer, result *crawler.CrawlResult) {
	if len(result.URLs) == 0 {
		fmt.Fprintln(w, "No pages found")
	} else {
		tbl := table.New("#", "URL").WithWriter(w)
		for i, url := range result.URLs {
			tbl.AddRow(i+1, url)
		}
		tbl.Print()
	}

	elapsed := time.Duration(result.CrawlTime) * time.Millisecond
	fmt.Fprintf(w, "\nTotal Pages: %d\nTotal Crawling Time: %s\n", result.TotalFound, elapsed)
}
