// Command app discovers the pages of a site for accessibility scanning.
//
// Usage:
//
//	site-crawler crawl https://example.com --max-pages 25 --max-depth 2
//	site-crawler crawl --config crawler.yaml --format json --output pages
package main

func main() {
	Execute()
}
