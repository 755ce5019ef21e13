package crawler

// frontierEntry is a discovered URL waiting to be visited
type frontierEntry struct {
	url   string // raw, not yet normalized
	depth int
}

// frontier is a FIFO queue that also indexes the URLs it currently holds,
// so membership checks do not scan the queue
type frontier struct {
	entries []frontierEntry
	queued  map[string]int
}

func newFrontier() *frontier {
	return &frontier{queued: make(map[string]int)}
}

func (f *frontier) push(e frontierEntry) {
	f.entries = append(f.entries, e)
	f.queued[e.url]++
}

func (f *frontier) pop() (frontierEntry, bool) {
	if len(f.entries) == 0 {
		return frontierEntry{}, false
	}
	e := f.entries[0]
	f.entries[0] = frontierEntry{}
	f.entries = f.entries[1:]

	if f.queued[e.url] <= 1 {
		delete(f.queued, e.url)
	} else {
		f.queued[e.url]--
	}
	return e, true
}

func (f *frontier) contains(url string) bool {
	return f.queued[url] > 0
}

func (f *frontier) len() int {
	return len(f.entries)
}
