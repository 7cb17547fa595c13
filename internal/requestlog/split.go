package requestlog

import "net/http"

// SplitByMethod partitions a snapshot into read (GET) and write (all
// other methods) subsequences, each preserving the original order.
// It is a pure helper for display layers that render the two groups
// in separate columns.
func SplitByMethod(entries []Entry) (reads, writes []Entry) {
	reads = make([]Entry, 0, len(entries))
	writes = make([]Entry, 0)
	for _, e := range entries {
		if e.Method == http.MethodGet {
			reads = append(reads, e)
		} else {
			writes = append(writes, e)
		}
	}
	return reads, writes
}
