package requestlog

import "sync"

// DefaultCapacity is the number of entries retained when no explicit
// capacity is configured.
const DefaultCapacity = 100

// Buffer is a fixed-capacity, in-memory history of recent HTTP requests.
// Once full, recording a new entry evicts the oldest one. The running
// total counts every request ever recorded, not just those retained.
//
// All methods are safe for concurrent use.
type Buffer struct {
	mu      sync.Mutex
	entries []Entry
	head    int
	size    int
	total   uint64
}

func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Buffer{
		entries: make([]Entry, capacity),
	}
}

// Record appends an entry, evicting the oldest one when the buffer is
// full. It never fails; callers treat it as fire-and-forget.
func (b *Buffer) Record(entry Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	tail := (b.head + b.size) % len(b.entries)
	b.entries[tail] = entry
	if b.size < len(b.entries) {
		b.size++
	} else {
		b.head = (b.head + 1) % len(b.entries)
	}
	b.total++
}

// Snapshot returns a copy of up to limit most recent entries in
// insertion order (oldest first), plus the running request total.
// A limit <= 0 returns every retained entry.
func (b *Buffer) Snapshot(limit int) ([]Entry, uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	n := b.size
	if limit > 0 && limit < n {
		n = limit
	}

	out := make([]Entry, n)
	start := b.head + (b.size - n)
	for i := 0; i < n; i++ {
		out[i] = b.entries[(start+i)%len(b.entries)]
	}
	return out, b.total
}

// Capacity reports the maximum number of retained entries.
func (b *Buffer) Capacity() int {
	return len(b.entries)
}

// Len reports how many entries are currently retained.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.size
}
