package requestlog

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seqEntry(method string, seq int) Entry {
	return Entry{
		Timestamp:     fmt.Sprintf("2024-01-01T00:00:%02d.000000", seq%60),
		Method:        method,
		URL:           fmt.Sprintf("http://localhost:5000/api/todos?seq=%d", seq),
		ClientIP:      "127.0.0.1",
		UserAgent:     "test-agent",
		StatusCode:    200,
		ProcessTimeMs: float64(seq),
		ResponseSize:  "42",
	}
}

func TestNewDefaultsCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, New(0).Capacity())
	assert.Equal(t, DefaultCapacity, New(-5).Capacity())
	assert.Equal(t, 10, New(10).Capacity())
}

func TestRecordCapacityInvariant(t *testing.T) {
	b := New(100)

	for i := 1; i <= 150; i++ {
		b.Record(seqEntry("GET", i))

		want := i
		if want > 100 {
			want = 100
		}
		entries, total := b.Snapshot(0)
		require.Len(t, entries, want, "after %d records", i)
		require.Equal(t, uint64(i), total)
	}
}

func TestFIFOEviction(t *testing.T) {
	b := New(100)
	for i := 1; i <= 150; i++ {
		b.Record(seqEntry("GET", i))
	}

	entries, total := b.Snapshot(0)
	require.Len(t, entries, 100)
	assert.Equal(t, uint64(150), total)

	for i, e := range entries {
		assert.Equal(t, fmt.Sprintf("http://localhost:5000/api/todos?seq=%d", 51+i), e.URL)
	}
}

func TestSnapshotLimit(t *testing.T) {
	b := New(100)
	for i := 1; i <= 150; i++ {
		b.Record(seqEntry("GET", i))
	}

	entries, total := b.Snapshot(10)
	require.Len(t, entries, 10)
	assert.Equal(t, uint64(150), total)

	for i, e := range entries {
		assert.Equal(t, fmt.Sprintf("http://localhost:5000/api/todos?seq=%d", 141+i), e.URL)
	}

	// A limit larger than the retained size returns everything.
	entries, _ = b.Snapshot(500)
	assert.Len(t, entries, 100)
}

func TestSnapshotDoesNotMutate(t *testing.T) {
	b := New(100)
	for i := 1; i <= 7; i++ {
		b.Record(seqEntry("POST", i))
	}

	first, firstTotal := b.Snapshot(0)
	second, secondTotal := b.Snapshot(0)
	assert.Equal(t, first, second)
	assert.Equal(t, firstTotal, secondTotal)

	// Mutating the returned copy must not leak into the buffer.
	first[0].URL = "mutated"
	third, _ := b.Snapshot(0)
	assert.Equal(t, second, third)
}

func TestConcurrentRecord(t *testing.T) {
	const (
		callers       = 10
		perCaller     = 100
		totalExpected = callers * perCaller
	)

	b := New(100)

	var wg sync.WaitGroup
	for c := 0; c < callers; c++ {
		wg.Add(1)
		go func(c int) {
			defer wg.Done()
			for i := 0; i < perCaller; i++ {
				tag := fmt.Sprintf("caller-%d-req-%d", c, i)
				b.Record(Entry{
					Method:    tag,
					URL:       tag,
					ClientIP:  tag,
					UserAgent: tag,
				})
			}
		}(c)
	}
	wg.Wait()

	entries, total := b.Snapshot(0)
	require.Equal(t, uint64(totalExpected), total)
	require.Len(t, entries, 100)

	// Every retained entry must be internally consistent: all fields
	// from the same Record call, never a mix of two callers.
	for _, e := range entries {
		assert.Equal(t, e.Method, e.URL)
		assert.Equal(t, e.Method, e.ClientIP)
		assert.Equal(t, e.Method, e.UserAgent)
	}
}

func TestRecordThenSnapshotScenario(t *testing.T) {
	b := New(100)
	b.Record(Entry{Method: "GET", URL: "http://localhost:5000/api/todos", StatusCode: 200, ProcessTimeMs: 12.3})
	b.Record(Entry{Method: "POST", URL: "http://localhost:5000/api/todos", StatusCode: 201, ProcessTimeMs: 8.1})
	b.Record(Entry{Method: "PUT", URL: "http://localhost:5000/api/todos/1/toggle", StatusCode: 200, ProcessTimeMs: 5.0})

	entries, total := b.Snapshot(0)
	require.Len(t, entries, 3)
	assert.Equal(t, uint64(3), total)
	assert.Equal(t, "GET", entries[0].Method)
	assert.Equal(t, "POST", entries[1].Method)
	assert.Equal(t, "PUT", entries[2].Method)
	assert.Equal(t, 201, entries[1].StatusCode)
	assert.Equal(t, 5.0, entries[2].ProcessTimeMs)

	reads, writes := SplitByMethod(entries)
	assert.Len(t, reads, 1)
	assert.Len(t, writes, 2)
}

func TestSplitByMethod(t *testing.T) {
	methods := []string{"GET", "POST", "GET", "PUT", "DELETE", "GET", "PATCH"}
	entries := make([]Entry, len(methods))
	for i, m := range methods {
		entries[i] = seqEntry(m, i)
	}

	reads, writes := SplitByMethod(entries)
	assert.Len(t, reads, 3)
	assert.Len(t, writes, 4)

	// Interleaving the partitions back by original position must
	// reconstruct the snapshot exactly.
	var rebuilt []Entry
	ri, wi := 0, 0
	for _, e := range entries {
		if e.Method == http.MethodGet {
			rebuilt = append(rebuilt, reads[ri])
			ri++
		} else {
			rebuilt = append(rebuilt, writes[wi])
			wi++
		}
	}
	assert.Equal(t, entries, rebuilt)
}

func TestSplitByMethodEmpty(t *testing.T) {
	reads, writes := SplitByMethod(nil)
	assert.Empty(t, reads)
	assert.Empty(t, writes)
}
