package journal

import (
	"sort"
	"sync"
	"time"

	"chatmesh/internal/clock"
)

// Entry is a single observed message event. Entries are immutable once
// appended; the journal records observations, it never rewrites them.
type Entry struct {
	Timestamp clock.LamportTime
	Origin    string // node ID that produced the message
	ID        string // message ID minted by the origin
	Body      []byte
	Received  time.Time // local wall-clock arrival, diagnostic only
}

// Before reports whether e precedes other in the Lamport total order:
// ordered by timestamp, with the origin node ID breaking ties between
// concurrent events, and the message ID breaking ties within one
// origin and timestamp.
func (e Entry) Before(other Entry) bool {
	if e.Timestamp != other.Timestamp {
		return e.Timestamp < other.Timestamp
	}
	if e.Origin != other.Origin {
		return e.Origin < other.Origin
	}
	return e.ID < other.ID
}

// Journal is a thread-safe causal history record for one node. The
// journal does not touch the clock: callers stamp or merge first, then
// append the resulting entry.
type Journal struct {
	mu      sync.RWMutex
	entries []Entry
}

// New creates an empty journal.
func New() *Journal {
	return &Journal{}
}

// Append records an entry. The body is copied so the caller may reuse
// its buffer.
func (j *Journal) Append(e Entry) {
	e.Body = append([]byte(nil), e.Body...)

	j.mu.Lock()
	defer j.mu.Unlock()
	j.entries = append(j.entries, e)
}

// Len returns the number of recorded entries.
func (j *Journal) Len() int {
	j.mu.RLock()
	defer j.mu.RUnlock()
	return len(j.entries)
}

// Entries returns a snapshot of all entries sorted in the Lamport
// total order. The snapshot is independent of the journal; mutating it
// does not affect recorded history.
func (j *Journal) Entries() []Entry {
	j.mu.RLock()
	snapshot := make([]Entry, len(j.entries))
	for i, e := range j.entries {
		e.Body = append([]byte(nil), e.Body...)
		snapshot[i] = e
	}
	j.mu.RUnlock()

	sort.Slice(snapshot, func(a, b int) bool {
		return snapshot[a].Before(snapshot[b])
	})
	return snapshot
}

// Since returns the sorted entries with a timestamp strictly greater
// than ts.
func (j *Journal) Since(ts clock.LamportTime) []Entry {
	all := j.Entries()

	idx := sort.Search(len(all), func(i int) bool {
		return all[i].Timestamp > ts
	})
	return all[idx:]
}

// Latest returns the entry with the greatest Lamport order position
// and true, or a zero entry and false if the journal is empty.
func (j *Journal) Latest() (Entry, bool) {
	all := j.Entries()
	if len(all) == 0 {
		return Entry{}, false
	}
	return all[len(all)-1], true
}
