package system

import (
	"sync"
	"time"
)

// Entry is one frontend-visible log line.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Level     string    `json:"level"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id,omitempty"`
}

// Buffer is a thread-safe ring buffer of log entries. Old entries are
// overwritten once capacity is reached.
type Buffer struct {
	entries []*Entry
	head    int
	size    int
	cap     int
	mu      sync.RWMutex
}

// NewBuffer creates a ring buffer holding at most cap entries.
func NewBuffer(cap int) *Buffer {
	return &Buffer{
		entries: make([]*Entry, cap),
		cap:     cap,
	}
}

// Add inserts an entry, overwriting the oldest when full.
func (b *Buffer) Add(entry *Entry) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.entries[b.head] = entry
	b.head = (b.head + 1) % b.cap
	if b.size < b.cap {
		b.size++
	}
}

// Recent returns up to limit entries, newest first, optionally filtered by level.
func (b *Buffer) Recent(limit int, level string) []Entry {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if limit > b.size {
		limit = b.size
	}

	result := make([]Entry, 0, limit)
	for i := 0; i < b.size && len(result) < limit; i++ {
		idx := (b.head - 1 - i + b.cap) % b.cap
		entry := b.entries[idx]
		if entry == nil {
			continue
		}
		if level == "" || entry.Level == level {
			result = append(result, *entry)
		}
	}
	return result
}
