package records

import "sync"

// Log is the in-memory Store. It is safe for concurrent use.
type Log struct {
	mu      sync.RWMutex
	entries []Record
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{}
}

// Append adds a record. It never fails.
func (l *Log) Append(r Record) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, r)
	return nil
}

// Sorted returns a sorted copy of all records.
func (l *Log) Sorted() ([]Record, error) {
	l.mu.RLock()
	out := make([]Record, len(l.entries))
	copy(out, l.entries)
	l.mu.RUnlock()

	Sort(out)
	return out, nil
}

// Len returns the number of records.
func (l *Log) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
