// Package records holds completed maze sessions for the lifetime of the process.
package records

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/vovakirdan/button-maze/internal/core"
)

// Record is one successfully completed session.
type Record struct {
	SessionID      string
	Difficulty     core.Difficulty
	ElapsedSeconds float64
	BonusCount     int
	CompletedAt    time.Time
}

// String formats the record the way the records screen lists it.
func (r Record) String() string {
	return fmt.Sprintf("%s: %.2fs, bonus %d", r.Difficulty.Title(), r.ElapsedSeconds, r.BonusCount)
}

// Less orders records by elapsed time ascending, then bonus count descending.
func Less(a, b Record) bool {
	if a.ElapsedSeconds != b.ElapsedSeconds {
		return a.ElapsedSeconds < b.ElapsedSeconds
	}
	return a.BonusCount > b.BonusCount
}

// Sort orders records in place. Full ties keep their insertion order.
func Sort(rs []Record) {
	sort.SliceStable(rs, func(i, j int) bool { return Less(rs[i], rs[j]) })
}

// RoundSeconds rounds a duration to hundredths of a second.
func RoundSeconds(d time.Duration) float64 {
	return math.Round(d.Seconds()*100) / 100
}

// Store is an append-only sequence of records.
type Store interface {
	Append(r Record) error
	Sorted() ([]Record, error)
}
