package records

import (
	"sync"
	"testing"
	"time"

	"github.com/vovakirdan/button-maze/internal/core"
)

func TestLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Record
		want bool
	}{
		{"faster first", Record{ElapsedSeconds: 1.5}, Record{ElapsedSeconds: 2}, true},
		{"slower later", Record{ElapsedSeconds: 3}, Record{ElapsedSeconds: 2}, false},
		{"tie more bonus first", Record{ElapsedSeconds: 2, BonusCount: 3}, Record{ElapsedSeconds: 2, BonusCount: 1}, true},
		{"tie less bonus later", Record{ElapsedSeconds: 2, BonusCount: 0}, Record{ElapsedSeconds: 2, BonusCount: 1}, false},
		{"full tie", Record{ElapsedSeconds: 2, BonusCount: 1}, Record{ElapsedSeconds: 2, BonusCount: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Less(tt.a, tt.b); got != tt.want {
				t.Errorf("Less() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestLogSorted(t *testing.T) {
	l := NewLog()
	input := []Record{
		{SessionID: "a", Difficulty: core.Easy, ElapsedSeconds: 12.5, BonusCount: 0},
		{SessionID: "b", Difficulty: core.Hard, ElapsedSeconds: 8.25, BonusCount: 1},
		{SessionID: "c", Difficulty: core.Normal, ElapsedSeconds: 8.25, BonusCount: 3},
		{SessionID: "d", Difficulty: core.Easy, ElapsedSeconds: 30, BonusCount: 2},
		{SessionID: "e", Difficulty: core.Easy, ElapsedSeconds: 8.25, BonusCount: 1},
	}
	for _, r := range input {
		if err := l.Append(r); err != nil {
			t.Fatalf("Append() error: %v", err)
		}
	}

	got, err := l.Sorted()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"c", "b", "e", "a", "d"}
	if len(got) != len(want) {
		t.Fatalf("Sorted() returned %d records, expected %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].SessionID != id {
			t.Errorf("position %d = %s, expected %s", i, got[i].SessionID, id)
		}
	}

	// Sorted returns a copy; the log keeps insertion order.
	got[0].SessionID = "mutated"
	again, _ := l.Sorted()
	if again[0].SessionID != "c" {
		t.Error("Sorted() should return a copy")
	}
}

func TestLogEmpty(t *testing.T) {
	got, err := NewLog().Sorted()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("empty log returned %d records", len(got))
	}
}

func TestLogConcurrent(t *testing.T) {
	l := NewLog()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = l.Append(Record{ElapsedSeconds: float64(i)})
			_, _ = l.Sorted()
		}(i)
	}
	wg.Wait()
	if l.Len() != 8 {
		t.Errorf("Len() = %d, expected 8", l.Len())
	}
}

func TestRoundSeconds(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want float64
	}{
		{1234 * time.Millisecond, 1.23},
		{1235*time.Millisecond + 100*time.Microsecond, 1.24},
		{0, 0},
		{90 * time.Second, 90},
	}
	for _, tt := range tests {
		if got := RoundSeconds(tt.d); got != tt.want {
			t.Errorf("RoundSeconds(%v) = %v, expected %v", tt.d, got, tt.want)
		}
	}
}

func TestSummarize(t *testing.T) {
	rs := []Record{
		{Difficulty: core.Hard, ElapsedSeconds: 9.5, BonusCount: 1},
		{Difficulty: core.Easy, ElapsedSeconds: 20, BonusCount: 2},
		{Difficulty: core.Hard, ElapsedSeconds: 7.25, BonusCount: 0},
	}

	got := Summarize(rs)
	if len(got) != 2 {
		t.Fatalf("Summarize() returned %d rows, expected 2", len(got))
	}
	if got[0].Difficulty != core.Easy || got[1].Difficulty != core.Hard {
		t.Errorf("unexpected order: %s, %s", got[0].Difficulty, got[1].Difficulty)
	}
	want := Summary{Difficulty: core.Hard, Count: 2, BestSeconds: 7.25, MostBonus: 1}
	if got[1] != want {
		t.Errorf("hard summary = %+v, expected %+v", got[1], want)
	}

	if len(Summarize(nil)) != 0 {
		t.Error("Summarize(nil) should be empty")
	}
}
