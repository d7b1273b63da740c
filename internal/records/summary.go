package records

import "github.com/vovakirdan/button-maze/internal/core"

// Summary aggregates the records of one difficulty.
type Summary struct {
	Difficulty  core.Difficulty
	Count       int
	BestSeconds float64
	MostBonus   int
}

// Summarize groups records by difficulty, in selection order.
// Difficulties without records are omitted.
func Summarize(rs []Record) []Summary {
	byDifficulty := make(map[core.Difficulty]*Summary)
	for _, r := range rs {
		s, ok := byDifficulty[r.Difficulty]
		if !ok {
			s = &Summary{Difficulty: r.Difficulty, BestSeconds: r.ElapsedSeconds, MostBonus: r.BonusCount}
			byDifficulty[r.Difficulty] = s
		}
		s.Count++
		s.BestSeconds = min(s.BestSeconds, r.ElapsedSeconds)
		s.MostBonus = max(s.MostBonus, r.BonusCount)
	}

	var out []Summary
	for _, d := range core.Difficulties {
		if s, ok := byDifficulty[d]; ok {
			out = append(out, *s)
		}
	}
	return out
}
