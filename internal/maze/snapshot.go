package maze

// Snapshot contains the session state that depends on the seed and the moves
// played. Uses primitive types only so snapshots compare with ==.
type Snapshot struct {
	Difficulty     string
	Row            int
	Col            int
	MovesRemaining int
	MovesUsed      int
	BonusCollected int
	BonusLeft      int
	State          string

	// Board is the rendered grid with the player, one line per row.
	Board string
}

// Snapshot returns the current session state as a Snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Difficulty:     string(s.Difficulty),
		Row:            s.position.Row,
		Col:            s.position.Col,
		MovesRemaining: s.movesRemaining,
		MovesUsed:      s.movesUsed,
		BonusCollected: s.bonusCollected,
		BonusLeft:      s.grid.Bonuses.Len(),
		State:          s.state.String(),
		Board:          s.grid.Render(s.position, true).String(),
	}
}
