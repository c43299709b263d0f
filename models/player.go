package models

// Player is one golfer in a tournament field. DraftedBy is nil until a drafter
// claims the player; the transition back to nil only happens on a full reset.
// Round scores are independently nullable because rounds post one at a time.
type Player struct {
	ID           int     `json:"id" db:"id"`
	Name         string  `json:"name" db:"name"`
	TournamentID int     `json:"tournament_id" db:"tournament_id"`
	DraftedBy    *string `json:"drafted_by,omitempty" db:"drafted_by"`
	TotalScore   int     `json:"total_score" db:"total_score"`
	ToPar        int     `json:"to_par" db:"to_par"`
	Position     *string `json:"position,omitempty" db:"position"`
	Round1Score  *int    `json:"round1_score" db:"round1_score"`
	Round2Score  *int    `json:"round2_score" db:"round2_score"`
	Round3Score  *int    `json:"round3_score" db:"round3_score"`
	Round4Score  *int    `json:"round4_score" db:"round4_score"`
	WorldRank    int     `json:"world_rank" db:"world_rank"`
	Country      string  `json:"country" db:"country"`
}
