package models

import "time"

// DraftPick is one entry in the append-only draft ledger. PlayerName is a
// denormalized snapshot rather than a foreign key, so the ledger survives
// player-row changes. PickOrder is 1-based and gapless per tournament.
type DraftPick struct {
	ID           int       `json:"id" db:"id"`
	TournamentID int       `json:"tournament_id" db:"tournament_id"`
	PlayerName   string    `json:"player_name" db:"player_name"`
	DraftedBy    string    `json:"drafted_by" db:"drafted_by"`
	PickOrder    int       `json:"pick_order" db:"pick_order"`
	Round        int       `json:"round" db:"round"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}
