package models

import "time"

// TournamentStatus represents tournament statuses, matching the ENUM in the DB.
type TournamentStatus string

const (
	StatusUpcoming  TournamentStatus = "upcoming"
	StatusActive    TournamentStatus = "active"
	StatusCompleted TournamentStatus = "completed"
)

// Tournament represents a single tournament week the league drafts against.
type Tournament struct {
	ID        int              `json:"id" db:"id"`
	Name      string           `json:"name" db:"name"`
	Year      int              `json:"year" db:"year"`
	Status    TournamentStatus `json:"status" db:"status"`
	StartDate string           `json:"start_date" db:"start_date"`
	EndDate   string           `json:"end_date" db:"end_date"`
	Course    string           `json:"course" db:"course"`
	Purse     string           `json:"purse" db:"purse"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}
