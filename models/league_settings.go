package models

// LeagueSettings is the per-tournament singleton configuration record.
// NumDrafters drives the round computation for draft picks.
type LeagueSettings struct {
	ID             int  `json:"id" db:"id"`
	TournamentID   int  `json:"tournament_id" db:"tournament_id"`
	PlayersPerTeam int  `json:"players_per_team" db:"players_per_team"`
	CurrentRound   int  `json:"current_round" db:"current_round"`
	DraftComplete  bool `json:"draft_complete" db:"draft_complete"`
	NumDrafters    int  `json:"num_drafters" db:"num_drafters"`
}

const (
	DefaultPlayersPerTeam = 10
	DefaultNumDrafters    = 4
)

// DefaultLeagueSettings returns the settings a tournament starts with.
func DefaultLeagueSettings(tournamentID int) *LeagueSettings {
	return &LeagueSettings{
		TournamentID:   tournamentID,
		PlayersPerTeam: DefaultPlayersPerTeam,
		CurrentRound:   1,
		DraftComplete:  false,
		NumDrafters:    DefaultNumDrafters,
	}
}
