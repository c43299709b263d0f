package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fairwayleague/draft-system/models"
	"github.com/lib/pq"
)

var (
	ErrSettingsNotFound          = errors.New("league settings not found")
	ErrSettingsConflict          = errors.New("league settings already exist for this tournament")
	ErrSettingsInvalidTournament = errors.New("invalid tournament reference")
)

type SettingsRepository interface {
	GetByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) (*models.LeagueSettings, error)
	Create(ctx context.Context, exec SQLExecutor, settings *models.LeagueSettings) error
	UpdateDraftProgress(ctx context.Context, exec SQLExecutor, tournamentID, currentRound int, draftComplete bool) error
	Reset(ctx context.Context, exec SQLExecutor, tournamentID int) error
}

type postgresSettingsRepository struct {
	db *sql.DB
}

func NewPostgresSettingsRepository(db *sql.DB) SettingsRepository {
	return &postgresSettingsRepository{db: db}
}

func (r *postgresSettingsRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresSettingsRepository) GetByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) (*models.LeagueSettings, error) {
	executor := r.getExecutor(exec)
	query := `
		SELECT id, tournament_id, players_per_team, current_round, draft_complete, num_drafters
		FROM league_settings
		WHERE tournament_id = $1`

	s := &models.LeagueSettings{}
	err := executor.QueryRowContext(ctx, query, tournamentID).Scan(
		&s.ID, &s.TournamentID, &s.PlayersPerTeam, &s.CurrentRound, &s.DraftComplete, &s.NumDrafters,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}
	return s, nil
}

func (r *postgresSettingsRepository) Create(ctx context.Context, exec SQLExecutor, s *models.LeagueSettings) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO league_settings (tournament_id, players_per_team, current_round, draft_complete, num_drafters)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err := executor.QueryRowContext(ctx, query,
		s.TournamentID, s.PlayersPerTeam, s.CurrentRound, s.DraftComplete, s.NumDrafters,
	).Scan(&s.ID)

	return r.handleSettingsError(err)
}

func (r *postgresSettingsRepository) UpdateDraftProgress(ctx context.Context, exec SQLExecutor, tournamentID, currentRound int, draftComplete bool) error {
	executor := r.getExecutor(exec)
	query := `UPDATE league_settings SET current_round = $1, draft_complete = $2 WHERE tournament_id = $3`

	result, err := executor.ExecContext(ctx, query, currentRound, draftComplete, tournamentID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrSettingsNotFound)
}

// Reset restores the settings row to round 1 / draft incomplete. A missing row
// is not an error: the next settings read lazily recreates the defaults.
func (r *postgresSettingsRepository) Reset(ctx context.Context, exec SQLExecutor, tournamentID int) error {
	executor := r.getExecutor(exec)
	query := `UPDATE league_settings SET current_round = 1, draft_complete = FALSE WHERE tournament_id = $1`

	_, err := executor.ExecContext(ctx, query, tournamentID)
	return err
}

func (r *postgresSettingsRepository) handleSettingsError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return ErrSettingsConflict
		case "23503":
			return ErrSettingsInvalidTournament
		}
	}
	return err
}
