package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fairwayleague/draft-system/models"
	"github.com/lib/pq"
)

var (
	ErrDraftPickOrderConflict     = errors.New("draft pick order conflict")
	ErrDraftPickInvalidTournament = errors.New("invalid tournament reference")
)

type DraftPickRepository interface {
	Create(ctx context.Context, exec SQLExecutor, pick *models.DraftPick) error
	CountByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) (int, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]models.DraftPick, error)
	DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error
}

type postgresDraftPickRepository struct {
	db *sql.DB
}

func NewPostgresDraftPickRepository(db *sql.DB) DraftPickRepository {
	return &postgresDraftPickRepository{db: db}
}

func (r *postgresDraftPickRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresDraftPickRepository) Create(ctx context.Context, exec SQLExecutor, pick *models.DraftPick) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO draft_picks (tournament_id, player_name, drafted_by, pick_order, round)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`

	err := executor.QueryRowContext(ctx, query,
		pick.TournamentID, pick.PlayerName, pick.DraftedBy, pick.PickOrder, pick.Round,
	).Scan(&pick.ID, &pick.CreatedAt)

	return r.handlePickError(err)
}

func (r *postgresDraftPickRepository) CountByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) (int, error) {
	executor := r.getExecutor(exec)

	var count int
	err := executor.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM draft_picks WHERE tournament_id = $1`, tournamentID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count draft picks: %w", err)
	}
	return count, nil
}

func (r *postgresDraftPickRepository) ListByTournament(ctx context.Context, tournamentID int) ([]models.DraftPick, error) {
	query := `
		SELECT id, tournament_id, player_name, drafted_by, pick_order, round, created_at
		FROM draft_picks
		WHERE tournament_id = $1
		ORDER BY pick_order ASC`

	rows, err := r.db.QueryContext(ctx, query, tournamentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	picks := make([]models.DraftPick, 0)
	for rows.Next() {
		var p models.DraftPick
		if scanErr := rows.Scan(
			&p.ID, &p.TournamentID, &p.PlayerName, &p.DraftedBy, &p.PickOrder, &p.Round, &p.CreatedAt,
		); scanErr != nil {
			return nil, scanErr
		}
		picks = append(picks, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return picks, nil
}

func (r *postgresDraftPickRepository) DeleteByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error {
	executor := r.getExecutor(exec)
	_, err := executor.ExecContext(ctx, `DELETE FROM draft_picks WHERE tournament_id = $1`, tournamentID)
	return err
}

func (r *postgresDraftPickRepository) handlePickError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return ErrDraftPickOrderConflict
		case "23503":
			return ErrDraftPickInvalidTournament
		}
	}
	return err
}
