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
	ErrPlayerNotFound          = errors.New("player not found")
	ErrPlayerDraftConflict     = errors.New("player already drafted")
	ErrPlayerInvalidTournament = errors.New("invalid tournament reference")
)

const playerColumns = `id, name, tournament_id, drafted_by, total_score, to_par, position,
		round1_score, round2_score, round3_score, round4_score, world_rank, country`

type PlayerRepository interface {
	CreateBatch(ctx context.Context, exec SQLExecutor, players []*models.Player) error
	GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Player, error)
	CountByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) (int, error)
	ListByTournament(ctx context.Context, tournamentID int) ([]models.Player, error)
	ListAvailable(ctx context.Context, tournamentID int) ([]models.Player, error)
	ListDrafted(ctx context.Context, tournamentID int) ([]models.Player, error)
	// ClaimForDraft sets drafted_by only if it is currently NULL and reports
	// ErrPlayerDraftConflict otherwise. This conditional update is the single
	// race guard for two drafters grabbing the same player.
	ClaimForDraft(ctx context.Context, exec SQLExecutor, playerID int, draftedBy string) error
	UpdateScore(ctx context.Context, playerID int, rounds [4]*int, totalScore, toPar int, position *string) error
	UpdateSimulatedScore(ctx context.Context, playerID, round1, toPar, totalScore int, position string) error
	ResetByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error
}

type postgresPlayerRepository struct {
	db *sql.DB
}

func NewPostgresPlayerRepository(db *sql.DB) PlayerRepository {
	return &postgresPlayerRepository{db: db}
}

func (r *postgresPlayerRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresPlayerRepository) CreateBatch(ctx context.Context, exec SQLExecutor, players []*models.Player) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO players (name, tournament_id, total_score, to_par, world_rank, country)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	for _, p := range players {
		err := executor.QueryRowContext(ctx, query,
			p.Name, p.TournamentID, p.TotalScore, p.ToPar, p.WorldRank, p.Country,
		).Scan(&p.ID)
		if err != nil {
			return r.handlePlayerError(fmt.Errorf("failed to insert player %q: %w", p.Name, err))
		}
	}
	return nil
}

func (r *postgresPlayerRepository) GetByID(ctx context.Context, exec SQLExecutor, id int) (*models.Player, error) {
	executor := r.getExecutor(exec)
	query := `SELECT ` + playerColumns + ` FROM players WHERE id = $1`

	p := &models.Player{}
	err := executor.QueryRowContext(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.TournamentID, &p.DraftedBy, &p.TotalScore, &p.ToPar, &p.Position,
		&p.Round1Score, &p.Round2Score, &p.Round3Score, &p.Round4Score, &p.WorldRank, &p.Country,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return p, nil
}

func (r *postgresPlayerRepository) CountByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) (int, error) {
	executor := r.getExecutor(exec)

	var count int
	err := executor.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM players WHERE tournament_id = $1`, tournamentID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

func (r *postgresPlayerRepository) ListByTournament(ctx context.Context, tournamentID int) ([]models.Player, error) {
	query := `SELECT ` + playerColumns + `
		FROM players
		WHERE tournament_id = $1
		ORDER BY world_rank ASC`
	return r.queryPlayers(ctx, query, tournamentID)
}

func (r *postgresPlayerRepository) ListAvailable(ctx context.Context, tournamentID int) ([]models.Player, error) {
	query := `SELECT ` + playerColumns + `
		FROM players
		WHERE tournament_id = $1 AND drafted_by IS NULL
		ORDER BY world_rank ASC`
	return r.queryPlayers(ctx, query, tournamentID)
}

func (r *postgresPlayerRepository) ListDrafted(ctx context.Context, tournamentID int) ([]models.Player, error) {
	query := `SELECT ` + playerColumns + `
		FROM players
		WHERE tournament_id = $1 AND drafted_by IS NOT NULL
		ORDER BY drafted_by ASC, world_rank ASC`
	return r.queryPlayers(ctx, query, tournamentID)
}

func (r *postgresPlayerRepository) queryPlayers(ctx context.Context, query string, args ...interface{}) ([]models.Player, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	players := make([]models.Player, 0)
	for rows.Next() {
		var p models.Player
		if scanErr := rows.Scan(
			&p.ID, &p.Name, &p.TournamentID, &p.DraftedBy, &p.TotalScore, &p.ToPar, &p.Position,
			&p.Round1Score, &p.Round2Score, &p.Round3Score, &p.Round4Score, &p.WorldRank, &p.Country,
		); scanErr != nil {
			return nil, scanErr
		}
		players = append(players, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return players, nil
}

func (r *postgresPlayerRepository) ClaimForDraft(ctx context.Context, exec SQLExecutor, playerID int, draftedBy string) error {
	executor := r.getExecutor(exec)
	query := `UPDATE players SET drafted_by = $1 WHERE id = $2 AND drafted_by IS NULL`

	result, err := executor.ExecContext(ctx, query, draftedBy, playerID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerDraftConflict)
}

func (r *postgresPlayerRepository) UpdateScore(ctx context.Context, playerID int, rounds [4]*int, totalScore, toPar int, position *string) error {
	query := `
		UPDATE players SET
			round1_score = $1,
			round2_score = $2,
			round3_score = $3,
			round4_score = $4,
			total_score = $5,
			to_par = $6,
			position = $7
		WHERE id = $8`

	result, err := r.db.ExecContext(ctx, query,
		rounds[0], rounds[1], rounds[2], rounds[3], totalScore, toPar, position, playerID,
	)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

func (r *postgresPlayerRepository) UpdateSimulatedScore(ctx context.Context, playerID, round1, toPar, totalScore int, position string) error {
	query := `
		UPDATE players SET
			round1_score = $1,
			to_par = $2,
			total_score = $3,
			position = $4
		WHERE id = $5`

	result, err := r.db.ExecContext(ctx, query, round1, toPar, totalScore, position, playerID)
	if err != nil {
		return err
	}
	return checkAffectedRows(result, ErrPlayerNotFound)
}

// ResetByTournament restores every player of the tournament to its pre-draft,
// pre-scoring state. Zero affected rows is fine: an unseeded field resets to itself.
func (r *postgresPlayerRepository) ResetByTournament(ctx context.Context, exec SQLExecutor, tournamentID int) error {
	executor := r.getExecutor(exec)
	query := `
		UPDATE players SET
			drafted_by = NULL,
			total_score = 0,
			to_par = 0,
			position = NULL,
			round1_score = NULL,
			round2_score = NULL,
			round3_score = NULL,
			round4_score = NULL
		WHERE tournament_id = $1`

	_, err := executor.ExecContext(ctx, query, tournamentID)
	return err
}

func (r *postgresPlayerRepository) handlePlayerError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23503" {
		return ErrPlayerInvalidTournament
	}
	return err
}
