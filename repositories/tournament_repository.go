package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fairwayleague/draft-system/models"
)

var ErrTournamentNotFound = errors.New("tournament not found")

type TournamentRepository interface {
	Create(ctx context.Context, exec SQLExecutor, tournament *models.Tournament) error
	GetByID(ctx context.Context, id int) (*models.Tournament, error)
	GetCurrentActive(ctx context.Context) (*models.Tournament, error)
	// LockForUpdate takes a row lock on the tournament, serializing draft
	// mutations per tournament for the duration of the transaction.
	LockForUpdate(ctx context.Context, exec SQLExecutor, id int) error
}

type postgresTournamentRepository struct {
	db *sql.DB
}

func NewPostgresTournamentRepository(db *sql.DB) TournamentRepository {
	return &postgresTournamentRepository{db: db}
}

func (r *postgresTournamentRepository) getExecutor(exec SQLExecutor) SQLExecutor {
	if exec != nil {
		return exec
	}
	return r.db
}

func (r *postgresTournamentRepository) Create(ctx context.Context, exec SQLExecutor, t *models.Tournament) error {
	executor := r.getExecutor(exec)
	query := `
		INSERT INTO tournaments (name, year, status, start_date, end_date, course, purse)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at`

	return executor.QueryRowContext(ctx, query,
		t.Name, t.Year, t.Status, t.StartDate, t.EndDate, t.Course, t.Purse,
	).Scan(&t.ID, &t.CreatedAt)
}

func (r *postgresTournamentRepository) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	query := `
		SELECT id, name, year, status, start_date, end_date, course, purse, created_at
		FROM tournaments
		WHERE id = $1`

	t := &models.Tournament{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Name, &t.Year, &t.Status, &t.StartDate, &t.EndDate, &t.Course, &t.Purse, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return t, nil
}

// GetCurrentActive returns the most recently created active tournament.
func (r *postgresTournamentRepository) GetCurrentActive(ctx context.Context) (*models.Tournament, error) {
	query := `
		SELECT id, name, year, status, start_date, end_date, course, purse, created_at
		FROM tournaments
		WHERE status = $1
		ORDER BY created_at DESC
		LIMIT 1`

	t := &models.Tournament{}
	err := r.db.QueryRowContext(ctx, query, models.StatusActive).Scan(
		&t.ID, &t.Name, &t.Year, &t.Status, &t.StartDate, &t.EndDate, &t.Course, &t.Purse, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTournamentNotFound
		}
		return nil, err
	}
	return t, nil
}

func (r *postgresTournamentRepository) LockForUpdate(ctx context.Context, exec SQLExecutor, id int) error {
	executor := r.getExecutor(exec)
	query := `SELECT id FROM tournaments WHERE id = $1 FOR UPDATE`

	var lockedID int
	err := executor.QueryRowContext(ctx, query, id).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTournamentNotFound
		}
		return err
	}
	return nil
}
