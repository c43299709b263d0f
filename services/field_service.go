package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fairwayleague/draft-system/models"
	"github.com/fairwayleague/draft-system/repositories"
	"github.com/fairwayleague/draft-system/seed"
)

type FieldService interface {
	// EnsureField returns the tournament's player field ordered by world rank,
	// seeding it from the injected field data when the tournament has no
	// players yet. Repeated calls never seed twice.
	EnsureField(ctx context.Context, tournamentID int) ([]models.Player, error)
	AvailablePlayers(ctx context.Context, tournamentID int) ([]models.Player, error)
}

type fieldService struct {
	txRunner   repositories.TxRunner
	playerRepo repositories.PlayerRepository
	fieldData  []seed.FieldEntry
	logger     *slog.Logger
}

func NewFieldService(
	txRunner repositories.TxRunner,
	playerRepo repositories.PlayerRepository,
	fieldData []seed.FieldEntry,
	logger *slog.Logger,
) FieldService {
	return &fieldService{
		txRunner:   txRunner,
		playerRepo: playerRepo,
		fieldData:  fieldData,
		logger:     logger,
	}
}

func (s *fieldService) EnsureField(ctx context.Context, tournamentID int) ([]models.Player, error) {
	err := s.txRunner.RunInTx(ctx, func(exec repositories.SQLExecutor) error {
		count, err := s.playerRepo.CountByTournament(ctx, exec, tournamentID)
		if err != nil {
			return fmt.Errorf("failed to count players: %w", err)
		}
		if count > 0 {
			return nil
		}

		players := make([]*models.Player, 0, len(s.fieldData))
		for _, entry := range s.fieldData {
			players = append(players, &models.Player{
				Name:         entry.Name,
				TournamentID: tournamentID,
				WorldRank:    entry.WorldRank,
				Country:      entry.Country,
			})
		}
		if err := s.playerRepo.CreateBatch(ctx, exec, players); err != nil {
			if errors.Is(err, repositories.ErrPlayerInvalidTournament) {
				return ErrTournamentNotFound
			}
			return fmt.Errorf("failed to seed tournament field: %w", err)
		}

		if s.logger != nil {
			s.logger.Info("seeded tournament field",
				slog.Int("tournament_id", tournamentID),
				slog.Int("players", len(players)),
			)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	players, err := s.playerRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tournament field: %w", err)
	}
	return players, nil
}

func (s *fieldService) AvailablePlayers(ctx context.Context, tournamentID int) ([]models.Player, error) {
	players, err := s.playerRepo.ListAvailable(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list available players: %w", err)
	}
	return players, nil
}
