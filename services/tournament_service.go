package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/fairwayleague/draft-system/models"
	"github.com/fairwayleague/draft-system/repositories"
)

// defaultTournament is what the league plays when no active tournament exists.
func defaultTournament() *models.Tournament {
	return &models.Tournament{
		Name:      "The Memorial Tournament presented by Workday",
		Year:      time.Now().Year(),
		Status:    models.StatusActive,
		StartDate: "2025-06-05",
		EndDate:   "2025-06-08",
		Course:    "Muirfield Village Golf Club",
		Purse:     "$20,000,000",
	}
}

type TournamentService interface {
	// Current returns the active tournament and its settings, lazily creating
	// both when no active tournament exists.
	Current(ctx context.Context) (*models.Tournament, *models.LeagueSettings, error)
	// Reset wipes the tournament's draft ledger, player draft/score state and
	// settings back to their initial values, all-or-nothing.
	Reset(ctx context.Context, tournamentID int) error
}

type tournamentService struct {
	txRunner       repositories.TxRunner
	tournamentRepo repositories.TournamentRepository
	playerRepo     repositories.PlayerRepository
	pickRepo       repositories.DraftPickRepository
	settingsRepo   repositories.SettingsRepository
	live           LiveBroadcaster
	logger         *slog.Logger
}

func NewTournamentService(
	txRunner repositories.TxRunner,
	tournamentRepo repositories.TournamentRepository,
	playerRepo repositories.PlayerRepository,
	pickRepo repositories.DraftPickRepository,
	settingsRepo repositories.SettingsRepository,
	live LiveBroadcaster,
	logger *slog.Logger,
) TournamentService {
	return &tournamentService{
		txRunner:       txRunner,
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
		pickRepo:       pickRepo,
		settingsRepo:   settingsRepo,
		live:           live,
		logger:         logger,
	}
}

func (s *tournamentService) Current(ctx context.Context) (*models.Tournament, *models.LeagueSettings, error) {
	tournament, err := s.tournamentRepo.GetCurrentActive(ctx)
	if err == nil {
		settings, settingsErr := getOrCreateSettings(ctx, s.settingsRepo, nil, tournament.ID)
		if settingsErr != nil {
			return nil, nil, settingsErr
		}
		return tournament, settings, nil
	}
	if !errors.Is(err, repositories.ErrTournamentNotFound) {
		return nil, nil, fmt.Errorf("failed to fetch current tournament: %w", err)
	}

	// No active tournament yet: create it together with its settings row.
	tournament = defaultTournament()
	settings := models.DefaultLeagueSettings(0)
	err = s.txRunner.RunInTx(ctx, func(exec repositories.SQLExecutor) error {
		if createErr := s.tournamentRepo.Create(ctx, exec, tournament); createErr != nil {
			return fmt.Errorf("failed to create tournament: %w", createErr)
		}
		settings.TournamentID = tournament.ID
		if createErr := s.settingsRepo.Create(ctx, exec, settings); createErr != nil {
			return fmt.Errorf("failed to create league settings: %w", createErr)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	if s.logger != nil {
		s.logger.Info("created current tournament",
			slog.Int("tournament_id", tournament.ID),
			slog.String("name", tournament.Name),
		)
	}
	return tournament, settings, nil
}

func (s *tournamentService) Reset(ctx context.Context, tournamentID int) error {
	if _, err := s.tournamentRepo.GetByID(ctx, tournamentID); err != nil {
		if errors.Is(err, repositories.ErrTournamentNotFound) {
			return ErrTournamentNotFound
		}
		return fmt.Errorf("failed to fetch tournament %d: %w", tournamentID, err)
	}

	err := s.txRunner.RunInTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.pickRepo.DeleteByTournament(ctx, exec, tournamentID); err != nil {
			return fmt.Errorf("failed to delete draft picks: %w", err)
		}
		if err := s.playerRepo.ResetByTournament(ctx, exec, tournamentID); err != nil {
			return fmt.Errorf("failed to reset players: %w", err)
		}
		if err := s.settingsRepo.Reset(ctx, exec, tournamentID); err != nil {
			return fmt.Errorf("failed to reset league settings: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	if s.logger != nil {
		s.logger.Info("tournament reset", slog.Int("tournament_id", tournamentID))
	}
	if s.live != nil {
		s.live.BroadcastTournamentEvent(tournamentID, EventTournamentReset, nil)
	}
	return nil
}
