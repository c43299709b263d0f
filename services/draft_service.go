package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/fairwayleague/draft-system/models"
	"github.com/fairwayleague/draft-system/repositories"
)

// NextPickOrder returns the 1-based order of the pick following existingPicks.
// The sequence is contiguous because picks are never retracted individually.
func NextPickOrder(existingPicks int) int {
	return existingPicks + 1
}

// RoundForPick returns the round a pick belongs to: drafters pick in a fixed
// rotation, so a new round starts every numDrafters picks.
func RoundForPick(pickOrder, numDrafters int) int {
	if numDrafters <= 0 {
		numDrafters = models.DefaultNumDrafters
	}
	return (pickOrder + numDrafters - 1) / numDrafters
}

type DraftPlayerInput struct {
	TournamentID int    `json:"tournament_id"`
	PlayerID     int    `json:"player_id"`
	DraftedBy    string `json:"drafted_by"`
}

type DraftService interface {
	DraftPlayer(ctx context.Context, input DraftPlayerInput) (*models.DraftPick, error)
	ListPicks(ctx context.Context, tournamentID int) ([]models.DraftPick, error)
}

type draftService struct {
	txRunner       repositories.TxRunner
	tournamentRepo repositories.TournamentRepository
	playerRepo     repositories.PlayerRepository
	pickRepo       repositories.DraftPickRepository
	settingsRepo   repositories.SettingsRepository
	live           LiveBroadcaster
	logger         *slog.Logger
}

func NewDraftService(
	txRunner repositories.TxRunner,
	tournamentRepo repositories.TournamentRepository,
	playerRepo repositories.PlayerRepository,
	pickRepo repositories.DraftPickRepository,
	settingsRepo repositories.SettingsRepository,
	live LiveBroadcaster,
	logger *slog.Logger,
) DraftService {
	return &draftService{
		txRunner:       txRunner,
		tournamentRepo: tournamentRepo,
		playerRepo:     playerRepo,
		pickRepo:       pickRepo,
		settingsRepo:   settingsRepo,
		live:           live,
		logger:         logger,
	}
}

// DraftPlayer claims a player for a drafter and appends the pick to the
// ledger. The whole mutation runs in one transaction: the tournament row lock
// serializes pick-order assignment per tournament, and the conditional
// drafted_by update decides races on the player itself.
func (s *draftService) DraftPlayer(ctx context.Context, input DraftPlayerInput) (*models.DraftPick, error) {
	if input.TournamentID <= 0 {
		return nil, fmt.Errorf("%w: tournament_id must be positive", ErrValidationFailed)
	}
	if input.PlayerID <= 0 {
		return nil, fmt.Errorf("%w: player_id must be positive", ErrValidationFailed)
	}
	if input.DraftedBy == "" {
		return nil, fmt.Errorf("%w: drafted_by is required", ErrValidationFailed)
	}

	var pick *models.DraftPick
	err := s.txRunner.RunInTx(ctx, func(exec repositories.SQLExecutor) error {
		if err := s.tournamentRepo.LockForUpdate(ctx, exec, input.TournamentID); err != nil {
			if errors.Is(err, repositories.ErrTournamentNotFound) {
				return ErrTournamentNotFound
			}
			return fmt.Errorf("failed to lock tournament %d: %w", input.TournamentID, err)
		}

		settings, err := getOrCreateSettings(ctx, s.settingsRepo, exec, input.TournamentID)
		if err != nil {
			return err
		}

		player, err := s.playerRepo.GetByID(ctx, exec, input.PlayerID)
		if err != nil {
			if errors.Is(err, repositories.ErrPlayerNotFound) {
				return ErrPlayerNotFound
			}
			return fmt.Errorf("failed to fetch player %d: %w", input.PlayerID, err)
		}
		if player.TournamentID != input.TournamentID {
			return ErrPlayerNotFound
		}

		if err := s.playerRepo.ClaimForDraft(ctx, exec, input.PlayerID, input.DraftedBy); err != nil {
			if errors.Is(err, repositories.ErrPlayerDraftConflict) {
				return ErrPlayerAlreadyDrafted
			}
			return fmt.Errorf("failed to claim player %d: %w", input.PlayerID, err)
		}

		count, err := s.pickRepo.CountByTournament(ctx, exec, input.TournamentID)
		if err != nil {
			return err
		}

		order := NextPickOrder(count)
		round := RoundForPick(order, settings.NumDrafters)

		pick = &models.DraftPick{
			TournamentID: input.TournamentID,
			PlayerName:   player.Name,
			DraftedBy:    input.DraftedBy,
			PickOrder:    order,
			Round:        round,
		}
		if err := s.pickRepo.Create(ctx, exec, pick); err != nil {
			return fmt.Errorf("failed to record draft pick: %w", err)
		}

		complete := order >= settings.PlayersPerTeam*settings.NumDrafters
		if err := s.settingsRepo.UpdateDraftProgress(ctx, exec, input.TournamentID, round, complete); err != nil {
			return fmt.Errorf("failed to update draft progress: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if s.logger != nil {
		s.logger.Info("player drafted",
			slog.Int("tournament_id", pick.TournamentID),
			slog.String("player", pick.PlayerName),
			slog.String("drafted_by", pick.DraftedBy),
			slog.Int("pick_order", pick.PickOrder),
			slog.Int("round", pick.Round),
		)
	}
	if s.live != nil {
		s.live.BroadcastTournamentEvent(pick.TournamentID, EventDraftPickMade, pick)
	}
	return pick, nil
}

func (s *draftService) ListPicks(ctx context.Context, tournamentID int) ([]models.DraftPick, error) {
	picks, err := s.pickRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list draft picks for tournament %d: %w", tournamentID, err)
	}
	return picks, nil
}
