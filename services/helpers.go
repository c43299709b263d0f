package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/fairwayleague/draft-system/models"
	"github.com/fairwayleague/draft-system/repositories"
)

// Event types pushed to websocket clients after successful mutations.
const (
	EventDraftPickMade   = "DRAFT_PICK_MADE"
	EventScoresSimulated = "SCORES_SIMULATED"
	EventTournamentReset = "TOURNAMENT_RESET"
)

// LiveBroadcaster pushes tournament-scoped events to connected clients.
// Broadcasts are fire-and-forget: a failed or absent listener never fails
// the request that triggered the event.
type LiveBroadcaster interface {
	BroadcastTournamentEvent(tournamentID int, eventType string, payload interface{})
}

// getOrCreateSettings fetches the league settings for a tournament, creating
// the default row on first access. A unique-constraint conflict means another
// request created the row concurrently, in which case it is re-read.
func getOrCreateSettings(ctx context.Context, repo repositories.SettingsRepository, exec repositories.SQLExecutor, tournamentID int) (*models.LeagueSettings, error) {
	settings, err := repo.GetByTournament(ctx, exec, tournamentID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, repositories.ErrSettingsNotFound) {
		return nil, fmt.Errorf("failed to fetch league settings: %w", err)
	}

	settings = models.DefaultLeagueSettings(tournamentID)
	if createErr := repo.Create(ctx, exec, settings); createErr != nil {
		switch {
		case errors.Is(createErr, repositories.ErrSettingsConflict):
			return repo.GetByTournament(ctx, exec, tournamentID)
		case errors.Is(createErr, repositories.ErrSettingsInvalidTournament):
			return nil, ErrTournamentNotFound
		default:
			return nil, fmt.Errorf("failed to create league settings: %w", createErr)
		}
	}
	return settings, nil
}
