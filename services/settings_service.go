package services

import (
	"context"

	"github.com/fairwayleague/draft-system/models"
	"github.com/fairwayleague/draft-system/repositories"
)

type SettingsService interface {
	// GetOrCreate returns the tournament's league settings, creating the
	// default row (10 players per team, round 1, draft incomplete, 4 drafters)
	// on first access.
	GetOrCreate(ctx context.Context, tournamentID int) (*models.LeagueSettings, error)
}

type settingsService struct {
	settingsRepo repositories.SettingsRepository
}

func NewSettingsService(settingsRepo repositories.SettingsRepository) SettingsService {
	return &settingsService{settingsRepo: settingsRepo}
}

func (s *settingsService) GetOrCreate(ctx context.Context, tournamentID int) (*models.LeagueSettings, error) {
	return getOrCreateSettings(ctx, s.settingsRepo, nil, tournamentID)
}
