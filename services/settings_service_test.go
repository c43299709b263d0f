package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fairwayleague/draft-system/models"
	"github.com/fairwayleague/draft-system/repositories"
)

func TestGetOrCreateReturnsExisting(t *testing.T) {
	creates := 0
	existing := &models.LeagueSettings{ID: 3, TournamentID: 1, PlayersPerTeam: 8, NumDrafters: 6, CurrentRound: 2}
	settingsRepo := &fakeSettingsRepo{
		getFunc: func(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) (*models.LeagueSettings, error) {
			return existing, nil
		},
		createFunc: func(ctx context.Context, exec repositories.SQLExecutor, s *models.LeagueSettings) error {
			creates++
			return nil
		},
	}

	settings, err := NewSettingsService(settingsRepo).GetOrCreate(context.Background(), 1)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if settings.NumDrafters != 6 || settings.CurrentRound != 2 {
		t.Fatalf("expected existing settings back, got %+v", settings)
	}
	if creates != 0 {
		t.Fatalf("existing settings must not trigger creation, got %d creates", creates)
	}
}

func TestGetOrCreateCreatesDefaults(t *testing.T) {
	var created *models.LeagueSettings
	settingsRepo := &fakeSettingsRepo{
		getFunc: func(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) (*models.LeagueSettings, error) {
			return nil, repositories.ErrSettingsNotFound
		},
		createFunc: func(ctx context.Context, exec repositories.SQLExecutor, s *models.LeagueSettings) error {
			s.ID = 1
			created = s
			return nil
		},
	}

	settings, err := NewSettingsService(settingsRepo).GetOrCreate(context.Background(), 5)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if created == nil {
		t.Fatal("expected settings row to be created")
	}
	if settings.TournamentID != 5 {
		t.Fatalf("expected settings for tournament 5, got %d", settings.TournamentID)
	}
	if settings.PlayersPerTeam != models.DefaultPlayersPerTeam ||
		settings.NumDrafters != models.DefaultNumDrafters ||
		settings.CurrentRound != 1 || settings.DraftComplete {
		t.Fatalf("unexpected default settings %+v", settings)
	}
}

func TestGetOrCreateRereadsOnConflict(t *testing.T) {
	// A concurrent request won the insert race: Create reports a conflict and
	// the row it created must be returned.
	winner := &models.LeagueSettings{ID: 9, TournamentID: 1, PlayersPerTeam: 10, NumDrafters: 4, CurrentRound: 1}
	gets := 0
	settingsRepo := &fakeSettingsRepo{
		getFunc: func(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) (*models.LeagueSettings, error) {
			gets++
			if gets == 1 {
				return nil, repositories.ErrSettingsNotFound
			}
			return winner, nil
		},
		createFunc: func(ctx context.Context, exec repositories.SQLExecutor, s *models.LeagueSettings) error {
			return repositories.ErrSettingsConflict
		},
	}

	settings, err := NewSettingsService(settingsRepo).GetOrCreate(context.Background(), 1)
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if settings.ID != 9 {
		t.Fatalf("expected the concurrently created row, got %+v", settings)
	}
	if gets != 2 {
		t.Fatalf("expected a re-read after the conflict, got %d reads", gets)
	}
}

func TestGetOrCreateUnknownTournament(t *testing.T) {
	settingsRepo := &fakeSettingsRepo{
		getFunc: func(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) (*models.LeagueSettings, error) {
			return nil, repositories.ErrSettingsNotFound
		},
		createFunc: func(ctx context.Context, exec repositories.SQLExecutor, s *models.LeagueSettings) error {
			return repositories.ErrSettingsInvalidTournament
		},
	}

	if _, err := NewSettingsService(settingsRepo).GetOrCreate(context.Background(), 404); !errors.Is(err, ErrTournamentNotFound) {
		t.Fatalf("expected ErrTournamentNotFound, got %v", err)
	}
}
