package services

import (
	"context"
	"sync"

	"github.com/fairwayleague/draft-system/models"
	"github.com/fairwayleague/draft-system/repositories"
)

// fakeTxRunner executes the transactional function directly, with no real
// transaction underneath. Errors injected via err short-circuit the call.
type fakeTxRunner struct {
	calls int
	err   error
}

func (f *fakeTxRunner) RunInTx(ctx context.Context, fn func(exec repositories.SQLExecutor) error) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	return fn(nil)
}

type fakeTournamentRepo struct {
	createFunc  func(ctx context.Context, exec repositories.SQLExecutor, t *models.Tournament) error
	getByIDFunc func(ctx context.Context, id int) (*models.Tournament, error)
	currentFunc func(ctx context.Context) (*models.Tournament, error)
	lockFunc    func(ctx context.Context, exec repositories.SQLExecutor, id int) error
}

func (f *fakeTournamentRepo) Create(ctx context.Context, exec repositories.SQLExecutor, t *models.Tournament) error {
	if f.createFunc != nil {
		return f.createFunc(ctx, exec, t)
	}
	t.ID = 1
	return nil
}

func (f *fakeTournamentRepo) GetByID(ctx context.Context, id int) (*models.Tournament, error) {
	if f.getByIDFunc != nil {
		return f.getByIDFunc(ctx, id)
	}
	return nil, repositories.ErrTournamentNotFound
}

func (f *fakeTournamentRepo) GetCurrentActive(ctx context.Context) (*models.Tournament, error) {
	if f.currentFunc != nil {
		return f.currentFunc(ctx)
	}
	return nil, repositories.ErrTournamentNotFound
}

func (f *fakeTournamentRepo) LockForUpdate(ctx context.Context, exec repositories.SQLExecutor, id int) error {
	if f.lockFunc != nil {
		return f.lockFunc(ctx, exec, id)
	}
	return repositories.ErrTournamentNotFound
}

type fakePlayerRepo struct {
	createBatchFunc   func(ctx context.Context, exec repositories.SQLExecutor, players []*models.Player) error
	getByIDFunc       func(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Player, error)
	countFunc         func(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) (int, error)
	listFunc          func(ctx context.Context, tournamentID int) ([]models.Player, error)
	listAvailableFunc func(ctx context.Context, tournamentID int) ([]models.Player, error)
	listDraftedFunc   func(ctx context.Context, tournamentID int) ([]models.Player, error)
	claimFunc         func(ctx context.Context, exec repositories.SQLExecutor, playerID int, draftedBy string) error
	updateScoreFunc   func(ctx context.Context, playerID int, rounds [4]*int, totalScore, toPar int, position *string) error
	simulateFunc      func(ctx context.Context, playerID, round1, toPar, totalScore int, position string) error
	resetFunc         func(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) error
}

func (f *fakePlayerRepo) CreateBatch(ctx context.Context, exec repositories.SQLExecutor, players []*models.Player) error {
	if f.createBatchFunc != nil {
		return f.createBatchFunc(ctx, exec, players)
	}
	return nil
}

func (f *fakePlayerRepo) GetByID(ctx context.Context, exec repositories.SQLExecutor, id int) (*models.Player, error) {
	if f.getByIDFunc != nil {
		return f.getByIDFunc(ctx, exec, id)
	}
	return nil, repositories.ErrPlayerNotFound
}

func (f *fakePlayerRepo) CountByTournament(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) (int, error) {
	if f.countFunc != nil {
		return f.countFunc(ctx, exec, tournamentID)
	}
	return 0, nil
}

func (f *fakePlayerRepo) ListByTournament(ctx context.Context, tournamentID int) ([]models.Player, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, tournamentID)
	}
	return nil, nil
}

func (f *fakePlayerRepo) ListAvailable(ctx context.Context, tournamentID int) ([]models.Player, error) {
	if f.listAvailableFunc != nil {
		return f.listAvailableFunc(ctx, tournamentID)
	}
	return nil, nil
}

func (f *fakePlayerRepo) ListDrafted(ctx context.Context, tournamentID int) ([]models.Player, error) {
	if f.listDraftedFunc != nil {
		return f.listDraftedFunc(ctx, tournamentID)
	}
	return nil, nil
}

func (f *fakePlayerRepo) ClaimForDraft(ctx context.Context, exec repositories.SQLExecutor, playerID int, draftedBy string) error {
	if f.claimFunc != nil {
		return f.claimFunc(ctx, exec, playerID, draftedBy)
	}
	return nil
}

func (f *fakePlayerRepo) UpdateScore(ctx context.Context, playerID int, rounds [4]*int, totalScore, toPar int, position *string) error {
	if f.updateScoreFunc != nil {
		return f.updateScoreFunc(ctx, playerID, rounds, totalScore, toPar, position)
	}
	return nil
}

func (f *fakePlayerRepo) UpdateSimulatedScore(ctx context.Context, playerID, round1, toPar, totalScore int, position string) error {
	if f.simulateFunc != nil {
		return f.simulateFunc(ctx, playerID, round1, toPar, totalScore, position)
	}
	return nil
}

func (f *fakePlayerRepo) ResetByTournament(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) error {
	if f.resetFunc != nil {
		return f.resetFunc(ctx, exec, tournamentID)
	}
	return nil
}

type fakePickRepo struct {
	createFunc func(ctx context.Context, exec repositories.SQLExecutor, pick *models.DraftPick) error
	countFunc  func(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) (int, error)
	listFunc   func(ctx context.Context, tournamentID int) ([]models.DraftPick, error)
	deleteFunc func(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) error
}

func (f *fakePickRepo) Create(ctx context.Context, exec repositories.SQLExecutor, pick *models.DraftPick) error {
	if f.createFunc != nil {
		return f.createFunc(ctx, exec, pick)
	}
	pick.ID = pick.PickOrder
	return nil
}

func (f *fakePickRepo) CountByTournament(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) (int, error) {
	if f.countFunc != nil {
		return f.countFunc(ctx, exec, tournamentID)
	}
	return 0, nil
}

func (f *fakePickRepo) ListByTournament(ctx context.Context, tournamentID int) ([]models.DraftPick, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx, tournamentID)
	}
	return nil, nil
}

func (f *fakePickRepo) DeleteByTournament(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) error {
	if f.deleteFunc != nil {
		return f.deleteFunc(ctx, exec, tournamentID)
	}
	return nil
}

type fakeSettingsRepo struct {
	getFunc      func(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) (*models.LeagueSettings, error)
	createFunc   func(ctx context.Context, exec repositories.SQLExecutor, settings *models.LeagueSettings) error
	progressFunc func(ctx context.Context, exec repositories.SQLExecutor, tournamentID, currentRound int, draftComplete bool) error
	resetFunc    func(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) error
}

func (f *fakeSettingsRepo) GetByTournament(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) (*models.LeagueSettings, error) {
	if f.getFunc != nil {
		return f.getFunc(ctx, exec, tournamentID)
	}
	return models.DefaultLeagueSettings(tournamentID), nil
}

func (f *fakeSettingsRepo) Create(ctx context.Context, exec repositories.SQLExecutor, settings *models.LeagueSettings) error {
	if f.createFunc != nil {
		return f.createFunc(ctx, exec, settings)
	}
	settings.ID = 1
	return nil
}

func (f *fakeSettingsRepo) UpdateDraftProgress(ctx context.Context, exec repositories.SQLExecutor, tournamentID, currentRound int, draftComplete bool) error {
	if f.progressFunc != nil {
		return f.progressFunc(ctx, exec, tournamentID, currentRound, draftComplete)
	}
	return nil
}

func (f *fakeSettingsRepo) Reset(ctx context.Context, exec repositories.SQLExecutor, tournamentID int) error {
	if f.resetFunc != nil {
		return f.resetFunc(ctx, exec, tournamentID)
	}
	return nil
}

type broadcastEvent struct {
	tournamentID int
	eventType    string
	payload      interface{}
}

type fakeBroadcaster struct {
	mu     sync.Mutex
	events []broadcastEvent
}

func (f *fakeBroadcaster) BroadcastTournamentEvent(tournamentID int, eventType string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, broadcastEvent{tournamentID, eventType, payload})
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
