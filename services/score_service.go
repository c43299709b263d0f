package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/fairwayleague/draft-system/repositories"
	"golang.org/x/sync/errgroup"
)

const (
	simulatedPar      = 72
	simulatedMinScore = 68
	simulatedMaxScore = 76
	rankedPositions   = 10
)

type UpdateScoreInput struct {
	Round1Score *int    `json:"round1_score"`
	Round2Score *int    `json:"round2_score"`
	Round3Score *int    `json:"round3_score"`
	Round4Score *int    `json:"round4_score"`
	ToPar       int     `json:"to_par"`
	Position    *string `json:"position"`
}

type ScoreService interface {
	// UpdateScore overwrites a player's four round slots and recomputes the
	// total as the sum of non-null rounds. ToPar and position are stored
	// verbatim.
	UpdateScore(ctx context.Context, playerID int, input UpdateScoreInput) error
	// SimulateScores assigns random round-1 scores to every player in the
	// tournament. A demo utility gated by configuration, not a scoring feed.
	SimulateScores(ctx context.Context, tournamentID int) error
}

type scoreService struct {
	playerRepo repositories.PlayerRepository
	live       LiveBroadcaster
	logger     *slog.Logger

	simulationEnabled bool
	randIntn          func(n int) int
}

func NewScoreService(
	playerRepo repositories.PlayerRepository,
	live LiveBroadcaster,
	logger *slog.Logger,
	simulationEnabled bool,
) ScoreService {
	return &scoreService{
		playerRepo:        playerRepo,
		live:              live,
		logger:            logger,
		simulationEnabled: simulationEnabled,
		randIntn:          rand.Intn,
	}
}

func (s *scoreService) UpdateScore(ctx context.Context, playerID int, input UpdateScoreInput) error {
	if playerID <= 0 {
		return fmt.Errorf("%w: player id must be positive", ErrValidationFailed)
	}

	rounds := [4]*int{input.Round1Score, input.Round2Score, input.Round3Score, input.Round4Score}
	total := 0
	for _, r := range rounds {
		if r != nil {
			total += *r
		}
	}

	err := s.playerRepo.UpdateScore(ctx, playerID, rounds, total, input.ToPar, input.Position)
	if err != nil {
		if errors.Is(err, repositories.ErrPlayerNotFound) {
			return ErrPlayerNotFound
		}
		return fmt.Errorf("failed to update score for player %d: %w", playerID, err)
	}
	return nil
}

type simulatedScore struct {
	playerID int
	round1   int
	toPar    int
	position string
}

func (s *scoreService) SimulateScores(ctx context.Context, tournamentID int) error {
	if !s.simulationEnabled {
		return ErrSimulationDisabled
	}

	players, err := s.playerRepo.ListByTournament(ctx, tournamentID)
	if err != nil {
		return fmt.Errorf("failed to list players for tournament %d: %w", tournamentID, err)
	}

	// Scores are rolled up front so the random source is only touched from
	// one goroutine; the writes then fan out.
	scores := make([]simulatedScore, 0, len(players))
	for i, p := range players {
		round1 := s.randIntn(simulatedMaxScore-simulatedMinScore+1) + simulatedMinScore
		position := fmt.Sprintf("T%d", i+1)
		if i >= rankedPositions {
			position = fmt.Sprintf("T%d", s.randIntn(20)+rankedPositions+1)
		}
		scores = append(scores, simulatedScore{
			playerID: p.ID,
			round1:   round1,
			toPar:    round1 - simulatedPar,
			position: position,
		})
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(8)
	for _, sc := range scores {
		sc := sc
		g.Go(func() error {
			return s.playerRepo.UpdateSimulatedScore(gCtx, sc.playerID, sc.round1, sc.toPar, sc.round1, sc.position)
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("failed to simulate scores for tournament %d: %w", tournamentID, err)
	}

	if s.logger != nil {
		s.logger.Info("simulated scores",
			slog.Int("tournament_id", tournamentID),
			slog.Int("players", len(scores)),
		)
	}
	if s.live != nil {
		s.live.BroadcastTournamentEvent(tournamentID, EventScoresSimulated, nil)
	}
	return nil
}
