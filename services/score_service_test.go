package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/fairwayleague/draft-system/models"
	"github.com/fairwayleague/draft-system/repositories"
)

func TestUpdateScoreTotals(t *testing.T) {
	tests := []struct {
		name      string
		input     UpdateScoreInput
		wantTotal int
	}{
		{
			name:      "two rounds posted",
			input:     UpdateScoreInput{Round1Score: intPtr(70), Round2Score: intPtr(72)},
			wantTotal: 142,
		},
		{
			name:      "all rounds null",
			input:     UpdateScoreInput{},
			wantTotal: 0,
		},
		{
			name: "all four rounds",
			input: UpdateScoreInput{
				Round1Score: intPtr(68), Round2Score: intPtr(70),
				Round3Score: intPtr(72), Round4Score: intPtr(71),
			},
			wantTotal: 281,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotTotal int
			playerRepo := &fakePlayerRepo{
				updateScoreFunc: func(ctx context.Context, playerID int, rounds [4]*int, totalScore, toPar int, position *string) error {
					gotTotal = totalScore
					return nil
				},
			}
			svc := NewScoreService(playerRepo, nil, nil, false)
			if err := svc.UpdateScore(context.Background(), 1, tt.input); err != nil {
				t.Fatalf("update score: %v", err)
			}
			if gotTotal != tt.wantTotal {
				t.Fatalf("expected total %d, got %d", tt.wantTotal, gotTotal)
			}
		})
	}
}

func TestUpdateScorePlayerNotFound(t *testing.T) {
	playerRepo := &fakePlayerRepo{
		updateScoreFunc: func(ctx context.Context, playerID int, rounds [4]*int, totalScore, toPar int, position *string) error {
			return repositories.ErrPlayerNotFound
		},
	}
	svc := NewScoreService(playerRepo, nil, nil, false)
	if err := svc.UpdateScore(context.Background(), 99, UpdateScoreInput{}); !errors.Is(err, ErrPlayerNotFound) {
		t.Fatalf("expected ErrPlayerNotFound, got %v", err)
	}
}

func TestSimulateScoresDisabled(t *testing.T) {
	svc := NewScoreService(&fakePlayerRepo{}, nil, nil, false)
	if err := svc.SimulateScores(context.Background(), 1); !errors.Is(err, ErrSimulationDisabled) {
		t.Fatalf("expected ErrSimulationDisabled, got %v", err)
	}
}

func TestSimulateScores(t *testing.T) {
	const playerCount = 15
	players := make([]models.Player, 0, playerCount)
	for i := 1; i <= playerCount; i++ {
		players = append(players, models.Player{ID: i, Name: fmt.Sprintf("Player %d", i), TournamentID: 1, WorldRank: i})
	}

	type update struct {
		round1, toPar, total int
		position             string
	}
	var mu sync.Mutex
	updates := make(map[int]update)

	playerRepo := &fakePlayerRepo{
		listFunc: func(ctx context.Context, tournamentID int) ([]models.Player, error) {
			return players, nil
		},
		simulateFunc: func(ctx context.Context, playerID, round1, toPar, totalScore int, position string) error {
			mu.Lock()
			defer mu.Unlock()
			updates[playerID] = update{round1, toPar, totalScore, position}
			return nil
		},
	}
	broadcaster := &fakeBroadcaster{}
	svc := NewScoreService(playerRepo, broadcaster, nil, true)

	if err := svc.SimulateScores(context.Background(), 1); err != nil {
		t.Fatalf("simulate scores: %v", err)
	}

	if len(updates) != playerCount {
		t.Fatalf("expected %d updates, got %d", playerCount, len(updates))
	}
	for i := 1; i <= playerCount; i++ {
		u, ok := updates[i]
		if !ok {
			t.Fatalf("player %d got no update", i)
		}
		if u.round1 < 68 || u.round1 > 76 {
			t.Fatalf("player %d: round1 %d outside [68,76]", i, u.round1)
		}
		if u.toPar != u.round1-72 {
			t.Fatalf("player %d: to-par %d does not match round1 %d", i, u.toPar, u.round1)
		}
		if u.total != u.round1 {
			t.Fatalf("player %d: total %d does not match round1 %d", i, u.total, u.round1)
		}
		if i <= 10 {
			if want := fmt.Sprintf("T%d", i); u.position != want {
				t.Fatalf("player %d: expected position %s, got %s", i, want, u.position)
			}
		} else {
			n, err := strconv.Atoi(strings.TrimPrefix(u.position, "T"))
			if err != nil || n < 11 || n > 30 {
				t.Fatalf("player %d: position %s outside T11..T30", i, u.position)
			}
		}
	}

	if len(broadcaster.events) != 1 || broadcaster.events[0].eventType != EventScoresSimulated {
		t.Fatalf("expected one %s event, got %+v", EventScoresSimulated, broadcaster.events)
	}
}
