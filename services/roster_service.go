package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/fairwayleague/draft-system/models"
	"github.com/fairwayleague/draft-system/repositories"
)

type RosterService interface {
	// TeamRosters maps each drafter to the players they own, every roster
	// ordered by world rank ascending (not draft order). Derived from current
	// player state on every call.
	TeamRosters(ctx context.Context, tournamentID int) (map[string][]models.Player, error)
}

type rosterService struct {
	playerRepo repositories.PlayerRepository
}

func NewRosterService(playerRepo repositories.PlayerRepository) RosterService {
	return &rosterService{playerRepo: playerRepo}
}

func (s *rosterService) TeamRosters(ctx context.Context, tournamentID int) (map[string][]models.Player, error) {
	drafted, err := s.playerRepo.ListDrafted(ctx, tournamentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list drafted players: %w", err)
	}

	teams := make(map[string][]models.Player)
	for _, p := range drafted {
		if p.DraftedBy == nil {
			continue
		}
		teams[*p.DraftedBy] = append(teams[*p.DraftedBy], p)
	}
	for drafter := range teams {
		roster := teams[drafter]
		sort.Slice(roster, func(i, j int) bool {
			return roster[i].WorldRank < roster[j].WorldRank
		})
	}
	return teams, nil
}
