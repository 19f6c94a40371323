package service

import (
	"github.com/jason-napier/demonling/internal/game"
	"github.com/jason-napier/demonling/internal/logging"
	"github.com/jason-napier/demonling/internal/progress"
)

// Player returns the up-to-date player record. Energy credited by elapsed
// time is persisted so restarts do not lose the accrual anchor.
func (s *Service) Player() (*game.PlayerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, credited, err := s.loadPlayer(s.now())
	if err != nil {
		return nil, err
	}
	if credited > 0 {
		if err := s.repo.SavePlayer(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// QuestOverview returns the full chain listing with the player's standing.
func (s *Service) QuestOverview() ([]progress.ChainOverview, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, _, err := s.loadPlayer(s.now())
	if err != nil {
		return nil, err
	}
	return s.progress.Overview(p), nil
}

// RefillEnergyWithShards trades soul shards for a full energy bar and
// persists the result.
func (s *Service) RefillEnergyWithShards() (*game.PlayerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p, _, err := s.loadPlayer(now)
	if err != nil {
		return nil, err
	}
	if err := progress.RefillWithShards(p, now); err != nil {
		return nil, err
	}
	if err := s.repo.SavePlayer(p); err != nil {
		return nil, err
	}
	logging.Info("energy refilled with shards", logging.Fields{"shards_left": p.SoulShards})
	return p, nil
}

// RefillEnergyFree tops the bar up at no cost. Development helper.
func (s *Service) RefillEnergyFree() (*game.PlayerState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p, _, err := s.loadPlayer(now)
	if err != nil {
		return nil, err
	}
	progress.RefillFree(p, now)
	if err := s.repo.SavePlayer(p); err != nil {
		return nil, err
	}
	return p, nil
}
