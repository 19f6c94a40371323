package service

import (
	"github.com/jason-napier/demonling/internal/constants"
	"github.com/jason-napier/demonling/internal/engine"
	"github.com/jason-napier/demonling/internal/game"
	"github.com/jason-napier/demonling/internal/logging"
	"github.com/jason-napier/demonling/internal/progress"
)

// StartResult is the outcome of starting a quest. Narrative quests complete
// immediately and carry a Reward; combat quests open an Encounter instead.
type StartResult struct {
	Quest     *game.Quest
	Encounter *engine.Encounter
	Reward    *progress.Reward
	Player    *game.PlayerState
}

// StartQuest validates eligibility and energy, then either completes the
// quest on the spot (narrative) or opens a combat encounter. For combat the
// energy cost is only committed together with the outcome when the encounter
// ends, so an abandoned process costs nothing.
func (s *Service) StartQuest(questID string) (*StartResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if enc, ok := s.encounters.Get(s.activeID); ok && !enc.Over() {
		return nil, ErrEncounterInProgress
	}

	now := s.now()
	p, _, err := s.loadPlayer(now)
	if err != nil {
		return nil, err
	}

	q, err := s.progress.StartQuest(p, questID, now)
	if err != nil {
		return nil, err
	}

	if q.Enemy == nil {
		reward, err := s.progress.CompleteQuest(p, q.ID)
		if err != nil {
			return nil, err
		}
		if err := s.repo.SavePlayer(p); err != nil {
			return nil, err
		}
		logging.Info("narrative quest completed", logging.Fields{
			constants.LogFieldQuestID: q.ID,
			constants.LogFieldLevel:   p.Level,
			constants.LogFieldEnergy:  p.Energy,
		})
		return &StartResult{Quest: q, Reward: &reward, Player: p}, nil
	}

	player := engine.NewEntity(p.Name, p.BaseStats())
	player.Health = p.CurrentHealth
	if player.Health <= 0 {
		player.Health = p.BaseMaxHealth
	}
	enemy := engine.NewEntity(q.Enemy.Name, q.Enemy.Stats)

	enc := engine.NewEncounter(
		s.encounters.NewID(), q.ID,
		player, enemy,
		q.Enemy.Archetype,
		s.progress.Data().PlayerAbilities,
		p.Level, q.EnergyCost,
		s.rng,
	)
	s.encounters.Put(enc.ID, enc)
	s.activeID = enc.ID

	logging.Info("encounter opened", logging.Fields{
		constants.LogFieldQuestID:     q.ID,
		constants.LogFieldEncounterID: enc.ID,
		constants.LogFieldEnemy:       q.Enemy.Name,
	})
	return &StartResult{Quest: q, Encounter: enc, Player: p}, nil
}

// Encounter returns a live or just-finished encounter by id.
func (s *Service) Encounter(id string) (*engine.Encounter, error) {
	enc, ok := s.encounters.Get(id)
	if !ok {
		return nil, ErrEncounterNotFound
	}
	return enc, nil
}
