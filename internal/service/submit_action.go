package service

import (
	"github.com/jason-napier/demonling/internal/constants"
	"github.com/jason-napier/demonling/internal/engine"
	"github.com/jason-napier/demonling/internal/game"
	"github.com/jason-napier/demonling/internal/logging"
	"github.com/jason-napier/demonling/internal/progress"
)

// ActionResult is the outcome of one submitted player action, including the
// enemy's reply when the encounter continues. Reward and Player are set only
// when the encounter just ended.
type ActionResult struct {
	Encounter *engine.Encounter
	Reward    *progress.Reward
	Player    *game.PlayerState
}

// SubmitAction resolves the player's action and, when the encounter is still
// open, the enemy's reply. When the encounter reaches Victory or Defeat the
// energy cost and any rewards are applied to the player record in a single
// persisted write, and the encounter is discarded.
func (s *Service) SubmitAction(encounterID string, action engine.Action, abilityKey string) (*ActionResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	enc, ok := s.encounters.Get(encounterID)
	if !ok {
		return nil, ErrEncounterNotFound
	}

	// An encounter that is still stored in a terminal state had its outcome
	// apply fail; skip straight to the apply instead of re-resolving.
	if !enc.Over() {
		if err := enc.PlayerAct(action, abilityKey); err != nil {
			return nil, err
		}
		if !enc.Over() {
			if err := enc.EnemyAct(); err != nil {
				return nil, err
			}
		}
		if !enc.Over() {
			return &ActionResult{Encounter: enc}, nil
		}
	}

	reward, p, err := s.applyOutcome(enc)
	if err != nil {
		// Keep the encounter so a retried submit re-triggers the apply.
		return nil, err
	}
	s.encounters.Delete(enc.ID)
	if s.activeID == enc.ID {
		s.activeID = ""
	}
	return &ActionResult{Encounter: enc, Reward: reward, Player: p}, nil
}

// applyOutcome commits the encounter's energy cost and rewards against the
// persisted record in one write.
func (s *Service) applyOutcome(enc *engine.Encounter) (*progress.Reward, *game.PlayerState, error) {
	now := s.now()
	p, _, err := s.loadPlayer(now)
	if err != nil {
		return nil, nil, err
	}

	p.Energy -= enc.EnergyCost
	if p.Energy < 0 {
		p.Energy = 0
	}

	var reward *progress.Reward
	if enc.State == engine.StateVictory {
		r, err := s.progress.CompleteQuest(p, enc.QuestID)
		if err != nil {
			return nil, nil, err
		}
		reward = &r
		// Surviving health carries over unless a level-up healed back
		// to full.
		if reward.LevelsGained == 0 {
			p.CurrentHealth = enc.Player.Health
			if p.CurrentHealth > p.BaseMaxHealth {
				p.CurrentHealth = p.BaseMaxHealth
			}
		}
	} else {
		// Defeat costs the energy but the demonling limps home and
		// recovers fully.
		p.CurrentHealth = p.BaseMaxHealth
	}

	if err := s.repo.SavePlayer(p); err != nil {
		return nil, nil, err
	}
	logging.Info("encounter resolved", logging.Fields{
		constants.LogFieldEncounterID: enc.ID,
		constants.LogFieldQuestID:     enc.QuestID,
		constants.LogFieldState:       string(enc.State),
		constants.LogFieldLevel:       p.Level,
		constants.LogFieldEnergy:      p.Energy,
	})
	return reward, p, nil
}
