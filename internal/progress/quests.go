package progress

import (
	"errors"
	"time"

	"github.com/jason-napier/demonling/internal/config"
	"github.com/jason-napier/demonling/internal/game"
)

var (
	ErrInvalidQuest       = errors.New("unknown or locked quest")
	ErrInsufficientEnergy = errors.New("not enough energy")
	ErrInsufficientShards = errors.New("not enough soul shards")
)

// Engine applies quest eligibility, costs, rewards and the leveling curve to a
// player record. It holds only immutable game data; all mutable state lives in
// the record passed to each call.
type Engine struct {
	data *config.GameData
}

// Reward summarizes what one quest completion granted.
type Reward struct {
	XP           int  `json:"xp"`
	Gold         int  `json:"gold"`
	SoulShards   int  `json:"soul_shards"`
	LevelsGained int  `json:"levels_gained"`
	FirstClear   bool `json:"first_clear"`
}

func NewEngine(data *config.GameData) *Engine {
	return &Engine{data: data}
}

// Data exposes the immutable game content the engine runs on.
func (e *Engine) Data() *config.GameData { return e.data }

// IsEligible reports whether the quest exists and its chain predecessor (if
// any) has been completed. Completed quests stay eligible for replay.
func (e *Engine) IsEligible(p *game.PlayerState, questID string) bool {
	if _, ok := e.data.Quest(questID); !ok {
		return false
	}
	pre, ok := e.data.Prerequisite(questID)
	if !ok {
		return true
	}
	return p.HasCompleted(pre)
}

// StartQuest validates eligibility and energy, regenerates the bar up to now,
// then deducts the quest's cost from the record. The record is untouched on
// any failure.
func (e *Engine) StartQuest(p *game.PlayerState, questID string, now time.Time) (*game.Quest, error) {
	Regenerate(p, now)
	q, ok := e.data.Quest(questID)
	if !ok || !e.IsEligible(p, questID) {
		return nil, ErrInvalidQuest
	}
	if p.Energy < q.EnergyCost {
		return nil, ErrInsufficientEnergy
	}
	p.Energy -= q.EnergyCost
	return q, nil
}

// CompleteQuest grants the quest's rewards and records the clear. XP and gold
// are granted on every completion; soul shards only on the first.
func (e *Engine) CompleteQuest(p *game.PlayerState, questID string) (Reward, error) {
	q, ok := e.data.Quest(questID)
	if !ok {
		return Reward{}, ErrInvalidQuest
	}
	r := Reward{
		XP:         q.XPReward,
		Gold:       q.GoldReward,
		FirstClear: !p.HasCompleted(q.ID),
	}
	if r.FirstClear {
		r.SoulShards = q.ShardReward
	}
	p.Gold += r.Gold
	p.SoulShards += r.SoulShards
	r.LevelsGained = e.ApplyExperience(p, r.XP)
	p.RecordClear(q.ID)
	return r, nil
}

// ApplyExperience adds xp and resolves any level-ups. Each level raises the
// next threshold by half again (floored) and grants fixed stat gains; leveling
// restores the player to full health. Returns the number of levels gained.
func (e *Engine) ApplyExperience(p *game.PlayerState, xp int) int {
	if xp <= 0 {
		return 0
	}
	p.XP += xp
	levels := 0
	for p.XP >= p.XPToNext {
		p.XP -= p.XPToNext
		p.XPToNext = int(float64(p.XPToNext) * game.XPGrowthFactor)
		p.Level++
		levels++

		p.BaseMaxHealth += game.HealthPerLevel
		p.BaseAttack += game.AttackPerLevel
		p.BaseDefense += game.DefensePerLevel
		p.BaseAgility += game.AgilityPerLevel
		p.BaseMagic += game.MagicPerLevel
		p.CurrentHealth = p.BaseMaxHealth
	}
	return levels
}

// QuestStatus is the progression view of a single quest for listings.
type QuestStatus struct {
	Quest     *game.Quest `json:"quest"`
	Completed bool        `json:"completed"`
	Available bool        `json:"available"`
}

// ChainOverview lists a chain's quests with the player's standing on each.
type ChainOverview struct {
	Chain  *game.QuestChain `json:"chain"`
	Quests []QuestStatus    `json:"quests"`
}

// Overview assembles the full quest listing in chain order.
func (e *Engine) Overview(p *game.PlayerState) []ChainOverview {
	out := make([]ChainOverview, 0, len(e.data.Chains))
	for i := range e.data.Chains {
		c := &e.data.Chains[i]
		ov := ChainOverview{Chain: c, Quests: make([]QuestStatus, 0, len(c.QuestIDs))}
		for _, qid := range c.QuestIDs {
			q, _ := e.data.Quest(qid)
			ov.Quests = append(ov.Quests, QuestStatus{
				Quest:     q,
				Completed: p.HasCompleted(qid),
				Available: e.IsEligible(p, qid),
			})
		}
		out = append(out, ov)
	}
	return out
}
