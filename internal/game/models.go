package game

import (
	"time"

	"gorm.io/gorm"
)

// Stats holds the named numeric attributes shared by the player and enemies.
// All values are kept non-negative; current health is clamped elsewhere.
type Stats struct {
	MaxHealth int `json:"max_health" yaml:"max_health"`
	Attack    int `json:"attack" yaml:"attack"`
	Defense   int `json:"defense" yaml:"defense"`
	Agility   int `json:"agility" yaml:"agility"`
	Magic     int `json:"magic" yaml:"magic"`
}

// Archetype is the enemy category that selects its special-ability table.
type Archetype string

const (
	ArchetypeDemon     Archetype = "demon"
	ArchetypeUndead    Archetype = "undead"
	ArchetypeBeast     Archetype = "beast"
	ArchetypeElemental Archetype = "elemental"
)

// EnemyTemplate is the immutable definition a combat quest instantiates its
// opponent from. Templates live in the game data config and are never mutated.
type EnemyTemplate struct {
	Name      string    `json:"name" yaml:"name"`
	Archetype Archetype `json:"archetype" yaml:"archetype"`
	Stats     Stats     `json:"stats" yaml:"stats"`
}

// Quest is one step of a chain. A nil Enemy marks a narrative quest that
// completes immediately on start instead of opening an encounter.
type Quest struct {
	ID          string         `json:"id" yaml:"id"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	EnergyCost  int            `json:"energy_cost" yaml:"energy_cost"`
	XPReward    int            `json:"xp_reward" yaml:"xp_reward"`
	GoldReward  int            `json:"gold_reward" yaml:"gold_reward"`
	ShardReward int            `json:"shard_reward" yaml:"shard_reward"`
	Enemy       *EnemyTemplate `json:"enemy,omitempty" yaml:"enemy,omitempty"`
}

// QuestChain is an ordered sequence of quest ids with linear unlock gating:
// quest i is eligible only once quest i-1 has been completed at least once.
type QuestChain struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	QuestIDs    []string `json:"quests" yaml:"quests"`
}

// Default values for a first-run player record.
const (
	DefaultXPToNext   = 10
	DefaultGold       = 100
	DefaultEnergyMax  = 10
	DefaultMaxHealth  = 50
	DefaultAttack     = 5
	DefaultDefense    = 2
	DefaultAgility    = 3
	DefaultMagic      = 1
	DefaultPlayerName = "Demonling"

	// Leveling curve and per-level stat gains.
	XPGrowthFactor  = 1.5
	HealthPerLevel  = 5
	AttackPerLevel  = 2
	DefensePerLevel = 1
	AgilityPerLevel = 1
	MagicPerLevel   = 1

	// Energy accrual and the soul-shard refill price.
	EnergyPerMinute       = 1
	EnergyRefillShardCost = 5
)

// PlayerState is the flat progression record exchanged with the persistence
// collaborator. It is created once at first run and mutated in place by every
// completed quest and elapsed energy tick.
type PlayerState struct {
	gorm.Model
	Name string `json:"name"`

	Level    int `json:"level"`
	XP       int `json:"xp"`
	XPToNext int `json:"xp_to_next"`

	Gold       int `json:"gold"`
	SoulShards int `json:"soul_shards"`

	Energy           int       `json:"energy"`
	EnergyMax        int       `json:"energy_max"`
	LastEnergyUpdate time.Time `json:"last_energy_update"`

	BaseMaxHealth int `json:"base_max_health"`
	BaseAttack    int `json:"base_attack"`
	BaseDefense   int `json:"base_defense"`
	BaseAgility   int `json:"base_agility"`
	BaseMagic     int `json:"base_magic"`

	CurrentHealth int `json:"current_health"`

	Clears []QuestClear `json:"clears"`
}

func (PlayerState) TableName() string { return "player_state" }

// QuestClear records a completed quest id for the player. First-time-only
// rewards (soul shards) key off the absence of a prior row for the id.
type QuestClear struct {
	gorm.Model
	PlayerStateID uint   `json:"-"`
	QuestID       string `json:"quest_id" gorm:"index"`
}

func (QuestClear) TableName() string { return "quest_clears" }

// NewPlayerState returns a first-run record with the fixed defaults.
func NewPlayerState(now time.Time) *PlayerState {
	return &PlayerState{
		Name:             DefaultPlayerName,
		Level:            1,
		XP:               0,
		XPToNext:         DefaultXPToNext,
		Gold:             DefaultGold,
		SoulShards:       0,
		Energy:           DefaultEnergyMax,
		EnergyMax:        DefaultEnergyMax,
		LastEnergyUpdate: now,
		BaseMaxHealth:    DefaultMaxHealth,
		BaseAttack:       DefaultAttack,
		BaseDefense:      DefaultDefense,
		BaseAgility:      DefaultAgility,
		BaseMagic:        DefaultMagic,
		CurrentHealth:    DefaultMaxHealth,
	}
}

// Normalize fills in defaults for a partially-populated record (tolerates old
// or hand-edited saves). It never lowers populated values.
func (p *PlayerState) Normalize(now time.Time) {
	if p.Level < 1 {
		p.Level = 1
	}
	if p.XPToNext <= 0 {
		p.XPToNext = DefaultXPToNext
	}
	if p.EnergyMax <= 0 {
		p.EnergyMax = DefaultEnergyMax
	}
	if p.Energy > p.EnergyMax {
		p.Energy = p.EnergyMax
	}
	if p.LastEnergyUpdate.IsZero() {
		p.LastEnergyUpdate = now
	}
	if p.BaseMaxHealth <= 0 {
		p.BaseMaxHealth = DefaultMaxHealth
	}
	if p.BaseAttack <= 0 {
		p.BaseAttack = DefaultAttack
	}
	if p.BaseDefense < 0 {
		p.BaseDefense = DefaultDefense
	}
	if p.CurrentHealth <= 0 || p.CurrentHealth > p.BaseMaxHealth {
		p.CurrentHealth = p.BaseMaxHealth
	}
	if p.Name == "" {
		p.Name = DefaultPlayerName
	}
}

// BaseStats returns the player's base stats as a Stats value.
func (p *PlayerState) BaseStats() Stats {
	return Stats{
		MaxHealth: p.BaseMaxHealth,
		Attack:    p.BaseAttack,
		Defense:   p.BaseDefense,
		Agility:   p.BaseAgility,
		Magic:     p.BaseMagic,
	}
}

// HasCompleted reports whether the quest id is in the completed set.
func (p *PlayerState) HasCompleted(questID string) bool {
	for i := range p.Clears {
		if p.Clears[i].QuestID == questID {
			return true
		}
	}
	return false
}

// RecordClear inserts the quest id into the completed set. Idempotent.
func (p *PlayerState) RecordClear(questID string) {
	if p.HasCompleted(questID) {
		return
	}
	p.Clears = append(p.Clears, QuestClear{PlayerStateID: p.ID, QuestID: questID})
}

// CompletedQuestIDs returns the completed set as a slice for API responses.
func (p *PlayerState) CompletedQuestIDs() []string {
	out := make([]string, 0, len(p.Clears))
	for i := range p.Clears {
		out = append(out, p.Clears[i].QuestID)
	}
	return out
}
