package api

import (
	"github.com/jason-napier/demonling/internal/engine"
	"github.com/jason-napier/demonling/internal/game"
)

// playerView is the API shape of the player record.
type playerView struct {
	Name string `json:"name"`

	Level    int `json:"level"`
	XP       int `json:"xp"`
	XPToNext int `json:"xp_to_next"`

	Gold       int `json:"gold"`
	SoulShards int `json:"soul_shards"`

	Energy    int `json:"energy"`
	EnergyMax int `json:"energy_max"`

	Stats game.Stats `json:"stats"`

	CurrentHealth   int      `json:"current_health"`
	CompletedQuests []string `json:"completed_quests"`
}

func toPlayerView(p *game.PlayerState) playerView {
	return playerView{
		Name:            p.Name,
		Level:           p.Level,
		XP:              p.XP,
		XPToNext:        p.XPToNext,
		Gold:            p.Gold,
		SoulShards:      p.SoulShards,
		Energy:          p.Energy,
		EnergyMax:       p.EnergyMax,
		Stats:           p.BaseStats(),
		CurrentHealth:   p.CurrentHealth,
		CompletedQuests: p.CompletedQuestIDs(),
	}
}

type effectView struct {
	Kind     game.EffectKind `json:"kind"`
	Duration int             `json:"duration"`
	Power    int             `json:"power"`
	Icon     string          `json:"icon"`
}

type entityView struct {
	Name      string       `json:"name"`
	Health    int          `json:"health"`
	MaxHealth int          `json:"max_health"`
	Defending bool         `json:"defending"`
	Status    string       `json:"status"`
	Effects   []effectView `json:"effects"`
}

func toEntityView(e *engine.Entity) entityView {
	effects := make([]effectView, 0, len(e.Effects()))
	for _, in := range e.Effects() {
		b, _ := engine.BehaviorFor(in.Kind)
		effects = append(effects, effectView{
			Kind:     in.Kind,
			Duration: in.Duration,
			Power:    in.Power,
			Icon:     b.Icon,
		})
	}
	return entityView{
		Name:      e.Name,
		Health:    e.Health,
		MaxHealth: e.Base.MaxHealth,
		Defending: e.Defending,
		Status:    e.StatusDisplay(),
		Effects:   effects,
	}
}

// encounterView is the API shape of a live or finished encounter.
type encounterView struct {
	ID        string         `json:"id"`
	QuestID   string         `json:"quest_id"`
	State     engine.State   `json:"state"`
	Round     int            `json:"round"`
	Player    entityView     `json:"player"`
	Enemy     entityView     `json:"enemy"`
	Abilities []game.Ability `json:"abilities"`
	Log       []string       `json:"log"`
}

func toEncounterView(enc *engine.Encounter) encounterView {
	return encounterView{
		ID:        enc.ID,
		QuestID:   enc.QuestID,
		State:     enc.State,
		Round:     enc.Round,
		Player:    toEntityView(enc.Player),
		Enemy:     toEntityView(enc.Enemy),
		Abilities: enc.PlayerAbilities(),
		Log:       enc.Log,
	}
}
