package engine

import (
	"strconv"

	"github.com/jason-napier/demonling/internal/game"
)

// Phase is the point in an entity's turn cycle at which an effect ticks.
type Phase int

const (
	// PhaseNone marks pure stat modifiers that are read during damage
	// calculation instead of ticking on their own.
	PhaseNone Phase = iota
	PhaseTurnStart
	PhaseTurnEnd
)

// Behavior is the data-driven definition of one effect kind: when it ticks,
// what it does to HP, and which combat numbers it modifies. The ten kinds
// share a single interpreter instead of a type per effect.
type Behavior struct {
	Phase Phase

	DamagesPerTick bool
	HealsPerTick   bool

	PreventsAction bool
	ForcesAttack   bool

	AttackBonus     bool // adds power to effective attack
	AttackPenalty   bool // subtracts power from effective attack
	DamageReduction bool // subtracts power from incoming damage
	DamageBoost     bool // multiplies outgoing damage by 1 + 0.1*power

	DefaultDuration int
	DefaultPower    int
	Icon            string
}

var behaviors = map[game.EffectKind]Behavior{
	game.Burned:       {Phase: PhaseTurnEnd, DamagesPerTick: true, DefaultDuration: 3, DefaultPower: 5, Icon: "🔥"},
	game.Poisoned:     {Phase: PhaseTurnEnd, DamagesPerTick: true, DefaultDuration: 5, DefaultPower: 3, Icon: "☠"},
	game.Regenerating: {Phase: PhaseTurnEnd, HealsPerTick: true, DefaultDuration: 3, DefaultPower: 8, Icon: "✚"},
	game.Bleeding:     {Phase: PhaseTurnStart, DamagesPerTick: true, DefaultDuration: 4, DefaultPower: 3, Icon: "🩸"},
	game.Frozen:       {Phase: PhaseTurnStart, PreventsAction: true, DefaultDuration: 2, DefaultPower: 1, Icon: "❄"},
	game.Stunned:      {Phase: PhaseTurnStart, PreventsAction: true, DefaultDuration: 1, DefaultPower: 1, Icon: "✶"},
	game.Enraged:      {Phase: PhaseNone, ForcesAttack: true, DamageBoost: true, DefaultDuration: 3, DefaultPower: 2, Icon: "⚡"},
	game.Strengthened: {Phase: PhaseNone, AttackBonus: true, DefaultDuration: 4, DefaultPower: 3, Icon: "▲"},
	game.Weakened:     {Phase: PhaseNone, AttackPenalty: true, DefaultDuration: 3, DefaultPower: 2, Icon: "▼"},
	game.Shielded:     {Phase: PhaseNone, DamageReduction: true, DefaultDuration: 2, DefaultPower: 5, Icon: "🛡"},
}

// BehaviorFor looks up the behavior table for a kind.
func BehaviorFor(kind game.EffectKind) (Behavior, bool) {
	b, ok := behaviors[kind]
	return b, ok
}

// KnownKind reports whether the kind is part of the closed effect set.
func KnownKind(kind game.EffectKind) bool {
	_, ok := behaviors[kind]
	return ok
}

// Instance is one active status effect on an entity. Duration is in owner
// turn cycles and stays > 0 while the instance is active.
type Instance struct {
	Kind     game.EffectKind `json:"kind"`
	Duration int             `json:"duration"`
	Power    int             `json:"power"`
}

// NewInstance builds an instance, substituting the kind's defaults for a zero
// duration or power.
func NewInstance(kind game.EffectKind, duration, power int) Instance {
	b := behaviors[kind]
	if duration <= 0 {
		duration = b.DefaultDuration
	}
	if power <= 0 {
		power = b.DefaultPower
	}
	return Instance{Kind: kind, Duration: duration, Power: power}
}

// Tick ages the instance by one turn and reports whether it expired.
func (in *Instance) Tick() bool {
	in.Duration--
	return in.Duration <= 0
}

// Display renders the instance for the UI status line, e.g. "🔥(2)".
func (in Instance) Display() string {
	return behaviors[in.Kind].Icon + "(" + strconv.Itoa(in.Duration) + ")"
}
