package engine

import (
	"strconv"
	"strings"

	"github.com/jason-napier/demonling/internal/game"
)

// Entity is one participant in an encounter. It wraps base stats, active
// status effects and the transient defend flag, and lives only for the
// duration of a single encounter.
type Entity struct {
	Name      string     `json:"name"`
	Base      game.Stats `json:"base"`
	Health    int        `json:"health"`
	Defending bool       `json:"defending"`

	// effects preserves insertion order for display; index gives the
	// one-instance-per-kind lookup.
	effects []Instance
	index   map[game.EffectKind]int
}

// NewEntity creates an entity at full health with no active effects.
func NewEntity(name string, base game.Stats) *Entity {
	return &Entity{
		Name:   name,
		Base:   base,
		Health: base.MaxHealth,
		index:  map[game.EffectKind]int{},
	}
}

// Alive reports whether the entity still has HP.
func (e *Entity) Alive() bool { return e.Health > 0 }

// HPFraction returns current health as a fraction of max, for AI decisions.
func (e *Entity) HPFraction() float64 {
	if e.Base.MaxHealth <= 0 {
		return 0
	}
	return float64(e.Health) / float64(e.Base.MaxHealth)
}

// Effect returns the active instance of the given kind, if any.
func (e *Entity) Effect(kind game.EffectKind) (Instance, bool) {
	i, ok := e.index[kind]
	if !ok {
		return Instance{}, false
	}
	return e.effects[i], ok
}

// HasEffect reports whether an effect of the kind is active.
func (e *Entity) HasEffect(kind game.EffectKind) bool {
	_, ok := e.index[kind]
	return ok
}

// Effects returns the active instances in insertion order.
func (e *Entity) Effects() []Instance {
	out := make([]Instance, len(e.effects))
	copy(out, e.effects)
	return out
}

// AddEffect applies the longest-duration-wins rule: a same-kind instance is
// replaced only when the new one lasts longer; different kinds coexist.
// Returns true when the effect was added or replaced.
func (e *Entity) AddEffect(in Instance) bool {
	if i, ok := e.index[in.Kind]; ok {
		if in.Duration > e.effects[i].Duration {
			e.effects[i] = in
			return true
		}
		return false
	}
	e.effects = append(e.effects, in)
	e.index[in.Kind] = len(e.effects) - 1
	return true
}

// CanAct is false while any action-preventing effect (Frozen, Stunned) is up.
func (e *Entity) CanAct() bool {
	for i := range e.effects {
		if behaviors[e.effects[i].Kind].PreventsAction {
			return false
		}
	}
	return true
}

// ForcedToAttack is true while an effect (Enraged) removes the other actions.
func (e *Entity) ForcedToAttack() bool {
	for i := range e.effects {
		if behaviors[e.effects[i].Kind].ForcesAttack {
			return true
		}
	}
	return false
}

// EffectiveAttack is the base attack plus all active additive modifiers,
// floored at 1.
func (e *Entity) EffectiveAttack() int {
	a := e.Base.Attack
	for i := range e.effects {
		b := behaviors[e.effects[i].Kind]
		if b.AttackBonus {
			a += e.effects[i].Power
		}
		if b.AttackPenalty {
			a -= e.effects[i].Power
		}
	}
	if a < 1 {
		a = 1
	}
	return a
}

// EffectiveDefense is the base defense floored at 0. Shielded is an
// incoming-damage reduction, not a defense modifier, so it is read during
// damage calculation instead.
func (e *Entity) EffectiveDefense() int {
	d := e.Base.Defense
	if d < 0 {
		d = 0
	}
	return d
}

// ApplyDamage subtracts HP clamped at 0 and returns the amount dealt.
func (e *Entity) ApplyDamage(n int) int {
	if n < 0 {
		n = 0
	}
	if n > e.Health {
		n = e.Health
	}
	e.Health -= n
	return n
}

// ApplyHealing adds HP clamped at max and returns the amount restored.
func (e *Entity) ApplyHealing(n int) int {
	if n < 0 {
		n = 0
	}
	room := e.Base.MaxHealth - e.Health
	if n > room {
		n = room
	}
	e.Health += n
	return n
}

// ProcessTurnStart runs the start-of-turn ticks (e.g. Bleeding) and returns
// the log lines produced. HP reaching 0 here is the caller's terminal check.
func (e *Entity) ProcessTurnStart() []string {
	return e.runPhase(PhaseTurnStart)
}

// ProcessTurnEnd runs the end-of-turn ticks (burn, poison, regen), then ages
// every active instance by one and drops the expired ones.
func (e *Entity) ProcessTurnEnd() []string {
	lines := e.runPhase(PhaseTurnEnd)

	kept := e.effects[:0]
	for i := range e.effects {
		in := e.effects[i]
		if in.Tick() {
			lines = append(lines, e.Name+" is no longer "+string(in.Kind))
			continue
		}
		kept = append(kept, in)
	}
	e.effects = kept
	e.index = make(map[game.EffectKind]int, len(e.effects))
	for i := range e.effects {
		e.index[e.effects[i].Kind] = i
	}
	return lines
}

func (e *Entity) runPhase(phase Phase) []string {
	var lines []string
	for i := range e.effects {
		in := e.effects[i]
		b := behaviors[in.Kind]
		if b.Phase != phase {
			continue
		}
		switch {
		case b.DamagesPerTick:
			dealt := e.ApplyDamage(in.Power)
			lines = append(lines, e.Name+" takes "+strconv.Itoa(dealt)+" damage from "+string(in.Kind)+" ("+e.hpLine()+")")
			if !e.Alive() {
				return lines
			}
		case b.HealsPerTick:
			healed := e.ApplyHealing(in.Power)
			if healed > 0 {
				lines = append(lines, e.Name+" recovers "+strconv.Itoa(healed)+" HP from "+string(in.Kind)+" ("+e.hpLine()+")")
			}
		}
	}
	return lines
}

func (e *Entity) hpLine() string {
	return strconv.Itoa(e.Health) + "/" + strconv.Itoa(e.Base.MaxHealth) + " HP"
}

// StatusDisplay renders active effects for the UI, insertion-ordered.
func (e *Entity) StatusDisplay() string {
	if len(e.effects) == 0 {
		return ""
	}
	parts := make([]string, len(e.effects))
	for i := range e.effects {
		parts[i] = e.effects[i].Display()
	}
	return strings.Join(parts, " ")
}
