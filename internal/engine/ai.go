package engine

import (
	"math/rand"

	"github.com/jason-napier/demonling/internal/game"
)

// Archetype ability tables. Each archetype carries a closed list of named
// specials mapping to the status effects they apply; a target of "self" marks
// the ability as defensive for the selection policy below.
var archetypeAbilities = map[game.Archetype][]game.Ability{
	game.ArchetypeDemon: {
		{Key: "hellfire", Name: "Hellfire", Description: "Unleashes hellfire", Effects: []game.EffectApplication{
			{Kind: game.Burned, Target: game.TargetOpponent, Duration: 3, Power: 6},
		}},
		{Key: "dark_curse", Name: "Dark Curse", Description: "Curses with dark magic", Effects: []game.EffectApplication{
			{Kind: game.Weakened, Target: game.TargetOpponent, Duration: 3, Power: 4},
		}},
		{Key: "demonic_fury", Name: "Demonic Fury", Description: "Enters a demonic fury", Effects: []game.EffectApplication{
			{Kind: game.Enraged, Target: game.TargetSelf, Duration: 2, Power: 3},
		}},
	},
	game.ArchetypeUndead: {
		{Key: "toxic_miasma", Name: "Toxic Miasma", Description: "Breathes toxic miasma", Effects: []game.EffectApplication{
			{Kind: game.Poisoned, Target: game.TargetOpponent, Duration: 4, Power: 4},
		}},
		{Key: "cursed_wounds", Name: "Cursed Wounds", Description: "Inflicts cursed wounds", Effects: []game.EffectApplication{
			{Kind: game.Bleeding, Target: game.TargetOpponent, Duration: 3, Power: 4},
		}},
		{Key: "dark_communion", Name: "Dark Communion", Description: "Draws power from darkness", Effects: []game.EffectApplication{
			{Kind: game.Regenerating, Target: game.TargetSelf, Duration: 2, Power: 6},
		}},
	},
	game.ArchetypeBeast: {
		{Key: "savage_maul", Name: "Savage Maul", Description: "Mauls with claws", Effects: []game.EffectApplication{
			{Kind: game.Bleeding, Target: game.TargetOpponent, Duration: 4, Power: 3},
		}},
		{Key: "stunning_roar", Name: "Stunning Roar", Description: "Roars with stunning force", Effects: []game.EffectApplication{
			{Kind: game.Stunned, Target: game.TargetOpponent, Duration: 1},
		}},
		{Key: "feral_might", Name: "Feral Might", Description: "Becomes more ferocious", Effects: []game.EffectApplication{
			{Kind: game.Strengthened, Target: game.TargetSelf, Duration: 3, Power: 5},
		}},
	},
	game.ArchetypeElemental: {
		{Key: "ice_lance", Name: "Ice Lance", Description: "Conjures ice magic", Effects: []game.EffectApplication{
			{Kind: game.Frozen, Target: game.TargetOpponent, Duration: 2},
		}},
		{Key: "fire_eruption", Name: "Fire Eruption", Description: "Erupts with flames", Effects: []game.EffectApplication{
			{Kind: game.Burned, Target: game.TargetOpponent, Duration: 2, Power: 5},
		}},
		{Key: "stone_ward", Name: "Stone Ward", Description: "Hardens with earth magic", Effects: []game.EffectApplication{
			{Kind: game.Shielded, Target: game.TargetSelf, Duration: 3, Power: 6},
		}},
	},
}

// ArchetypeAbilities exposes the table for an archetype (copy, read-only use).
func ArchetypeAbilities(a game.Archetype) []game.Ability {
	src := archetypeAbilities[a]
	out := make([]game.Ability, len(src))
	copy(out, src)
	return out
}

// Selection policy thresholds.
const (
	lowHPFraction     = 0.3
	hurtHPFraction    = 0.5
	specialChance     = 0.25
	specialChanceHurt = 0.4
	defendChanceAtLow = 0.5
)

// ChooseEnemyAction picks the enemy's action for this turn. Below 30% HP the
// AI favors self-buff/heal specials and defending; above that it favors
// offense. The rng is the caller's seeded source, so the choice is
// reproducible in tests.
func ChooseEnemyAction(e *Entity, archetype game.Archetype, rng *rand.Rand) (Action, *game.Ability) {
	if e.ForcedToAttack() {
		return ActionAttack, nil
	}

	table := archetypeAbilities[archetype]
	frac := e.HPFraction()

	chance := specialChance
	if frac < hurtHPFraction {
		chance = specialChanceHurt
	}
	if len(table) > 0 && rng.Float64() < chance {
		if ability := pickAbility(e, table, frac, rng); ability != nil {
			return ActionSpecial, ability
		}
	}
	if frac < lowHPFraction && rng.Float64() < defendChanceAtLow {
		return ActionDefend, nil
	}
	return ActionAttack, nil
}

// pickAbility prefers self-targeted specials when low, offensive ones
// otherwise, and skips specials whose effect is already active on the target
// with an equal or longer duration (they would be wasted turns).
func pickAbility(e *Entity, table []game.Ability, frac float64, rng *rand.Rand) *game.Ability {
	preferSelf := frac < lowHPFraction

	var preferred, fallback []game.Ability
	for _, a := range table {
		if wastedOnSelf(e, a) {
			continue
		}
		if targetsSelf(a) == preferSelf {
			preferred = append(preferred, a)
		} else {
			fallback = append(fallback, a)
		}
	}
	pool := preferred
	if len(pool) == 0 {
		pool = fallback
	}
	if len(pool) == 0 {
		return nil
	}
	pick := pool[rng.Intn(len(pool))]
	return &pick
}

func targetsSelf(a game.Ability) bool {
	for _, eff := range a.Effects {
		if eff.Target == game.TargetOpponent {
			return false
		}
	}
	return true
}

// wastedOnSelf reports whether every effect of a self-targeted ability is
// already active with at least the duration it would apply.
func wastedOnSelf(e *Entity, a game.Ability) bool {
	if !targetsSelf(a) {
		return false
	}
	for _, eff := range a.Effects {
		in, ok := e.Effect(eff.Kind)
		if !ok {
			return false
		}
		want := eff.Duration
		if want <= 0 {
			want = behaviors[eff.Kind].DefaultDuration
		}
		if in.Duration < want {
			return false
		}
	}
	return true
}
