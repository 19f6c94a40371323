package engine

import (
	"errors"
	"math/rand"
	"strconv"

	"github.com/jason-napier/demonling/internal/game"
)

// State is the encounter state machine position.
type State string

const (
	StateAwaitingPlayerAction State = "awaiting_player_action"
	StateAwaitingEnemyAction  State = "awaiting_enemy_action"
	StateVictory              State = "victory"
	StateDefeat               State = "defeat"
)

// Action is a combat action chosen by the player or the enemy AI.
type Action string

const (
	ActionAttack  Action = "attack"
	ActionDefend  Action = "defend"
	ActionSpecial Action = "special"
)

var (
	ErrEncounterOver  = errors.New("encounter already resolved")
	ErrNotPlayerTurn  = errors.New("not the player's turn")
	ErrNotEnemyTurn   = errors.New("not the enemy's turn")
	ErrUnknownAction  = errors.New("unknown combat action")
	ErrUnknownAbility = errors.New("unknown or locked ability")
)

// Encounter drives one combat from entity creation to Victory/Defeat. It is
// the sole owner of its two entities; both are discarded when it ends.
type Encounter struct {
	ID      string
	QuestID string

	Player *Entity
	Enemy  *Entity

	Archetype   game.Archetype
	PlayerLevel int
	EnergyCost  int

	State State
	Round int
	Log   []string

	abilities []game.Ability
	rng       *rand.Rand
}

// NewEncounter constructs the encounter in AwaitingPlayerAction. The rng seeds
// enemy AI variety and is injected for testability.
func NewEncounter(id, questID string, player, enemy *Entity, archetype game.Archetype, playerAbilities []game.Ability, playerLevel, energyCost int, rng *rand.Rand) *Encounter {
	enc := &Encounter{
		ID:          id,
		QuestID:     questID,
		Player:      player,
		Enemy:       enemy,
		Archetype:   archetype,
		PlayerLevel: playerLevel,
		EnergyCost:  energyCost,
		State:       StateAwaitingPlayerAction,
		Round:       1,
		abilities:   playerAbilities,
		rng:         rng,
	}
	enc.add("Combat begins! " + player.Name + " vs " + enemy.Name)
	enc.add(player.Name + ": " + player.hpLine())
	enc.add(enemy.Name + ": " + enemy.hpLine())
	return enc
}

// Over reports whether a terminal state has been reached.
func (enc *Encounter) Over() bool {
	return enc.State == StateVictory || enc.State == StateDefeat
}

func (enc *Encounter) add(line string) { enc.Log = append(enc.Log, line) }

// PlayerAbilities returns the abilities available at the player's level.
func (enc *Encounter) PlayerAbilities() []game.Ability {
	out := make([]game.Ability, 0, len(enc.abilities))
	for _, a := range enc.abilities {
		if a.MinLevel <= enc.PlayerLevel {
			out = append(out, a)
		}
	}
	return out
}

// PlayerAct resolves the player's full turn cycle: start-of-turn ticks, the
// chosen action (skipped while action-prevented), end-of-turn ticks. On a
// non-terminal outcome control passes to the enemy.
func (enc *Encounter) PlayerAct(action Action, abilityKey string) error {
	if enc.Over() {
		return ErrEncounterOver
	}
	if enc.State != StateAwaitingPlayerAction {
		return ErrNotPlayerTurn
	}
	switch action {
	case ActionAttack, ActionDefend:
	case ActionSpecial:
		if enc.findAbility(abilityKey) == nil {
			return ErrUnknownAbility
		}
	default:
		return ErrUnknownAction
	}

	enc.runCycle(enc.Player, enc.Enemy, func() {
		enc.resolvePlayerAction(action, abilityKey)
	})
	if !enc.Over() {
		enc.State = StateAwaitingEnemyAction
	}
	return nil
}

// EnemyAct resolves the enemy's full turn cycle, consulting the AI for the
// action. On a non-terminal outcome a new round begins with the player.
func (enc *Encounter) EnemyAct() error {
	if enc.Over() {
		return ErrEncounterOver
	}
	if enc.State != StateAwaitingEnemyAction {
		return ErrNotEnemyTurn
	}

	enc.runCycle(enc.Enemy, enc.Player, func() {
		action, ability := ChooseEnemyAction(enc.Enemy, enc.Archetype, enc.rng)
		enc.resolveEnemyAction(action, ability)
	})
	if !enc.Over() {
		enc.State = StateAwaitingPlayerAction
		enc.Round++
	}
	return nil
}

// runCycle is the shared per-side turn cycle. Terminal conditions are checked
// after every HP mutation; a death during a side's own phase resolves against
// that side (defeat priority on the player's turn, victory on the enemy's).
func (enc *Encounter) runCycle(actor, other *Entity, resolve func()) {
	for _, line := range actor.ProcessTurnStart() {
		enc.add(line)
	}
	if enc.checkTerminal(actor) {
		return
	}

	// The stance lasts until the owner's next turn cycle, skipped or not.
	actor.Defending = false
	if !actor.CanAct() {
		enc.add(actor.Name + " cannot act!")
	} else {
		resolve()
		if enc.checkTerminal(actor) {
			return
		}
	}

	for _, line := range actor.ProcessTurnEnd() {
		enc.add(line)
	}
	enc.checkTerminal(actor)
}

// checkTerminal moves to Victory/Defeat when either side is down. The acting
// side's death is checked first, so a mutual-death corner case resolves
// against whoever's turn cycle just ran.
func (enc *Encounter) checkTerminal(actor *Entity) bool {
	first, second := enc.Player, enc.Enemy
	if actor == enc.Enemy {
		first, second = enc.Enemy, enc.Player
	}
	for _, e := range []*Entity{first, second} {
		if e.Alive() {
			continue
		}
		if e == enc.Player {
			enc.State = StateDefeat
			enc.add("Defeat! " + enc.Player.Name + " has been bested...")
		} else {
			enc.State = StateVictory
			enc.add("Victory! " + enc.Enemy.Name + " is defeated!")
		}
		return true
	}
	return false
}

func (enc *Encounter) resolvePlayerAction(action Action, abilityKey string) {
	if enc.Player.ForcedToAttack() && action != ActionAttack {
		enc.add(enc.Player.Name + " is enraged and attacks blindly!")
		action = ActionAttack
	}
	switch action {
	case ActionAttack:
		enc.resolveAttack(enc.Player, enc.Enemy)
	case ActionDefend:
		enc.Player.Defending = true
		enc.add(enc.Player.Name + " takes a defensive stance!")
	case ActionSpecial:
		ability := enc.findAbility(abilityKey)
		enc.applyAbility(enc.Player, enc.Enemy, *ability)
	}
}

func (enc *Encounter) resolveEnemyAction(action Action, ability *game.Ability) {
	switch action {
	case ActionDefend:
		enc.Enemy.Defending = true
		enc.add(enc.Enemy.Name + " takes a defensive stance!")
	case ActionSpecial:
		enc.applyAbility(enc.Enemy, enc.Player, *ability)
	default:
		enc.resolveAttack(enc.Enemy, enc.Player)
	}
}

// resolveAttack applies the damage formula in fixed order: base difference,
// enrage boost, shield reduction, defend halving, floor at 1.
func (enc *Encounter) resolveAttack(attacker, defender *Entity) {
	dmg := attacker.EffectiveAttack() - defender.EffectiveDefense()/2
	if dmg < 1 {
		dmg = 1
	}
	for _, in := range attacker.Effects() {
		if behaviors[in.Kind].DamageBoost {
			dmg = int(float64(dmg) * (1.0 + 0.1*float64(in.Power)))
		}
	}
	for _, in := range defender.Effects() {
		if behaviors[in.Kind].DamageReduction {
			dmg -= in.Power
		}
	}
	reduced := false
	if defender.Defending {
		dmg /= 2
		reduced = true
	}
	if dmg < 1 {
		dmg = 1
	}
	dealt := defender.ApplyDamage(dmg)
	line := attacker.Name + " attacks " + defender.Name + " for " + strconv.Itoa(dealt) + " damage"
	if reduced {
		line += " (defense stance reduces the blow)"
	}
	enc.add(line + " (" + defender.hpLine() + ")")
}

// applyAbility lands each of the ability's effect applications on its target.
func (enc *Encounter) applyAbility(actor, opponent *Entity, ability game.Ability) {
	enc.add(actor.Name + " uses " + ability.Name + "!")
	for _, eff := range ability.Effects {
		target := actor
		if eff.Target == game.TargetOpponent {
			target = opponent
		}
		in := NewInstance(eff.Kind, eff.Duration, eff.Power)
		if target.AddEffect(in) {
			enc.add(target.Name + " is now " + string(eff.Kind) + " (" + strconv.Itoa(in.Duration) + " turns)")
		} else {
			enc.add(target.Name + " resists; already " + string(eff.Kind))
		}
	}
}

func (enc *Encounter) findAbility(key string) *game.Ability {
	for i := range enc.abilities {
		if enc.abilities[i].Key == key && enc.abilities[i].MinLevel <= enc.PlayerLevel {
			return &enc.abilities[i]
		}
	}
	return nil
}
