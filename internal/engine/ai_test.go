package engine

import (
	"math/rand"
	"testing"

	"github.com/jason-napier/demonling/internal/game"
)

func TestChooseEnemyAction_EnragedAlwaysAttacks(t *testing.T) {
	e := NewEntity("Demon", game.Stats{MaxHealth: 40, Attack: 6, Defense: 2})
	e.AddEffect(NewInstance(game.Enraged, 2, 3))

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		action, ability := ChooseEnemyAction(e, game.ArchetypeDemon, rng)
		if action != ActionAttack || ability != nil {
			t.Fatalf("enraged enemy must always attack, got %s (%v)", action, ability)
		}
	}
}

func TestChooseEnemyAction_LowHPPrefersSelfSpecials(t *testing.T) {
	e := NewEntity("Wight", game.Stats{MaxHealth: 40, Attack: 6, Defense: 2})
	e.Health = 8 // 20%, below the low-HP threshold

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 200; i++ {
		action, ability := ChooseEnemyAction(e, game.ArchetypeUndead, rng)
		if action != ActionSpecial {
			continue
		}
		if !targetsSelf(*ability) {
			t.Fatalf("low-HP undead should pick its self special, got %s", ability.Key)
		}
		if ability.Key != "dark_communion" {
			t.Fatalf("undead self special is dark_communion, got %s", ability.Key)
		}
	}
}

func TestChooseEnemyAction_HealthyPrefersOffensiveSpecials(t *testing.T) {
	e := NewEntity("Drake", game.Stats{MaxHealth: 40, Attack: 6, Defense: 2})

	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		action, ability := ChooseEnemyAction(e, game.ArchetypeElemental, rng)
		if action == ActionDefend {
			t.Fatalf("healthy enemy should not defend")
		}
		if action == ActionSpecial && targetsSelf(*ability) {
			t.Fatalf("healthy elemental should favor offensive specials, got %s", ability.Key)
		}
	}
}

func TestChooseEnemyAction_DeterministicForSeed(t *testing.T) {
	run := func() []Action {
		e := NewEntity("Beast", game.Stats{MaxHealth: 40, Attack: 6, Defense: 2})
		rng := rand.New(rand.NewSource(42))
		out := make([]Action, 0, 20)
		for i := 0; i < 20; i++ {
			action, _ := ChooseEnemyAction(e, game.ArchetypeBeast, rng)
			out = append(out, action)
		}
		return out
	}
	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("choice %d differs for identical seed: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestChooseEnemyAction_SkipsWastedSelfBuff(t *testing.T) {
	e := NewEntity("Drake", game.Stats{MaxHealth: 40, Attack: 6, Defense: 2})
	e.Health = 8
	// Already fully shielded: the self special would be a wasted turn.
	e.AddEffect(NewInstance(game.Shielded, 5, 6))

	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		action, ability := ChooseEnemyAction(e, game.ArchetypeElemental, rng)
		if action == ActionSpecial && ability.Key == "stone_ward" {
			t.Fatalf("AI should not reapply an already-active self buff")
		}
	}
}

func TestArchetypeAbilities_AllArchetypesCovered(t *testing.T) {
	for _, a := range []game.Archetype{game.ArchetypeDemon, game.ArchetypeUndead, game.ArchetypeBeast, game.ArchetypeElemental} {
		table := ArchetypeAbilities(a)
		if len(table) < 2 || len(table) > 3 {
			t.Fatalf("archetype %s should expose 2-3 specials, got %d", a, len(table))
		}
		for _, ab := range table {
			if len(ab.Effects) == 0 {
				t.Fatalf("ability %s has no effects", ab.Key)
			}
			for _, eff := range ab.Effects {
				if !KnownKind(eff.Kind) {
					t.Fatalf("ability %s applies unknown effect kind %s", ab.Key, eff.Kind)
				}
			}
		}
	}
}
