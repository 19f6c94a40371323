package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/jason-napier/demonling/internal/game"
)

// GameData is the static content the server runs on: quest chains, their
// quests, and the player's special-ability list. It is loaded once at startup
// and never mutated, so it is safe to share across requests.
type GameData struct {
	Chains          []game.QuestChain `yaml:"chains"`
	Quests          []game.Quest      `yaml:"quests"`
	PlayerAbilities []game.Ability    `yaml:"player_abilities"`

	quests  map[string]*game.Quest
	chainOf map[string]*game.QuestChain
	prereq  map[string]string
}

// New indexes and validates the given content. Every quest must belong to
// exactly one chain, every chain entry must resolve, and ability effects must
// use known effect kinds.
func New(chains []game.QuestChain, quests []game.Quest, abilities []game.Ability) (*GameData, error) {
	d := &GameData{
		Chains:          chains,
		Quests:          quests,
		PlayerAbilities: abilities,
	}
	if err := d.index(); err != nil {
		return nil, err
	}
	return d, nil
}

// Load reads game data from a YAML file.
func Load(path string) (*GameData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game data: %w", err)
	}
	var d GameData
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("parse game data: %w", err)
	}
	if err := d.index(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *GameData) index() error {
	d.quests = make(map[string]*game.Quest, len(d.Quests))
	for i := range d.Quests {
		q := &d.Quests[i]
		if q.ID == "" {
			return fmt.Errorf("quest %d: missing id", i)
		}
		if _, dup := d.quests[q.ID]; dup {
			return fmt.Errorf("quest %s: duplicate id", q.ID)
		}
		if q.EnergyCost <= 0 {
			return fmt.Errorf("quest %s: energy cost must be positive", q.ID)
		}
		if q.XPReward < 0 || q.GoldReward < 0 || q.ShardReward < 0 {
			return fmt.Errorf("quest %s: rewards must be non-negative", q.ID)
		}
		if q.Enemy != nil {
			switch q.Enemy.Archetype {
			case game.ArchetypeDemon, game.ArchetypeUndead, game.ArchetypeBeast, game.ArchetypeElemental:
			default:
				return fmt.Errorf("quest %s: unknown enemy archetype %q", q.ID, q.Enemy.Archetype)
			}
			if q.Enemy.Stats.MaxHealth <= 0 {
				return fmt.Errorf("quest %s: enemy %s needs positive max health", q.ID, q.Enemy.Name)
			}
		}
		d.quests[q.ID] = q
	}

	d.chainOf = make(map[string]*game.QuestChain, len(d.Quests))
	d.prereq = make(map[string]string, len(d.Quests))
	seenChains := make(map[string]bool, len(d.Chains))
	for i := range d.Chains {
		c := &d.Chains[i]
		if c.ID == "" {
			return fmt.Errorf("chain %d: missing id", i)
		}
		if seenChains[c.ID] {
			return fmt.Errorf("chain %s: duplicate id", c.ID)
		}
		seenChains[c.ID] = true
		if len(c.QuestIDs) == 0 {
			return fmt.Errorf("chain %s: no quests", c.ID)
		}
		for j, qid := range c.QuestIDs {
			if _, ok := d.quests[qid]; !ok {
				return fmt.Errorf("chain %s: unknown quest %s", c.ID, qid)
			}
			if _, claimed := d.chainOf[qid]; claimed {
				return fmt.Errorf("quest %s: listed in more than one chain", qid)
			}
			d.chainOf[qid] = c
			if j > 0 {
				d.prereq[qid] = c.QuestIDs[j-1]
			}
		}
	}
	for id := range d.quests {
		if _, ok := d.chainOf[id]; !ok {
			return fmt.Errorf("quest %s: not listed in any chain", id)
		}
	}

	seenAbilities := make(map[string]bool, len(d.PlayerAbilities))
	for _, a := range d.PlayerAbilities {
		if a.Key == "" {
			return fmt.Errorf("player ability %q: missing key", a.Name)
		}
		if seenAbilities[a.Key] {
			return fmt.Errorf("player ability %s: duplicate key", a.Key)
		}
		seenAbilities[a.Key] = true
		if len(a.Effects) == 0 {
			return fmt.Errorf("player ability %s: no effects", a.Key)
		}
		for _, eff := range a.Effects {
			if !game.ValidEffectKind(eff.Kind) {
				return fmt.Errorf("player ability %s: unknown effect kind %q", a.Key, eff.Kind)
			}
			if eff.Target != game.TargetSelf && eff.Target != game.TargetOpponent {
				return fmt.Errorf("player ability %s: unknown target %q", a.Key, eff.Target)
			}
		}
	}
	return nil
}

// Quest looks up a quest by id.
func (d *GameData) Quest(id string) (*game.Quest, bool) {
	q, ok := d.quests[id]
	return q, ok
}

// ChainOf returns the chain a quest belongs to.
func (d *GameData) ChainOf(questID string) (*game.QuestChain, bool) {
	c, ok := d.chainOf[questID]
	return c, ok
}

// Prerequisite returns the quest that must be completed before the given one.
// The first quest of a chain has none.
func (d *GameData) Prerequisite(questID string) (string, bool) {
	p, ok := d.prereq[questID]
	return p, ok
}
