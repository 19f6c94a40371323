package config

import "github.com/jason-napier/demonling/internal/game"

// Default returns the built-in campaign content used when no game-data file is
// configured.
func Default() *GameData {
	d, err := New(defaultChains(), defaultQuests(), defaultPlayerAbilities())
	if err != nil {
		// The built-in tables are validated by tests; a failure here is a
		// programming error, not a runtime condition.
		panic(err)
	}
	return d
}

func defaultChains() []game.QuestChain {
	return []game.QuestChain{
		{
			ID:          "ash_and_bone",
			Name:        "Ash & Bone",
			Description: "Claw your way out of the ash pits and take your first territory.",
			QuestIDs: []string{
				"ash_01", "ash_02", "ash_03", "ash_04", "ash_05",
			},
		},
		{
			ID:          "blood_and_iron",
			Name:        "Blood & Iron",
			Description: "The iron marches beyond the pits belong to older, harder things.",
			QuestIDs: []string{
				"iron_01", "iron_02", "iron_03", "iron_04", "iron_05",
			},
		},
	}
}

func defaultQuests() []game.Quest {
	return []game.Quest{
		{
			ID:          "ash_01",
			Title:       "First Blood",
			Description: "A lesser imp disputes your corner of the pit. Correct it.",
			EnergyCost:  1, XPReward: 8, GoldReward: 10,
			Enemy: &game.EnemyTemplate{
				Name: "Lesser Imp", Archetype: game.ArchetypeDemon,
				Stats: game.Stats{MaxHealth: 25, Attack: 4, Defense: 1, Agility: 3, Magic: 1},
			},
		},
		{
			ID:          "ash_02",
			Title:       "Rattling Bones",
			Description: "Something dead refuses to stay buried in the ash.",
			EnergyCost:  1, XPReward: 12, GoldReward: 15,
			Enemy: &game.EnemyTemplate{
				Name: "Bone Skeleton", Archetype: game.ArchetypeUndead,
				Stats: game.Stats{MaxHealth: 30, Attack: 5, Defense: 2, Agility: 2, Magic: 1},
			},
		},
		{
			ID:          "ash_03",
			Title:       "Whispers in the Ash",
			Description: "A wraith of cinders circles your territory at night.",
			EnergyCost:  2, XPReward: 18, GoldReward: 22,
			Enemy: &game.EnemyTemplate{
				Name: "Ash Wraith", Archetype: game.ArchetypeElemental,
				Stats: game.Stats{MaxHealth: 35, Attack: 6, Defense: 2, Agility: 5, Magic: 4},
			},
		},
		{
			ID:          "ash_04",
			Title:       "A Rival's Claim",
			Description: "A corrupted demon wants the pit for itself.",
			EnergyCost:  2, XPReward: 26, GoldReward: 30,
			Enemy: &game.EnemyTemplate{
				Name: "Corrupted Demon", Archetype: game.ArchetypeDemon,
				Stats: game.Stats{MaxHealth: 45, Attack: 7, Defense: 3, Agility: 3, Magic: 3},
			},
		},
		{
			ID:          "ash_05",
			Title:       "Lord of the Pits",
			Description: "The Ash Lord himself descends to put you back in your place.",
			EnergyCost:  3, XPReward: 40, GoldReward: 50, ShardReward: 1,
			Enemy: &game.EnemyTemplate{
				Name: "Ash Lord", Archetype: game.ArchetypeDemon,
				Stats: game.Stats{MaxHealth: 60, Attack: 9, Defense: 4, Agility: 4, Magic: 5},
			},
		},
		{
			ID:          "iron_01",
			Title:       "Into the Marches",
			Description: "A dire wolf pack hunts the border of the iron marches.",
			EnergyCost:  2, XPReward: 30, GoldReward: 28,
			Enemy: &game.EnemyTemplate{
				Name: "Dire Wolf", Archetype: game.ArchetypeBeast,
				Stats: game.Stats{MaxHealth: 40, Attack: 8, Defense: 2, Agility: 6, Magic: 0},
			},
		},
		{
			ID:          "iron_02",
			Title:       "The Blood Stalker",
			Description: "Something has been bleeding the wolf pack dry. Find it first.",
			EnergyCost:  2, XPReward: 36, GoldReward: 34,
			Enemy: &game.EnemyTemplate{
				Name: "Blood Stalker", Archetype: game.ArchetypeBeast,
				Stats: game.Stats{MaxHealth: 48, Attack: 9, Defense: 3, Agility: 7, Magic: 1},
			},
		},
		{
			ID:          "iron_03",
			Title:       "Forge Pact",
			Description: "The march smiths will arm you, for a price already paid in blood.",
			EnergyCost:  1, XPReward: 20, GoldReward: 60,
		},
		{
			ID:          "iron_04",
			Title:       "The Grave Knight",
			Description: "An armored revenant guards the road to the iron keep.",
			EnergyCost:  3, XPReward: 48, GoldReward: 45,
			Enemy: &game.EnemyTemplate{
				Name: "Grave Knight", Archetype: game.ArchetypeUndead,
				Stats: game.Stats{MaxHealth: 55, Attack: 9, Defense: 6, Agility: 2, Magic: 2},
			},
		},
		{
			ID:          "iron_05",
			Title:       "Tyrant of Iron",
			Description: "The Iron Tyrant holds the keep. Take it from him.",
			EnergyCost:  3, XPReward: 70, GoldReward: 80, ShardReward: 2,
			Enemy: &game.EnemyTemplate{
				Name: "Iron Tyrant", Archetype: game.ArchetypeElemental,
				Stats: game.Stats{MaxHealth: 70, Attack: 11, Defense: 6, Agility: 3, Magic: 6},
			},
		},
	}
}

func defaultPlayerAbilities() []game.Ability {
	return []game.Ability{
		{
			Key: "hellfire", Name: "Hellfire", MinLevel: 1,
			Description: "Sear the enemy with lingering flame.",
			Effects: []game.EffectApplication{
				{Kind: game.Burned, Target: game.TargetOpponent, Duration: 3, Power: 5},
			},
		},
		{
			Key: "demon_hide", Name: "Demon Hide", MinLevel: 3,
			Description: "Harden your hide against incoming blows.",
			Effects: []game.EffectApplication{
				{Kind: game.Shielded, Target: game.TargetSelf, Duration: 2, Power: 5},
			},
		},
		{
			Key: "blood_frenzy", Name: "Blood Frenzy", MinLevel: 5,
			Description: "Give in to the frenzy. Attacks only, but they hit harder.",
			Effects: []game.EffectApplication{
				{Kind: game.Enraged, Target: game.TargetSelf, Duration: 3, Power: 3},
			},
		},
	}
}
