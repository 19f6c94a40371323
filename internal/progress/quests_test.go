package progress

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jason-napier/demonling/internal/config"
	"github.com/jason-napier/demonling/internal/game"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	chains := []game.QuestChain{{
		ID: "c1", Name: "Chain One",
		QuestIDs: []string{"q1", "q2", "q3"},
	}}
	quests := []game.Quest{
		{ID: "q1", Title: "First", EnergyCost: 1, XPReward: 8, GoldReward: 10, ShardReward: 1,
			Enemy: &game.EnemyTemplate{Name: "Imp", Archetype: game.ArchetypeDemon,
				Stats: game.Stats{MaxHealth: 25, Attack: 4, Defense: 1}}},
		{ID: "q2", Title: "Second", EnergyCost: 2, XPReward: 12, GoldReward: 15},
		{ID: "q3", Title: "Third", EnergyCost: 3, XPReward: 18, GoldReward: 20},
	}
	data, err := config.New(chains, quests, nil)
	require.NoError(t, err)
	return NewEngine(data)
}

func TestIsEligible_LinearChainGating(t *testing.T) {
	e := testEngine(t)
	p := newPlayer()

	assert.True(t, e.IsEligible(p, "q1"))
	assert.False(t, e.IsEligible(p, "q2"), "q2 locked until q1 is cleared")
	assert.False(t, e.IsEligible(p, "q3"))
	assert.False(t, e.IsEligible(p, "nope"))

	p.RecordClear("q1")
	assert.True(t, e.IsEligible(p, "q1"), "cleared quests stay replayable")
	assert.True(t, e.IsEligible(p, "q2"))
	assert.False(t, e.IsEligible(p, "q3"))
}

func TestStartQuest_DeductsEnergy(t *testing.T) {
	e := testEngine(t)
	p := newPlayer()

	q, err := e.StartQuest(p, "q1", t0)
	require.NoError(t, err)
	assert.Equal(t, "q1", q.ID)
	assert.Equal(t, game.DefaultEnergyMax-1, p.Energy)
}

func TestStartQuest_FailuresLeaveRecordUntouched(t *testing.T) {
	e := testEngine(t)

	t.Run("locked quest", func(t *testing.T) {
		p := newPlayer()
		_, err := e.StartQuest(p, "q2", t0)
		require.ErrorIs(t, err, ErrInvalidQuest)
		assert.Equal(t, game.DefaultEnergyMax, p.Energy)
	})

	t.Run("unknown quest", func(t *testing.T) {
		p := newPlayer()
		_, err := e.StartQuest(p, "nope", t0)
		require.ErrorIs(t, err, ErrInvalidQuest)
	})

	t.Run("insufficient energy", func(t *testing.T) {
		p := newPlayer()
		p.Energy = 0
		_, err := e.StartQuest(p, "q1", t0)
		require.ErrorIs(t, err, ErrInsufficientEnergy)
		assert.Equal(t, 0, p.Energy)
		assert.Empty(t, p.Clears)
	})
}

func TestStartQuest_RegeneratesBeforeCheckingCost(t *testing.T) {
	e := testEngine(t)
	p := newPlayer()
	p.Energy = 0

	// One minute later a single point has accrued, enough for q1.
	q, err := e.StartQuest(p, "q1", t0.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, 1, q.EnergyCost)
	assert.Equal(t, 0, p.Energy)
}

func TestCompleteQuest_FirstClearGrantsShards(t *testing.T) {
	e := testEngine(t)
	p := newPlayer()

	r, err := e.CompleteQuest(p, "q1")
	require.NoError(t, err)
	assert.True(t, r.FirstClear)
	assert.Equal(t, 1, r.SoulShards)
	assert.Equal(t, game.DefaultGold+10, p.Gold)
	assert.Equal(t, 1, p.SoulShards)
	assert.True(t, p.HasCompleted("q1"))

	// Replays keep paying xp and gold but never shards.
	r, err = e.CompleteQuest(p, "q1")
	require.NoError(t, err)
	assert.False(t, r.FirstClear)
	assert.Equal(t, 0, r.SoulShards)
	assert.Equal(t, 1, p.SoulShards)
	assert.Equal(t, game.DefaultGold+20, p.Gold)
}

func TestApplyExperience_SingleLevelUp(t *testing.T) {
	e := testEngine(t)
	p := newPlayer()
	p.XP = 8
	p.CurrentHealth = 20

	levels := e.ApplyExperience(p, 5)
	assert.Equal(t, 1, levels)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 3, p.XP)
	assert.Equal(t, 15, p.XPToNext)

	// Level-ups raise stats and restore health.
	assert.Equal(t, game.DefaultMaxHealth+game.HealthPerLevel, p.BaseMaxHealth)
	assert.Equal(t, game.DefaultAttack+game.AttackPerLevel, p.BaseAttack)
	assert.Equal(t, game.DefaultDefense+game.DefensePerLevel, p.BaseDefense)
	assert.Equal(t, p.BaseMaxHealth, p.CurrentHealth)
}

func TestApplyExperience_MultiLevelInOneGrant(t *testing.T) {
	e := testEngine(t)
	p := newPlayer()

	// 10 + 15 = 25 consumed by two level-ups, 5 left toward threshold 22.
	levels := e.ApplyExperience(p, 30)
	assert.Equal(t, 2, levels)
	assert.Equal(t, 3, p.Level)
	assert.Equal(t, 5, p.XP)
	assert.Equal(t, 22, p.XPToNext)
}

func TestApplyExperience_ZeroIsNoOp(t *testing.T) {
	e := testEngine(t)
	p := newPlayer()

	assert.Equal(t, 0, e.ApplyExperience(p, 0))
	assert.Equal(t, 1, p.Level)
	assert.Equal(t, 0, p.XP)
}

func TestOverview_ReflectsStanding(t *testing.T) {
	e := testEngine(t)
	p := newPlayer()
	p.RecordClear("q1")

	ov := e.Overview(p)
	require.Len(t, ov, 1)
	require.Len(t, ov[0].Quests, 3)

	assert.True(t, ov[0].Quests[0].Completed)
	assert.True(t, ov[0].Quests[0].Available)
	assert.False(t, ov[0].Quests[1].Completed)
	assert.True(t, ov[0].Quests[1].Available)
	assert.False(t, ov[0].Quests[2].Available)
}
