package service

import (
	"errors"
	"testing"
	"time"

	"github.com/jason-napier/demonling/internal/config"
	"github.com/jason-napier/demonling/internal/engine"
	"github.com/jason-napier/demonling/internal/game"
	"github.com/jason-napier/demonling/internal/progress"
)

// mockRepo mimics the sqlite repository: every load returns a fresh copy of
// the stored record, so unsaved mutations are lost like they would be against
// the database.
type mockRepo struct {
	stored  *game.PlayerState
	saves   int
	saveErr error
}

func (m *mockRepo) LoadOrCreatePlayer(now time.Time) (*game.PlayerState, error) {
	if m.stored == nil {
		m.stored = game.NewPlayerState(now)
	}
	cp := *m.stored
	cp.Clears = append([]game.QuestClear(nil), m.stored.Clears...)
	return &cp, nil
}

func (m *mockRepo) SavePlayer(p *game.PlayerState) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	cp := *p
	cp.Clears = append([]game.QuestClear(nil), p.Clears...)
	m.stored = &cp
	return nil
}

var testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func testData(t *testing.T) *config.GameData {
	t.Helper()
	chains := []game.QuestChain{{
		ID: "c1", Name: "Test Chain",
		QuestIDs: []string{"frail", "story", "brute"},
	}}
	quests := []game.Quest{
		{ID: "frail", Title: "Frail Foe", EnergyCost: 2, XPReward: 4, GoldReward: 10, ShardReward: 1,
			Enemy: &game.EnemyTemplate{Name: "Frail Imp", Archetype: game.ArchetypeDemon,
				Stats: game.Stats{MaxHealth: 1, Attack: 1, Defense: 0}}},
		{ID: "story", Title: "A Quiet Deal", EnergyCost: 1, XPReward: 3, GoldReward: 25},
		{ID: "brute", Title: "The Brute", EnergyCost: 2, XPReward: 10, GoldReward: 10,
			Enemy: &game.EnemyTemplate{Name: "Brute", Archetype: game.ArchetypeBeast,
				Stats: game.Stats{MaxHealth: 100, Attack: 50, Defense: 20}}},
	}
	data, err := config.New(chains, quests, nil)
	if err != nil {
		t.Fatalf("test data invalid: %v", err)
	}
	return data
}

func newTestService(t *testing.T, repo *mockRepo) *Service {
	t.Helper()
	return New(repo, testData(t), WithClock(func() time.Time { return testTime }), WithSeed(1))
}

func TestStartQuest_CombatOpensEncounterWithoutPersisting(t *testing.T) {
	repo := &mockRepo{}
	s := newTestService(t, repo)

	res, err := s.StartQuest("frail")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Encounter == nil || res.Reward != nil {
		t.Fatalf("combat quest must open an encounter, got %+v", res)
	}
	if repo.saves != 0 {
		t.Fatalf("nothing should be persisted before the encounter ends, saves=%d", repo.saves)
	}
	if _, err := s.Encounter(res.Encounter.ID); err != nil {
		t.Fatalf("open encounter should be retrievable: %v", err)
	}
}

func TestStartQuest_InsufficientEnergy(t *testing.T) {
	repo := &mockRepo{stored: game.NewPlayerState(testTime)}
	repo.stored.Energy = 1
	s := newTestService(t, repo)

	_, err := s.StartQuest("frail")
	if !errors.Is(err, progress.ErrInsufficientEnergy) {
		t.Fatalf("expected ErrInsufficientEnergy, got %v", err)
	}
	if repo.saves != 0 {
		t.Fatalf("failed start must not persist, saves=%d", repo.saves)
	}
}

func TestStartQuest_LockedQuest(t *testing.T) {
	repo := &mockRepo{}
	s := newTestService(t, repo)

	_, err := s.StartQuest("story")
	if !errors.Is(err, progress.ErrInvalidQuest) {
		t.Fatalf("expected ErrInvalidQuest for a locked quest, got %v", err)
	}
}

func TestStartQuest_NarrativeCompletesImmediately(t *testing.T) {
	repo := &mockRepo{stored: game.NewPlayerState(testTime)}
	repo.stored.Clears = []game.QuestClear{{QuestID: "frail"}}
	s := newTestService(t, repo)

	res, err := s.StartQuest("story")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Encounter != nil || res.Reward == nil {
		t.Fatalf("narrative quest must complete immediately, got %+v", res)
	}
	if repo.saves != 1 {
		t.Fatalf("narrative completion persists once, saves=%d", repo.saves)
	}
	if got := repo.stored.Energy; got != game.DefaultEnergyMax-1 {
		t.Fatalf("energy cost not persisted, energy=%d", got)
	}
	if got := repo.stored.Gold; got != game.DefaultGold+25 {
		t.Fatalf("gold reward not persisted, gold=%d", got)
	}
	if !repo.stored.HasCompleted("story") {
		t.Fatalf("clear not recorded")
	}
}

func TestStartQuest_OnlyOneActiveEncounter(t *testing.T) {
	repo := &mockRepo{}
	s := newTestService(t, repo)

	if _, err := s.StartQuest("frail"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := s.StartQuest("frail")
	if !errors.Is(err, ErrEncounterInProgress) {
		t.Fatalf("expected ErrEncounterInProgress, got %v", err)
	}
}

func TestSubmitAction_VictoryAppliesOutcomeOnce(t *testing.T) {
	repo := &mockRepo{}
	s := newTestService(t, repo)

	res, err := s.StartQuest("frail")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := s.SubmitAction(res.Encounter.ID, engine.ActionAttack, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Encounter.State != engine.StateVictory {
		t.Fatalf("one attack should fell the frail imp, state=%s", out.Encounter.State)
	}
	if out.Reward == nil || !out.Reward.FirstClear || out.Reward.SoulShards != 1 {
		t.Fatalf("victory should grant the first-clear reward, got %+v", out.Reward)
	}
	if repo.saves != 1 {
		t.Fatalf("outcome must be applied in one persisted write, saves=%d", repo.saves)
	}
	if got := repo.stored.Energy; got != game.DefaultEnergyMax-2 {
		t.Fatalf("energy cost applied at the end, energy=%d", got)
	}
	if got := repo.stored.Gold; got != game.DefaultGold+10 {
		t.Fatalf("gold not applied, gold=%d", got)
	}
	if !repo.stored.HasCompleted("frail") {
		t.Fatalf("clear not recorded")
	}

	// The encounter is gone and a new quest may start.
	if _, err := s.Encounter(res.Encounter.ID); !errors.Is(err, ErrEncounterNotFound) {
		t.Fatalf("finished encounter should be discarded, got %v", err)
	}
	if got := s.encounters.Len(); got != 0 {
		t.Fatalf("store should be empty after the outcome is applied, len=%d", got)
	}
	if _, err := s.StartQuest("frail"); err != nil {
		t.Fatalf("next quest should be startable: %v", err)
	}
}

func TestSubmitAction_RetryAppliesOutcomeAfterSaveFailure(t *testing.T) {
	repo := &mockRepo{}
	s := newTestService(t, repo)

	res, err := s.StartQuest("frail")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	repo.saveErr = errors.New("disk full")
	if _, err := s.SubmitAction(res.Encounter.ID, engine.ActionAttack, ""); err == nil {
		t.Fatalf("save failure must surface to the caller")
	}
	if repo.stored != nil && repo.stored.HasCompleted("frail") {
		t.Fatalf("failed apply must not record a clear")
	}
	// The terminal encounter is kept so the client can retry.
	if _, err := s.Encounter(res.Encounter.ID); err != nil {
		t.Fatalf("encounter must survive a failed apply: %v", err)
	}

	repo.saveErr = nil
	out, err := s.SubmitAction(res.Encounter.ID, engine.ActionAttack, "")
	if err != nil {
		t.Fatalf("retry should re-trigger the apply, got error: %v", err)
	}
	if out.Encounter.State != engine.StateVictory {
		t.Fatalf("retry must not re-resolve the fight, state=%s", out.Encounter.State)
	}
	if out.Reward == nil || !out.Reward.FirstClear || out.Reward.SoulShards != 1 {
		t.Fatalf("retried apply should grant the reward, got %+v", out.Reward)
	}
	if repo.saves != 1 {
		t.Fatalf("outcome applied once, saves=%d", repo.saves)
	}
	if !repo.stored.HasCompleted("frail") {
		t.Fatalf("clear not recorded on retry")
	}
	if got := s.encounters.Len(); got != 0 {
		t.Fatalf("encounter should be discarded after a successful retry, len=%d", got)
	}
	if _, err := s.StartQuest("frail"); err != nil {
		t.Fatalf("next quest should be startable after the retry: %v", err)
	}
}

func TestSubmitAction_DefeatCostsEnergyGrantsNothing(t *testing.T) {
	repo := &mockRepo{stored: game.NewPlayerState(testTime)}
	repo.stored.Clears = []game.QuestClear{{QuestID: "frail"}, {QuestID: "story"}}
	repo.stored.CurrentHealth = 2
	s := newTestService(t, repo)

	res, err := s.StartQuest("brute")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out, err := s.SubmitAction(res.Encounter.ID, engine.ActionAttack, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Encounter.State != engine.StateDefeat {
		t.Fatalf("2 HP against the brute must end in defeat, state=%s", out.Encounter.State)
	}
	if out.Reward != nil {
		t.Fatalf("defeat grants no reward, got %+v", out.Reward)
	}
	if repo.stored.HasCompleted("brute") {
		t.Fatalf("defeat must not record a clear")
	}
	if got := repo.stored.Energy; got != game.DefaultEnergyMax-2 {
		t.Fatalf("energy cost still applies on defeat, energy=%d", got)
	}
	if got := repo.stored.CurrentHealth; got != repo.stored.BaseMaxHealth {
		t.Fatalf("player should recover to full after defeat, hp=%d", got)
	}
}

func TestSubmitAction_UnknownEncounter(t *testing.T) {
	repo := &mockRepo{}
	s := newTestService(t, repo)

	_, err := s.SubmitAction("nope", engine.ActionAttack, "")
	if !errors.Is(err, ErrEncounterNotFound) {
		t.Fatalf("expected ErrEncounterNotFound, got %v", err)
	}
}

func TestPlayer_PersistsRegeneratedEnergy(t *testing.T) {
	repo := &mockRepo{stored: game.NewPlayerState(testTime)}
	repo.stored.Energy = 3
	now := testTime
	s := New(repo, testData(t), WithClock(func() time.Time { return now }), WithSeed(1))

	now = testTime.Add(5 * time.Minute)
	p, err := s.Player()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Energy != 8 {
		t.Fatalf("expected 5 credited points, energy=%d", p.Energy)
	}
	if repo.saves != 1 {
		t.Fatalf("credited energy should be persisted, saves=%d", repo.saves)
	}
	if repo.stored.Energy != 8 {
		t.Fatalf("persisted record not updated, energy=%d", repo.stored.Energy)
	}
}
