package service

import (
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/jason-napier/demonling/internal/config"
	"github.com/jason-napier/demonling/internal/engine"
	"github.com/jason-napier/demonling/internal/game"
	"github.com/jason-napier/demonling/internal/progress"
	"github.com/jason-napier/demonling/internal/session"
	"github.com/jason-napier/demonling/internal/storage"
)

var (
	ErrEncounterNotFound   = errors.New("encounter not found")
	ErrEncounterInProgress = errors.New("another encounter is already in progress")
)

// Service owns the game loop outside of combat: loading and saving the player
// record, gating quests, holding live encounters and applying their outcomes.
// A single mutex serializes all mutating calls; the game is single-player and
// correctness beats throughput here.
type Service struct {
	repo       storage.PlayerRepository
	progress   *progress.Engine
	encounters *session.MemoryStore[*engine.Encounter]

	mu       sync.Mutex
	activeID string
	rng      *rand.Rand
	now      func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock injects the time source, for deterministic tests.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSeed seeds the enemy-AI random source, for deterministic tests.
func WithSeed(seed int64) Option {
	return func(s *Service) { s.rng = rand.New(rand.NewSource(seed)) }
}

func New(repo storage.PlayerRepository, data *config.GameData, opts ...Option) *Service {
	s := &Service{
		repo:       repo,
		progress:   progress.NewEngine(data),
		encounters: session.NewMemoryStore[*engine.Encounter](),
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		now:        time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// loadPlayer fetches the record and brings its energy up to date in memory.
// Callers decide whether the result needs persisting.
func (s *Service) loadPlayer(now time.Time) (*game.PlayerState, int, error) {
	p, err := s.repo.LoadOrCreatePlayer(now)
	if err != nil {
		return nil, 0, err
	}
	credited := progress.Regenerate(p, now)
	return p, credited, nil
}
