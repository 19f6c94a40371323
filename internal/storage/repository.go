package storage

import (
	"time"

	"github.com/jason-napier/demonling/internal/game"
)

// PlayerRepository is the persistence surface the service layer depends on.
// The game is single-player, so the repository manages exactly one record.
type PlayerRepository interface {
	// LoadOrCreatePlayer returns the player record, creating a first-run
	// record with defaults when none exists yet. The record's clears are
	// always populated.
	LoadOrCreatePlayer(now time.Time) (*game.PlayerState, error)
	// SavePlayer persists the record and its quest clears in one
	// transaction.
	SavePlayer(p *game.PlayerState) error
}
