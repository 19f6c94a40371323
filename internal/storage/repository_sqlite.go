package storage

import (
	"errors"
	"time"

	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"

	"github.com/jason-napier/demonling/internal/game"
	"github.com/jason-napier/demonling/internal/logging"
)

type sqliteRepository struct {
	db *gorm.DB
	// loads collapses concurrent first-run creation into a single insert.
	loads singleflight.Group
}

func NewSQLiteRepository(db *gorm.DB) PlayerRepository {
	return &sqliteRepository{db: db}
}

func (r *sqliteRepository) LoadOrCreatePlayer(now time.Time) (*game.PlayerState, error) {
	v, err, _ := r.loads.Do("player", func() (interface{}, error) {
		var p game.PlayerState
		err := r.db.Preload("Clears").Order("id").First(&p).Error
		if err == nil {
			p.Normalize(now)
			return &p, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}

		fresh := game.NewPlayerState(now)
		if err := r.db.Create(fresh).Error; err != nil {
			return nil, err
		}
		logging.Info("created first-run player record", logging.Fields{
			"player_id": fresh.ID,
		})
		return fresh, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*game.PlayerState), nil
}

func (r *sqliteRepository) SavePlayer(p *game.PlayerState) error {
	// FullSaveAssociations keeps the quest_clears rows in step with the
	// in-memory completed set within the same transaction.
	return r.db.Session(&gorm.Session{FullSaveAssociations: true}).Save(p).Error
}
