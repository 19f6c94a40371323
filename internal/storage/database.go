package storage

import (
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/jason-napier/demonling/internal/game"
)

// OpenAndMigrate opens the sqlite database and keeps the schema updated via
// AutoMigrate. The save file is created on first run.
func OpenAndMigrate(dataSourceName string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.PlayerState{}, &game.QuestClear{}); err != nil {
		return nil, err
	}
	return db, nil
}
