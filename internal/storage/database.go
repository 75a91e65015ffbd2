package storage

import (
	"github.com/lorehaven/arenagrid/internal/game"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// OpenAndMigrate opens the SQLite database at dataSourceName, keeps the
// schema updated via AutoMigrate and seeds arenas and skills from the
// config on first run. Stats and scan settings always come from the
// config file at read time; the database stores identities only.
func OpenAndMigrate(dataSourceName string, arenasFromConfig []game.Arena, skillsFromConfig []game.Skill) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dataSourceName), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(&game.Arena{}, &game.Skill{}); err != nil {
		return nil, err
	}
	seedDefaults(db, arenasFromConfig, skillsFromConfig)
	return db, nil
}

func seedDefaults(db *gorm.DB, arenasFromConfig []game.Arena, skillsFromConfig []game.Skill) {
	var count int64
	db.Model(&game.Arena{}).Count(&count)
	if count == 0 && len(arenasFromConfig) > 0 {
		arenas := make([]game.Arena, len(arenasFromConfig))
		copy(arenas, arenasFromConfig)
		db.Create(&arenas)
	}
	count = 0
	db.Model(&game.Skill{}).Count(&count)
	if count == 0 && len(skillsFromConfig) > 0 {
		skills := make([]game.Skill, len(skillsFromConfig))
		copy(skills, skillsFromConfig)
		db.Create(&skills)
	}
}
