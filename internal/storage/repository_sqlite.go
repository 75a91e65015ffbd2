package storage

import (
	"strings"

	"github.com/lorehaven/arenagrid/internal/dedupe"
	"github.com/lorehaven/arenagrid/internal/game"
	"github.com/lorehaven/arenagrid/internal/keys"
	"github.com/lorehaven/arenagrid/internal/logging"
	"gorm.io/gorm"
)

type sqliteRepository struct {
	db *gorm.DB
	// configByName maps lowercase arena name -> config definition (tile sets).
	configByName map[string]game.Arena
	// configByKey maps skill key -> config definition (scan settings).
	configByKey map[string]game.Skill
}

func NewSQLiteRepository(db *gorm.DB, configArenas []game.Arena, configSkills []game.Skill) Repository {
	am := make(map[string]game.Arena, len(configArenas))
	for _, a := range configArenas {
		am[strings.ToLower(a.Name)] = a
	}
	sm := make(map[string]game.Skill, len(configSkills))
	for _, s := range configSkills {
		sm[s.Key] = s
	}
	return &sqliteRepository{db: db, configByName: am, configByKey: sm}
}

// applyArenaConfig overrides tile sets from config when available
// (config is source of truth). A stored arena missing from the config
// keeps its persisted sets, which likely means a stale config file.
func (r *sqliteRepository) applyArenaConfig(a *game.Arena) {
	conf, ok := r.configByName[strings.ToLower(a.Name)]
	if !ok {
		logging.Warn("arena not present in config, serving stored tile sets", logging.Fields{"name": a.Name})
		return
	}
	a.AvailableAlly = conf.AvailableAlly
	a.AvailableEnemy = conf.AvailableEnemy
	a.Blocked = conf.Blocked
	a.BlockedBreakable = conf.BlockedBreakable
}

func (r *sqliteRepository) applySkillConfig(s *game.Skill) {
	conf, ok := r.configByKey[s.Key]
	if !ok {
		logging.Warn("skill not present in config, serving stored row only", logging.Fields{"key": s.Key})
		return
	}
	s.Name = conf.Name
	s.Description = conf.Description
	s.Scan = conf.Scan
}

func (r *sqliteRepository) GetArenas() ([]game.Arena, error) {
	var arenas []game.Arena
	if err := r.db.Order("name").Find(&arenas).Error; err != nil {
		return nil, err
	}
	for i := range arenas {
		r.applyArenaConfig(&arenas[i])
	}
	return arenas, nil
}

// GetArenaByName loads one arena. Lookups are funneled through a shared
// singleflight group so concurrent requests for the same arena hit the
// database once.
func (r *sqliteRepository) GetArenaByName(name string) (*game.Arena, error) {
	v, err, _ := dedupe.ArenaGroup.Do(keys.ArenaKey(name), func() (interface{}, error) {
		var a game.Arena
		if err := r.db.Where("lower(name) = ?", strings.ToLower(strings.TrimSpace(name))).First(&a).Error; err != nil {
			return nil, err
		}
		r.applyArenaConfig(&a)
		return &a, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*game.Arena), nil
}

func (r *sqliteRepository) GetSkills() ([]game.Skill, error) {
	var skills []game.Skill
	if err := r.db.Order("key").Find(&skills).Error; err != nil {
		return nil, err
	}
	for i := range skills {
		r.applySkillConfig(&skills[i])
	}
	return skills, nil
}

func (r *sqliteRepository) GetSkillByKey(key string) (*game.Skill, error) {
	var s game.Skill
	if err := r.db.Where("key = ?", key).First(&s).Error; err != nil {
		return nil, err
	}
	r.applySkillConfig(&s)
	return &s, nil
}
