package storage

import (
	"github.com/lorehaven/arenagrid/internal/game"
)

type Repository interface {
	GetArenas() ([]game.Arena, error)
	// GetArenaByName returns an arena by its name (case-insensitive).
	GetArenaByName(name string) (*game.Arena, error)
	GetSkills() ([]game.Skill, error)
	// GetSkillByKey returns a skill by its stable config key.
	GetSkillByKey(key string) (*game.Skill, error)
}
