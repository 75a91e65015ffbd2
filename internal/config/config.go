package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/lorehaven/arenagrid/internal/game"
	"github.com/lorehaven/arenagrid/internal/hexgrid"
)

type arenaEntry struct {
	Name             string        `json:"name"`
	AvailableAlly    []game.TileID `json:"available_ally"`
	AvailableEnemy   []game.TileID `json:"available_enemy"`
	Blocked          []game.TileID `json:"blocked"`
	BlockedBreakable []game.TileID `json:"blocked_breakable"`
}

type skillEntry struct {
	Key         string          `json:"key"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Scan        game.ScanConfig `json:"scan"`
}

type rawConfig struct {
	ArenaList []arenaEntry `json:"arena_list"`
	SkillList []skillEntry `json:"skill_list"`
	Server    *struct {
		Address string `json:"address"`
	} `json:"server"`
}

// LoadedConfig contains the arenas and skills to seed and the server
// address to bind to.
type LoadedConfig struct {
	Arenas        []game.Arena
	Skills        []game.Skill
	ServerAddress string
}

// LoadConfig reads the configuration file at path. It requires the keys
// `arena_list` and `skill_list` (snake_case) and validates every entry:
// tile ids in 1..45, the four tile sets of an arena pairwise disjoint,
// unique arena names and skill keys, and known scan settings.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if len(rc.ArenaList) == 0 {
		return nil, fmt.Errorf("config file %s: arena_list is empty (provide an 'arena_list' array)", path)
	}
	if len(rc.SkillList) == 0 {
		return nil, fmt.Errorf("config file %s: skill_list is empty (provide a 'skill_list' array)", path)
	}

	arenas := make([]game.Arena, 0, len(rc.ArenaList))
	nameSet := make(map[string]struct{}, len(rc.ArenaList))
	for _, a := range rc.ArenaList {
		if strings.TrimSpace(a.Name) == "" {
			return nil, fmt.Errorf("config file %s: arena entry missing 'name'", path)
		}
		ln := strings.ToLower(strings.TrimSpace(a.Name))
		if _, exists := nameSet[ln]; exists {
			return nil, fmt.Errorf("config file %s: duplicate arena name '%s'", path, a.Name)
		}
		nameSet[ln] = struct{}{}
		if err := validateArenaTiles(a); err != nil {
			return nil, fmt.Errorf("config file %s: arena '%s': %w", path, a.Name, err)
		}
		arenas = append(arenas, game.Arena{
			Name:             a.Name,
			AvailableAlly:    a.AvailableAlly,
			AvailableEnemy:   a.AvailableEnemy,
			Blocked:          a.Blocked,
			BlockedBreakable: a.BlockedBreakable,
		})
	}

	skills := make([]game.Skill, 0, len(rc.SkillList))
	keySet := make(map[string]struct{}, len(rc.SkillList))
	for _, s := range rc.SkillList {
		if strings.TrimSpace(s.Key) == "" {
			return nil, fmt.Errorf("config file %s: skill entry missing 'key'", path)
		}
		if _, exists := keySet[s.Key]; exists {
			return nil, fmt.Errorf("config file %s: duplicate skill key '%s'", path, s.Key)
		}
		keySet[s.Key] = struct{}{}
		if err := validateScan(s.Scan); err != nil {
			return nil, fmt.Errorf("config file %s: skill '%s': %w", path, s.Key, err)
		}
		skills = append(skills, game.Skill{
			Key:         s.Key,
			Name:        s.Name,
			Description: s.Description,
			Scan:        s.Scan,
		})
	}

	addr := ":8080"
	if rc.Server != nil && rc.Server.Address != "" {
		addr = rc.Server.Address
	}

	return &LoadedConfig{Arenas: arenas, Skills: skills, ServerAddress: addr}, nil
}

// validateArenaTiles checks tile ranges and that no tile appears in more
// than one of the four sets.
func validateArenaTiles(a arenaEntry) error {
	sets := []struct {
		name  string
		tiles []game.TileID
	}{
		{"available_ally", a.AvailableAlly},
		{"available_enemy", a.AvailableEnemy},
		{"blocked", a.Blocked},
		{"blocked_breakable", a.BlockedBreakable},
	}
	seen := make(map[game.TileID]string, hexgrid.TileCount)
	for _, set := range sets {
		for _, t := range set.tiles {
			if !hexgrid.Valid(t) {
				return fmt.Errorf("%s contains tile %d outside 1..%d", set.name, t, hexgrid.TileCount)
			}
			if prev, dup := seen[t]; dup {
				return fmt.Errorf("tile %d appears in both %s and %s (sets must be disjoint)", t, prev, set.name)
			}
			seen[t] = set.name
		}
	}
	return nil
}

func validateScan(sc game.ScanConfig) error {
	if !sc.Strategy.Valid() {
		return fmt.Errorf("unknown scan strategy %q", sc.Strategy)
	}
	switch sc.Target {
	case "", game.TargetOpponents, game.TargetAllies:
	default:
		return fmt.Errorf("unknown scan target %q", sc.Target)
	}
	switch sc.Extreme {
	case "", game.Rearmost, game.Frontmost:
	default:
		return fmt.Errorf("unknown extreme %q", sc.Extreme)
	}
	if sc.Extreme != "" && sc.Strategy != game.StrategyRearFrontRow {
		return fmt.Errorf("extreme is only meaningful for the %s strategy", game.StrategyRearFrontRow)
	}
	return nil
}
