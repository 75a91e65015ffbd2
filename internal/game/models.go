package game

import (
	"gorm.io/gorm"
)

// TileID identifies one of the 45 battlefield tiles. Tiles are numbered
// 1..45 row by row from the ally back edge; 0 is never a valid id.
type TileID int

// Team is the side a token fights for.
type Team string

const (
	TeamAlly  Team = "ally"
	TeamEnemy Team = "enemy"
)

// Opponent returns the opposing team.
func (t Team) Opponent() Team {
	if t == TeamAlly {
		return TeamEnemy
	}
	return TeamAlly
}

// Valid reports whether the team value is one of the known constants.
func (t Team) Valid() bool { return t == TeamAlly || t == TeamEnemy }

// TokenKind distinguishes main characters from summoned units. Summons
// are invisible to targeting unless a skill opts in.
type TokenKind string

const (
	KindMain   TokenKind = "main"
	KindSummon TokenKind = "summon"
)

// Valid reports whether the kind value is one of the known constants.
func (k TokenKind) Valid() bool { return k == KindMain || k == KindSummon }

// Token is a unit standing on a tile.
type Token struct {
	Team Team      `json:"team"`
	Kind TokenKind `json:"kind"`
}

// Occupancy is a snapshot of the battlefield: which tiles hold which
// tokens. Absent keys are empty tiles.
type Occupancy map[TileID]Token

// Clone returns an independent copy of the snapshot.
func (o Occupancy) Clone() Occupancy {
	out := make(Occupancy, len(o))
	for t, tok := range o {
		out[t] = tok
	}
	return out
}

// Strategy selects the targeting algorithm a skill uses.
type Strategy string

const (
	StrategyRearFrontRow      Strategy = "rear_front_row"
	StrategyRingExpansion     Strategy = "ring_expansion"
	StrategySymmetricalMirror Strategy = "symmetrical_mirror"
	StrategyAdjacentPair      Strategy = "adjacent_pair"
)

// Valid reports whether the strategy value is one of the known constants.
func (s Strategy) Valid() bool {
	switch s {
	case StrategyRearFrontRow, StrategyRingExpansion, StrategySymmetricalMirror, StrategyAdjacentPair:
		return true
	}
	return false
}

// Extreme picks which end of the board a row scan resolves to.
type Extreme string

const (
	Rearmost  Extreme = "rearmost"
	Frontmost Extreme = "frontmost"
)

// TargetSelector says which team a skill targets, relative to its caster.
type TargetSelector string

const (
	TargetOpponents TargetSelector = "opponents"
	TargetAllies    TargetSelector = "allies"
)

// ScanConfig is the full targeting configuration of a skill.
type ScanConfig struct {
	Strategy Strategy       `json:"strategy"`
	Target   TargetSelector `json:"target"`
	// Extreme applies to rear_front_row only.
	Extreme Extreme `json:"extreme,omitempty"`
	// IncludeSummons makes summon-kind tokens targetable.
	IncludeSummons bool `json:"include_summons"`
	// OriginInclusive lets a ring scan resolve to its own origin tile.
	OriginInclusive bool `json:"origin_inclusive"`
}

// Arena is a battlefield layout: which tiles each side may deploy on and
// which tiles are impassable. Tile lists are persisted as JSON columns.
type Arena struct {
	gorm.Model
	Name string `json:"name" gorm:"uniqueIndex"`
	// AvailableAlly and AvailableEnemy list the tiles each side may
	// place tokens on at deploy time.
	AvailableAlly  []TileID `json:"available_ally" gorm:"serializer:json"`
	AvailableEnemy []TileID `json:"available_enemy" gorm:"serializer:json"`
	// Blocked tiles never hold tokens. BlockedBreakable tiles start
	// blocked but can be opened mid-battle; for snapshot validation
	// they count as blocked.
	Blocked          []TileID `json:"blocked" gorm:"serializer:json"`
	BlockedBreakable []TileID `json:"blocked_breakable" gorm:"serializer:json"`
}

// Skill is a named ability with its targeting configuration. Stats come
// from the server config file and are not persisted (gorm:"-"), matching
// the config-as-source-of-truth rule; only the key is stored.
type Skill struct {
	gorm.Model
	Key         string     `json:"key" gorm:"uniqueIndex"`
	Name        string     `json:"name" gorm:"-"`
	Description string     `json:"description" gorm:"-"`
	Scan        ScanConfig `json:"scan" gorm:"-"`
}
