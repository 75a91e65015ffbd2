package engine

import (
	"fmt"

	"github.com/lorehaven/arenagrid/internal/game"
	"github.com/lorehaven/arenagrid/internal/hexgrid"
)

// ValidateOccupancy checks a snapshot against an arena layout: no token
// may stand on a blocked tile (breakable blocks count as blocked) and
// each token must stand on a deploy tile of its own side. A nil arena
// only checks tile id ranges.
func ValidateOccupancy(arena *game.Arena, occ game.Occupancy) error {
	for t := range occ {
		if !hexgrid.Valid(t) {
			return &hexgrid.InvalidTileError{Tile: t}
		}
	}
	if arena == nil {
		return nil
	}
	blocked := make(map[game.TileID]bool, len(arena.Blocked)+len(arena.BlockedBreakable))
	for _, t := range arena.Blocked {
		blocked[t] = true
	}
	for _, t := range arena.BlockedBreakable {
		blocked[t] = true
	}
	allowed := map[game.Team]map[game.TileID]bool{
		game.TeamAlly:  tileSet(arena.AvailableAlly),
		game.TeamEnemy: tileSet(arena.AvailableEnemy),
	}
	for t, tok := range occ {
		if blocked[t] {
			return fmt.Errorf("arena %s: tile %d is blocked and cannot hold a token", arena.Name, t)
		}
		side := allowed[tok.Team]
		if side == nil {
			return fmt.Errorf("tile %d: unknown team %q", t, tok.Team)
		}
		if !side[t] {
			return fmt.Errorf("arena %s: tile %d is not a deploy tile for team %s", arena.Name, t, tok.Team)
		}
	}
	return nil
}

func tileSet(tiles []game.TileID) map[game.TileID]bool {
	out := make(map[game.TileID]bool, len(tiles))
	for _, t := range tiles {
		out[t] = true
	}
	return out
}
