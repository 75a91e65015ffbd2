package keys

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lorehaven/arenagrid/internal/game"
)

// ArenaKey produces a canonical key for an arena name. Behavior: trims,
// lower-cases and replaces spaces with underscores. Suitable for stable
// cache and dedupe keys.
func ArenaKey(name string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(name), " ", "_"))
}

// ResolveKey produces a canonical key for one targeting request: skill
// key, caster tile and team, and the occupancy snapshot with tiles in
// ascending order. Identical requests map to identical keys regardless
// of map iteration order.
func ResolveKey(skillKey string, caster game.TileID, side game.Team, occ game.Occupancy) string {
	tiles := make([]int, 0, len(occ))
	for t := range occ {
		tiles = append(tiles, int(t))
	}
	sort.Ints(tiles)
	parts := make([]string, 0, len(tiles))
	for _, t := range tiles {
		tok := occ[game.TileID(t)]
		parts = append(parts, fmt.Sprintf("%d=%s/%s", t, tok.Team, tok.Kind))
	}
	return fmt.Sprintf("%s|%d|%s|%s", skillKey, caster, side, strings.Join(parts, ","))
}
