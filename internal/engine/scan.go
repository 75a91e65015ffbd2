// Package engine resolves skill targeting on the battlefield. Every scan
// is computed in a canonical ally-side frame; enemy-side casts are
// handled by rotating the snapshot a half turn, scanning, and rotating
// the answer back (see resolver.go). That keeps the walk order defined
// once and makes both sides behave identically by construction.
package engine

import (
	"github.com/lorehaven/arenagrid/internal/game"
	"github.com/lorehaven/arenagrid/internal/hexgrid"
)

// neighborPriority is the tie-break order used when a scan walks the
// neighbors of a tile, expressed in the ally-side frame. Directions
// closer to the caster's own back edge win.
var neighborPriority = [...]hexgrid.Direction{
	hexgrid.BottomLeft,
	hexgrid.Left,
	hexgrid.BottomRight,
	hexgrid.Right,
	hexgrid.TopLeft,
	hexgrid.TopRight,
}

// symOf is Sym for ids already known to be valid.
func symOf(t game.TileID) game.TileID {
	m, _ := hexgrid.Sym(t)
	return m
}

// rotate maps a snapshot through the half-turn symmetry: every token
// moves to its symmetric tile and switches team, so an enemy-side
// situation becomes the equivalent ally-side one.
func rotate(occ game.Occupancy) game.Occupancy {
	out := make(game.Occupancy, len(occ))
	for t, tok := range occ {
		tok.Team = tok.Team.Opponent()
		out[symOf(t)] = tok
	}
	return out
}

// candidates filters a snapshot down to the tiles a scan may resolve to:
// tiles holding a token of the wanted team, with summons excluded unless
// the skill opts in.
func candidates(occ game.Occupancy, team game.Team, includeSummons bool) map[game.TileID]bool {
	out := make(map[game.TileID]bool, len(occ))
	for t, tok := range occ {
		if tok.Team != team {
			continue
		}
		if tok.Kind == game.KindSummon && !includeSummons {
			continue
		}
		out[t] = true
	}
	return out
}

// ringOrder enumerates every tile reachable from origin in expanding
// rings: all tiles at distance 1, then distance 2, and so on. Within a
// ring, tiles appear in the order the previous ring discovers them, each
// tile's neighbors visited in neighborPriority order. The origin itself
// is not part of the sequence.
func ringOrder(origin game.TileID) []game.TileID {
	visited := make(map[game.TileID]bool, hexgrid.TileCount)
	visited[origin] = true
	frontier := []game.TileID{origin}
	order := make([]game.TileID, 0, hexgrid.TileCount-1)
	for len(frontier) > 0 {
		next := make([]game.TileID, 0, len(frontier)*3)
		for _, t := range frontier {
			for _, d := range neighborPriority {
				n, ok, _ := hexgrid.Adjacent(t, d)
				if !ok || visited[n] {
					continue
				}
				visited[n] = true
				next = append(next, n)
				order = append(order, n)
			}
		}
		frontier = next
	}
	return order
}

// ringScan returns the first candidate met when expanding rings outward
// from origin. With originInclusive the origin tile itself is checked
// before ring 1.
func ringScan(origin game.TileID, cand map[game.TileID]bool, originInclusive bool) (game.TileID, bool) {
	if originInclusive && cand[origin] {
		return origin, true
	}
	for _, t := range ringOrder(origin) {
		if cand[t] {
			return t, true
		}
	}
	return 0, false
}

// mirrorScan targets the tile symmetric to origin. When that tile holds
// no candidate, the scan falls back to expanding rings around the
// symmetric tile, so the skill lands as close to the mirror point as
// possible.
func mirrorScan(origin game.TileID, cand map[game.TileID]bool) (game.TileID, bool) {
	m := symOf(origin)
	if cand[m] {
		return m, true
	}
	return ringScan(m, cand, false)
}

// rowScan returns the candidate nearest the ally back edge (rearmost) or
// the enemy back edge (frontmost). Rows are scanned in order; within a
// row, higher tile ids win.
func rowScan(cand map[game.TileID]bool, extreme game.Extreme) (game.TileID, bool) {
	first, last, step := 1, hexgrid.RowCount, 1
	if extreme == game.Frontmost {
		first, last, step = hexgrid.RowCount, 1, -1
	}
	for r := first; r != last+step; r += step {
		tiles := hexgrid.RowTiles(r)
		for i := len(tiles) - 1; i >= 0; i-- {
			if cand[tiles[i]] {
				return tiles[i], true
			}
		}
	}
	return 0, false
}

// adjacentPair finds the first neighbor of caster (in neighborPriority
// order) holding an ally whose symmetric tile holds an enemy. It returns
// the ally tile and the enemy tile.
func adjacentPair(occ game.Occupancy, caster game.TileID, includeSummons bool) (ally, enemy game.TileID, found bool) {
	for _, d := range neighborPriority {
		n, ok, _ := hexgrid.Adjacent(caster, d)
		if !ok {
			continue
		}
		tok, occupied := occ[n]
		if !occupied || tok.Team != game.TeamAlly {
			continue
		}
		if tok.Kind == game.KindSummon && !includeSummons {
			continue
		}
		m := symOf(n)
		etok, eoccupied := occ[m]
		if !eoccupied || etok.Team != game.TeamEnemy {
			continue
		}
		if etok.Kind == game.KindSummon && !includeSummons {
			continue
		}
		return n, m, true
	}
	return 0, 0, false
}
