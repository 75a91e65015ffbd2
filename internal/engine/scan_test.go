package engine

import (
	"testing"

	"github.com/lorehaven/arenagrid/internal/game"
	"github.com/lorehaven/arenagrid/internal/hexgrid"
)

func TestRingOrderPrefixes(t *testing.T) {
	cases := []struct {
		origin game.TileID
		want   []game.TileID
	}{
		{37, []game.TileID{33, 36, 34, 40, 41, 29, 32, 30, 35, 39}},
		{30, []game.TileID{28, 29, 31, 33, 34, 24, 27, 25, 32, 36}},
		{41, []game.TileID{37, 40, 43, 33, 36, 34, 39, 42}},
	}
	for _, c := range cases {
		got := ringOrder(c.origin)
		if len(got) != hexgrid.TileCount-1 {
			t.Fatalf("ringOrder(%d) covers %d tiles, want %d", c.origin, len(got), hexgrid.TileCount-1)
		}
		for i, w := range c.want {
			if got[i] != w {
				t.Fatalf("ringOrder(%d)[%d] = %d, want %d (prefix %v)", c.origin, i, got[i], w, got[:len(c.want)])
			}
		}
	}
}

// Ring k of the expansion must hold exactly the tiles at hex distance k,
// and the rings together must cover the whole board exactly once.
func TestRingOrderMatchesDistances(t *testing.T) {
	for origin := game.TileID(1); origin <= hexgrid.TileCount; origin++ {
		order := ringOrder(origin)
		seen := map[game.TileID]bool{origin: true}
		prev := 0
		for _, tile := range order {
			if seen[tile] {
				t.Fatalf("origin %d: tile %d enumerated twice", origin, tile)
			}
			seen[tile] = true
			d, err := hexgrid.Distance(origin, tile)
			if err != nil {
				t.Fatalf("Distance(%d, %d): %v", origin, tile, err)
			}
			if d != prev && d != prev+1 {
				t.Fatalf("origin %d: tile %d at distance %d enumerated after distance %d", origin, tile, d, prev)
			}
			prev = d
		}
		if len(seen) != hexgrid.TileCount {
			t.Fatalf("origin %d: rings cover %d tiles, want %d", origin, len(seen), hexgrid.TileCount)
		}
	}
}

func TestRowScan(t *testing.T) {
	cand := map[game.TileID]bool{25: true, 32: true, 33: true, 41: true, 44: true}
	if got, ok := rowScan(cand, game.Rearmost); !ok || got != 25 {
		t.Fatalf("rearmost = %d (%v), want 25", got, ok)
	}
	if got, ok := rowScan(cand, game.Frontmost); !ok || got != 44 {
		t.Fatalf("frontmost = %d (%v), want 44", got, ok)
	}
	// Higher ids win within a row: 32 and 33 share row 11.
	rowMates := map[game.TileID]bool{32: true, 33: true}
	if got, _ := rowScan(rowMates, game.Rearmost); got != 33 {
		t.Fatalf("in-row tie = %d, want 33", got)
	}
	if _, ok := rowScan(map[game.TileID]bool{}, game.Rearmost); ok {
		t.Fatalf("empty candidate set must find nothing")
	}
}

func TestRingScanOriginInclusive(t *testing.T) {
	cand := map[game.TileID]bool{23: true, 27: true}
	if got, ok := ringScan(23, cand, false); !ok || got != 27 {
		t.Fatalf("exclusive scan = %d (%v), want 27", got, ok)
	}
	if got, ok := ringScan(23, cand, true); !ok || got != 23 {
		t.Fatalf("inclusive scan = %d (%v), want 23", got, ok)
	}
}

func TestRotateIsInvolution(t *testing.T) {
	occ := game.Occupancy{
		9:  {Team: game.TeamAlly, Kind: game.KindMain},
		23: {Team: game.TeamAlly, Kind: game.KindSummon},
		41: {Team: game.TeamEnemy, Kind: game.KindMain},
	}
	back := rotate(rotate(occ))
	if len(back) != len(occ) {
		t.Fatalf("double rotation changed size: %d -> %d", len(occ), len(back))
	}
	for tile, tok := range occ {
		if back[tile] != tok {
			t.Fatalf("tile %d: %+v became %+v after double rotation", tile, tok, back[tile])
		}
	}
	rot := rotate(occ)
	if tok := rot[37]; tok.Team != game.TeamEnemy || tok.Kind != game.KindMain {
		t.Fatalf("ally on 9 should rotate to enemy on 37, got %+v", tok)
	}
	if tok := rot[23]; tok.Team != game.TeamEnemy || tok.Kind != game.KindSummon {
		t.Fatalf("center summon should stay on 23 with swapped team, got %+v", tok)
	}
}

func TestAdjacentPairPriority(t *testing.T) {
	occ := game.Occupancy{
		9:  {Team: game.TeamAlly, Kind: game.KindMain},
		13: {Team: game.TeamAlly, Kind: game.KindMain},
		25: {Team: game.TeamEnemy, Kind: game.KindMain},
		33: {Team: game.TeamEnemy, Kind: game.KindMain},
	}
	// From tile 10 the left neighbor 9 comes first, but its mirror 37 is
	// empty; the top-left neighbor 13 pairs with the enemy on 33.
	ally, enemy, found := adjacentPair(occ, 10, false)
	if !found || ally != 13 || enemy != 33 {
		t.Fatalf("pair = (%d, %d, %v), want (13, 33, true)", ally, enemy, found)
	}
	// A summon ally is skipped unless summons are included.
	occ[13] = game.Token{Team: game.TeamAlly, Kind: game.KindSummon}
	if _, _, found := adjacentPair(occ, 10, false); found {
		t.Fatalf("summon ally must not form a pair by default")
	}
	if ally, enemy, found := adjacentPair(occ, 10, true); !found || ally != 13 || enemy != 33 {
		t.Fatalf("inclusive pair = (%d, %d, %v), want (13, 33, true)", ally, enemy, found)
	}
}
