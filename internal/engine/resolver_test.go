package engine

import (
	"errors"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/lorehaven/arenagrid/internal/fixtures"
	"github.com/lorehaven/arenagrid/internal/game"
	"github.com/lorehaven/arenagrid/internal/hexgrid"
)

var mirrorCfg = game.ScanConfig{
	Strategy: game.StrategySymmetricalMirror,
	Target:   game.TargetOpponents,
}

func TestMirrorScanFixtures(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("testdata", "*_mirror.md"))
	if err != nil || len(files) == 0 {
		t.Fatalf("no mirror fixture files found: %v", err)
	}
	for _, file := range files {
		doc, err := fixtures.ParseFile(file)
		if err != nil {
			t.Fatalf("%s: %v", file, err)
		}
		occ := doc.Snapshot()
		for _, c := range doc.Cases {
			t.Run(doc.Title+"/"+c.Name, func(t *testing.T) {
				m, err := hexgrid.Sym(c.Caster)
				if err != nil {
					t.Fatalf("Sym(%d): %v", c.Caster, err)
				}
				if m != c.Mirror {
					t.Fatalf("Sym(%d) = %d, fixture says %d", c.Caster, m, c.Mirror)
				}
				res, err := Resolve(occ, c.Caster, game.TeamAlly, mirrorCfg)
				if err != nil {
					t.Fatalf("Resolve: %v", err)
				}
				if c.NoTarget {
					if res.Found {
						t.Fatalf("expected no target, got %d", res.Target)
					}
					return
				}
				if !res.Found || res.Target != c.Target {
					t.Fatalf("Resolve from %d = %+v, want target %d", c.Caster, res, c.Target)
				}
			})
		}
	}
}

func arenaIIISnapshot() game.Occupancy {
	occ := game.Occupancy{}
	for _, t := range []game.TileID{25, 32, 33, 41, 44} {
		occ[t] = game.Token{Team: game.TeamEnemy, Kind: game.KindMain}
	}
	return occ
}

func TestMirrorScanSkipsSummons(t *testing.T) {
	occ := arenaIIISnapshot()
	occ[33] = game.Token{Team: game.TeamEnemy, Kind: game.KindSummon}

	// From tile 9 the mirror 37 is empty and the nearest enemy is the
	// summon on 33; with summons invisible the scan walks on to 41.
	res, err := Resolve(occ, 9, game.TeamAlly, mirrorCfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !res.Found || res.Target != 41 {
		t.Fatalf("summon-blind scan = %+v, want 41", res)
	}

	cfg := mirrorCfg
	cfg.IncludeSummons = true
	res, err = Resolve(occ, 9, game.TeamAlly, cfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !res.Found || res.Target != 33 {
		t.Fatalf("summon-aware scan = %+v, want 33", res)
	}
}

func TestRingExpansionResolve(t *testing.T) {
	occ := arenaIIISnapshot()
	res, err := Resolve(occ, 37, game.TeamAlly, game.ScanConfig{
		Strategy: game.StrategyRingExpansion,
		Target:   game.TargetOpponents,
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !res.Found || res.Target != 33 {
		t.Fatalf("ring scan from 37 = %+v, want 33", res)
	}
}

func TestRingExpansionOriginInclusive(t *testing.T) {
	occ := game.Occupancy{
		23: {Team: game.TeamAlly, Kind: game.KindSummon},
		27: {Team: game.TeamAlly, Kind: game.KindMain},
	}
	cfg := game.ScanConfig{
		Strategy:       game.StrategyRingExpansion,
		Target:         game.TargetAllies,
		IncludeSummons: true,
	}
	res, err := Resolve(occ, 23, game.TeamAlly, cfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !res.Found || res.Target != 27 {
		t.Fatalf("exclusive scan = %+v, want 27", res)
	}
	cfg.OriginInclusive = true
	res, err = Resolve(occ, 23, game.TeamAlly, cfg)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !res.Found || res.Target != 23 {
		t.Fatalf("inclusive scan = %+v, want 23", res)
	}
}

func TestRearFrontRowResolve(t *testing.T) {
	occ := arenaIIISnapshot()

	// The enemy rear is the enemy back edge: tile 44 sits deepest in
	// their half, tile 25 closest to the front line.
	res, err := Resolve(occ, 9, game.TeamAlly, game.ScanConfig{
		Strategy: game.StrategyRearFrontRow,
		Target:   game.TargetOpponents,
		Extreme:  game.Rearmost,
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !res.Found || res.Target != 44 {
		t.Fatalf("rearmost enemy = %+v, want 44", res)
	}

	res, err = Resolve(occ, 9, game.TeamAlly, game.ScanConfig{
		Strategy: game.StrategyRearFrontRow,
		Target:   game.TargetOpponents,
		Extreme:  game.Frontmost,
	})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !res.Found || res.Target != 25 {
		t.Fatalf("frontmost enemy = %+v, want 25", res)
	}
}

func TestAdjacentPairResolve(t *testing.T) {
	occ := arenaIIISnapshot()
	occ[9] = game.Token{Team: game.TeamAlly, Kind: game.KindMain}
	occ[13] = game.Token{Team: game.TeamAlly, Kind: game.KindMain}

	res, err := Resolve(occ, 10, game.TeamAlly, game.ScanConfig{Strategy: game.StrategyAdjacentPair})
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !res.Found || res.Partner != 13 || res.Target != 33 {
		t.Fatalf("pair = %+v, want partner 13 and target 33", res)
	}
}

func TestResolveNoTarget(t *testing.T) {
	res, err := Resolve(game.Occupancy{}, 9, game.TeamAlly, mirrorCfg)
	if err != nil {
		t.Fatalf("empty board must not error: %v", err)
	}
	if res.Found {
		t.Fatalf("empty board resolved to %d", res.Target)
	}
	// A board with only allies offers no opposing candidate either.
	occ := game.Occupancy{9: {Team: game.TeamAlly, Kind: game.KindMain}}
	res, err = Resolve(occ, 9, game.TeamAlly, mirrorCfg)
	if err != nil || res.Found {
		t.Fatalf("ally-only board: res=%+v err=%v", res, err)
	}
}

func TestResolveInvalidInput(t *testing.T) {
	occ := arenaIIISnapshot()
	var ite *hexgrid.InvalidTileError
	if _, err := Resolve(occ, 0, game.TeamAlly, mirrorCfg); !errors.As(err, &ite) {
		t.Fatalf("caster tile 0: expected InvalidTileError, got %v", err)
	}
	if _, err := Resolve(occ, 46, game.TeamAlly, mirrorCfg); !errors.As(err, &ite) {
		t.Fatalf("caster tile 46: expected InvalidTileError, got %v", err)
	}
	bad := occ.Clone()
	bad[99] = game.Token{Team: game.TeamEnemy, Kind: game.KindMain}
	if _, err := Resolve(bad, 9, game.TeamAlly, mirrorCfg); !errors.As(err, &ite) {
		t.Fatalf("occupancy key 99: expected InvalidTileError, got %v", err)
	}
	if _, err := Resolve(occ, 9, "neutral", mirrorCfg); err == nil {
		t.Fatalf("unknown team must error")
	}
	if _, err := Resolve(occ, 9, game.TeamAlly, game.ScanConfig{Strategy: "laser"}); err == nil {
		t.Fatalf("unknown strategy must error")
	}
}

// Resolving for the enemy side must equal resolving the half-turn
// rotated snapshot for the ally side and rotating the answer back.
func TestResolutionIsRotationEquivariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	strategies := []game.ScanConfig{
		{Strategy: game.StrategySymmetricalMirror, Target: game.TargetOpponents},
		{Strategy: game.StrategyRingExpansion, Target: game.TargetOpponents},
		{Strategy: game.StrategyRearFrontRow, Target: game.TargetOpponents, Extreme: game.Rearmost},
		{Strategy: game.StrategyRearFrontRow, Target: game.TargetOpponents, Extreme: game.Frontmost},
		{Strategy: game.StrategyAdjacentPair},
	}
	for i := 0; i < 200; i++ {
		occ := game.Occupancy{}
		for n := rng.Intn(12); n > 0; n-- {
			tile := game.TileID(1 + rng.Intn(hexgrid.TileCount))
			tok := game.Token{Team: game.TeamAlly, Kind: game.KindMain}
			if rng.Intn(2) == 0 {
				tok.Team = game.TeamEnemy
			}
			if rng.Intn(4) == 0 {
				tok.Kind = game.KindSummon
			}
			occ[tile] = tok
		}
		caster := game.TileID(1 + rng.Intn(hexgrid.TileCount))
		cfg := strategies[rng.Intn(len(strategies))]
		cfg.IncludeSummons = rng.Intn(2) == 0

		got, err := Resolve(occ, caster, game.TeamEnemy, cfg)
		if err != nil {
			t.Fatalf("enemy resolve: %v", err)
		}
		mirrorCaster, _ := hexgrid.Sym(caster)
		want, err := Resolve(rotate(occ), mirrorCaster, game.TeamAlly, cfg)
		if err != nil {
			t.Fatalf("ally resolve: %v", err)
		}
		if got.Found != want.Found {
			t.Fatalf("iteration %d: found mismatch: enemy=%+v ally=%+v", i, got, want)
		}
		if !got.Found {
			continue
		}
		if got.Target != symOf(want.Target) {
			t.Fatalf("iteration %d: enemy target %d, ally target %d (sym %d)", i, got.Target, want.Target, symOf(want.Target))
		}
		if want.Partner != 0 && got.Partner != symOf(want.Partner) {
			t.Fatalf("iteration %d: enemy partner %d, ally partner %d", i, got.Partner, want.Partner)
		}
	}
}
