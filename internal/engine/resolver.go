package engine

import (
	"fmt"

	"github.com/lorehaven/arenagrid/internal/game"
	"github.com/lorehaven/arenagrid/internal/hexgrid"
)

// Result is the outcome of a targeting resolution. A scan that finds no
// eligible tile is a normal outcome, reported with Found=false rather
// than an error.
type Result struct {
	Found bool `json:"found"`
	// Target is the resolved tile when Found is true.
	Target game.TileID `json:"target,omitempty"`
	// Partner is set by the adjacent-pair strategy only: the allied
	// half of the resolved pair (Target holds the enemy half).
	Partner game.TileID `json:"partner,omitempty"`
}

// Resolve runs the targeting scan configured in cfg for a caster of the
// given side standing on casterTile. The snapshot is never mutated.
//
// Scans are side-symmetric: directions, walk order and row order are all
// expressed from the caster's own point of view, so the same skill cast
// from mirrored positions resolves to mirrored tiles.
func Resolve(occ game.Occupancy, casterTile game.TileID, side game.Team, cfg game.ScanConfig) (Result, error) {
	if !hexgrid.Valid(casterTile) {
		return Result{}, &hexgrid.InvalidTileError{Tile: casterTile}
	}
	if !side.Valid() {
		return Result{}, fmt.Errorf("unknown team %q", side)
	}
	if !cfg.Strategy.Valid() {
		return Result{}, fmt.Errorf("unknown scan strategy %q", cfg.Strategy)
	}
	for t, tok := range occ {
		if !hexgrid.Valid(t) {
			return Result{}, &hexgrid.InvalidTileError{Tile: t}
		}
		if !tok.Team.Valid() {
			return Result{}, fmt.Errorf("tile %d: unknown team %q", t, tok.Team)
		}
		if !tok.Kind.Valid() {
			return Result{}, fmt.Errorf("tile %d: unknown token kind %q", t, tok.Kind)
		}
	}

	targetTeam := side.Opponent()
	if cfg.Target == game.TargetAllies {
		targetTeam = side
	}

	// The frame decides whose point of view orients the walk. Row scans
	// run in the targeted team's frame (their rear is their own back
	// edge); every other strategy runs in the caster's frame.
	frame := side
	if cfg.Strategy == game.StrategyRearFrontRow {
		frame = targetTeam
	}

	work, origin, candTeam := occ, casterTile, targetTeam
	rotated := frame == game.TeamEnemy
	if rotated {
		work = rotate(occ)
		origin = symOf(casterTile)
		candTeam = targetTeam.Opponent()
	}

	var res Result
	switch cfg.Strategy {
	case game.StrategyRearFrontRow:
		extreme := cfg.Extreme
		if extreme == "" {
			extreme = game.Rearmost
		}
		if extreme != game.Rearmost && extreme != game.Frontmost {
			return Result{}, fmt.Errorf("unknown extreme %q", cfg.Extreme)
		}
		cand := candidates(work, candTeam, cfg.IncludeSummons)
		res.Target, res.Found = rowScan(cand, extreme)
	case game.StrategyRingExpansion:
		cand := candidates(work, candTeam, cfg.IncludeSummons)
		res.Target, res.Found = ringScan(origin, cand, cfg.OriginInclusive)
	case game.StrategySymmetricalMirror:
		cand := candidates(work, candTeam, cfg.IncludeSummons)
		res.Target, res.Found = mirrorScan(origin, cand)
	case game.StrategyAdjacentPair:
		res.Partner, res.Target, res.Found = adjacentPair(work, origin, cfg.IncludeSummons)
	}

	if res.Found && rotated {
		res.Target = symOf(res.Target)
		if res.Partner != 0 {
			res.Partner = symOf(res.Partner)
		}
	}
	if !res.Found {
		return Result{}, nil
	}
	return res, nil
}
