package hexgrid

import (
	"fmt"

	"github.com/lorehaven/arenagrid/internal/game"
)

// InvalidTileError reports a tile id outside the playable 1..45 range.
type InvalidTileError struct {
	Tile game.TileID
}

func (e *InvalidTileError) Error() string {
	return fmt.Sprintf("invalid tile id %d: board tiles are numbered 1..%d", e.Tile, TileCount)
}
