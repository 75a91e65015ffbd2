// Package hexgrid models the 45-tile battlefield: a pointy-top hex board
// of 15 staggered rows, numbered 1..45 from the ally back edge upward.
// All lookup tables are precomputed at package init.
package hexgrid

import (
	"github.com/lorehaven/arenagrid/internal/game"
)

const (
	// TileCount is the number of playable tiles on the board.
	TileCount = 45
	// RowCount is the number of horizontal rows.
	RowCount = 15
	// CenterTile is the single tile the half-turn symmetry maps to itself.
	CenterTile = game.TileID(23)
)

// rowWidths[i] is the number of tiles in row i+1. Rows are counted from
// the ally back edge (row 1) to the enemy back edge (row 15).
var rowWidths = [RowCount]int{2, 3, 3, 3, 3, 3, 3, 5, 3, 3, 3, 3, 4, 2, 2}

// rowShifts[i] is the axial q coordinate of the first (lowest-numbered)
// tile in row i+1. Together with rowWidths it fixes the horizontal
// stagger of every row.
var rowShifts = [RowCount]int{3, 3, 2, 2, 1, 0, 1, 0, 1, 2, 1, 0, -1, 0, 0}

// symPairs maps every tile to its half-turn counterpart. The relation is
// an involution; tile 23 sits on the rotation center and maps to itself.
var symPairs = [TileCount + 1]game.TileID{
	0,                  // unused
	44, 45,             // row 1
	41, 42, 43,         // row 2
	38, 39, 40,         // row 3
	37, 36, 35,         // row 4
	32, 33, 34,         // row 5
	29, 30, 31,         // row 6
	26, 27, 28,         // row 7
	25, 24, 23, 22, 21, // row 8
	18, 19, 20,         // row 9
	15, 16, 17,         // row 10
	12, 13, 14,         // row 11
	11, 10, 9,          // row 12
	6, 7, 8, 3,         // row 13
	4, 5,               // row 14
	1, 2,               // row 15
}

// Direction is one of the six hex adjacency directions, named from the
// ally side's point of view.
type Direction int

const (
	TopLeft Direction = iota
	TopRight
	Left
	Right
	BottomLeft
	BottomRight
)

var directionNames = [...]string{"top-left", "top-right", "left", "right", "bottom-left", "bottom-right"}

func (d Direction) String() string {
	if d < 0 || int(d) >= len(directionNames) {
		return "unknown"
	}
	return directionNames[d]
}

// dirDeltas holds the axial (dq, dr) offset for each direction. Rows
// grow toward the enemy side, so "top" means increasing r.
var dirDeltas = [6][2]int{
	TopLeft:     {-1, +1},
	TopRight:    {0, +1},
	Left:        {-1, 0},
	Right:       {+1, 0},
	BottomLeft:  {0, -1},
	BottomRight: {+1, -1},
}

// Neighbor is an adjacent tile together with the direction it lies in.
type Neighbor struct {
	Dir  Direction
	Tile game.TileID
}

var (
	rowStart [RowCount + 1]game.TileID
	rowOf    [TileCount + 1]int
	qOf      [TileCount + 1]int
	tileAt   map[axial]game.TileID
	// adjacent[t][d] is the neighbor of t in direction d, or 0.
	adjacent [TileCount + 1][6]game.TileID
	// neighborList[t] lists the existing neighbors of t in the fixed
	// direction order top-left, top-right, left, right, bottom-left,
	// bottom-right.
	neighborList [TileCount + 1][]Neighbor
	dist         [TileCount + 1][TileCount + 1]int
)

type axial struct{ q, r int }

func init() {
	tileAt = make(map[axial]game.TileID, TileCount)
	t := game.TileID(1)
	for r := 1; r <= RowCount; r++ {
		rowStart[r] = t
		for i := 0; i < rowWidths[r-1]; i++ {
			rowOf[t] = r
			qOf[t] = rowShifts[r-1] + i
			tileAt[axial{qOf[t], r}] = t
			t++
		}
	}
	for id := game.TileID(1); id <= TileCount; id++ {
		for d := TopLeft; d <= BottomRight; d++ {
			n, ok := tileAt[axial{qOf[id] + dirDeltas[d][0], rowOf[id] + dirDeltas[d][1]}]
			if !ok {
				continue
			}
			adjacent[id][d] = n
			neighborList[id] = append(neighborList[id], Neighbor{Dir: d, Tile: n})
		}
	}
	computeDistances()
}

// computeDistances fills the all-pairs table with BFS hop counts. The
// board is connected, so every pair gets a finite distance.
func computeDistances() {
	for from := game.TileID(1); from <= TileCount; from++ {
		for to := game.TileID(1); to <= TileCount; to++ {
			dist[from][to] = -1
		}
		dist[from][from] = 0
		queue := []game.TileID{from}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			for _, nb := range neighborList[cur] {
				if dist[from][nb.Tile] == -1 {
					dist[from][nb.Tile] = dist[from][cur] + 1
					queue = append(queue, nb.Tile)
				}
			}
		}
	}
}

// Valid reports whether t is a playable tile id.
func Valid(t game.TileID) bool { return t >= 1 && t <= TileCount }

// Sym returns the tile's half-turn counterpart: the tile a token lands on
// when the board is rotated 180 degrees around its center.
func Sym(t game.TileID) (game.TileID, error) {
	if !Valid(t) {
		return 0, &InvalidTileError{Tile: t}
	}
	return symPairs[t], nil
}

// Row returns the 1-based row of a tile, counted from the ally back edge.
func Row(t game.TileID) (int, error) {
	if !Valid(t) {
		return 0, &InvalidTileError{Tile: t}
	}
	return rowOf[t], nil
}

// RowTiles returns the ids of a row in ascending order, or nil when the
// row number is out of range.
func RowTiles(row int) []game.TileID {
	if row < 1 || row > RowCount {
		return nil
	}
	out := make([]game.TileID, rowWidths[row-1])
	for i := range out {
		out[i] = rowStart[row] + game.TileID(i)
	}
	return out
}

// Neighbors returns the tiles adjacent to t in the fixed direction order
// top-left, top-right, left, right, bottom-left, bottom-right. Edge tiles
// have fewer than six entries.
func Neighbors(t game.TileID) ([]Neighbor, error) {
	if !Valid(t) {
		return nil, &InvalidTileError{Tile: t}
	}
	return neighborList[t], nil
}

// Adjacent returns the neighbor of t in direction d, or ok=false when the
// board edge cuts that direction off.
func Adjacent(t game.TileID, d Direction) (game.TileID, bool, error) {
	if !Valid(t) {
		return 0, false, &InvalidTileError{Tile: t}
	}
	n := adjacent[t][d]
	return n, n != 0, nil
}

// Distance returns the minimum number of adjacency steps between two
// tiles.
func Distance(a, b game.TileID) (int, error) {
	if !Valid(a) {
		return 0, &InvalidTileError{Tile: a}
	}
	if !Valid(b) {
		return 0, &InvalidTileError{Tile: b}
	}
	return dist[a][b], nil
}
