package t2048

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Directions lists every direction, in the order terminal checks use.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// TileMove describes one tile sliding from one cell to another.
type TileMove struct {
	TileID  uint64
	FromX   int
	FromY   int
	ToX     int
	ToY     int
	Value   int  // Value before any merge
	Merging bool // The tile became the destination's incoming tile
}

// TileMerge describes a resolved merge: the settled tile at (X, Y) now holds
// Value and the incoming tile DiscardedID is gone.
type TileMerge struct {
	TileID      uint64
	DiscardedID uint64
	X, Y        int
	Value       int
}

// MoveResult is the outcome of resolving one direction over a grid.
type MoveResult struct {
	Moved  bool
	Gained int
	Moves  []TileMove
	Merges []TileMerge
}

// Slide moves tiles along each line toward index 0. A tile travels to the
// farthest cell it can reach without passing a cell that refuses it; an
// occupied destination receives it as the incoming tile. Merges are not
// resolved here.
func Slide(lines [][]*Cell) []TileMove {
	var moves []TileMove
	for _, line := range lines {
		for i := 1; i < len(line); i++ {
			src := line[i]
			tile := src.Tile()
			if tile == nil {
				continue
			}

			var dst *Cell
			for j := i - 1; j >= 0; j-- {
				if !line[j].CanAccept(tile) {
					break
				}
				dst = line[j]
			}
			if dst == nil {
				continue
			}

			move := TileMove{
				TileID: tile.ID(),
				FromX:  src.X(),
				FromY:  src.Y(),
				ToX:    dst.X(),
				ToY:    dst.Y(),
				Value:  tile.Value(),
			}
			src.SetTile(nil)
			if dst.Empty() {
				dst.SetTile(tile)
			} else {
				dst.SetIncoming(tile)
				move.Merging = true
			}
			moves = append(moves, move)
		}
	}
	return moves
}

// ResolveMerges runs ResolveMerge on every cell of the grid and returns the
// total score gained.
func ResolveMerges(g *Grid) (gained int, merges []TileMerge) {
	for _, c := range g.cells {
		value, discarded := c.ResolveMerge()
		if discarded == nil {
			continue
		}
		gained += value
		merges = append(merges, TileMerge{
			TileID:      c.tile.ID(),
			DiscardedID: discarded.ID(),
			X:           c.x,
			Y:           c.y,
			Value:       value,
		})
	}
	return gained, merges
}

// CanMove reports whether any tile past index 0 of any line could step into
// its neighbour toward the edge.
func CanMove(lines [][]*Cell) bool {
	for _, line := range lines {
		for i := 1; i < len(line); i++ {
			tile := line[i].Tile()
			if tile != nil && line[i-1].CanAccept(tile) {
				return true
			}
		}
	}
	return false
}

// Resolve slides every line of g in direction dir, then resolves all merges.
func Resolve(g *Grid, dir Direction) MoveResult {
	moves := Slide(g.Lines(dir))
	gained, merges := ResolveMerges(g)
	return MoveResult{
		Moved:  len(moves) > 0,
		Gained: gained,
		Moves:  moves,
		Merges: merges,
	}
}
