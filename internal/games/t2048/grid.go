package t2048

import (
	"errors"
	"fmt"
	"iter"
	"slices"
)

// ErrNoEmptyCell is returned when a spawn is requested on a full grid.
var ErrNoEmptyCell = errors.New("t2048: no empty cell")

// Random is the source used for spawn decisions. *rand.Rand satisfies it.
type Random interface {
	Float64() float64
}

// Grid is the fixed size×size board of cells. Cell coordinates never change;
// a new game builds a new Grid.
type Grid struct {
	size  int
	cells []*Cell // row-major: index = y*size + x
}

// NewGrid creates an empty grid. It panics on a non-positive size.
func NewGrid(size int) *Grid {
	if size < 1 {
		panic(fmt.Sprintf("t2048: invalid grid size %d", size))
	}
	g := &Grid{size: size, cells: make([]*Cell, 0, size*size)}
	for i := range size * size {
		g.cells = append(g.cells, newCell(i%size, i/size))
	}
	return g
}

// GridFromValues builds a grid from row-major values where 0 is an empty cell.
// Tiles get IDs 1, 2, ... in row-major order.
func GridFromValues(values [][]int) (*Grid, error) {
	size := len(values)
	if size == 0 {
		return nil, errors.New("t2048: empty grid values")
	}
	g := NewGrid(size)
	var id uint64
	for y, row := range values {
		if len(row) != size {
			return nil, fmt.Errorf("t2048: row %d has %d cells, want %d", y, len(row), size)
		}
		for x, v := range row {
			if v == 0 {
				continue
			}
			if !IsTileValue(v) {
				return nil, fmt.Errorf("t2048: invalid tile value %d at (%d, %d)", v, x, y)
			}
			id++
			g.CellAt(x, y).SetTile(NewTile(id, v))
		}
	}
	return g, nil
}

// Size returns the grid dimension.
func (g *Grid) Size() int {
	return g.size
}

// CellAt returns the cell at (x, y), or nil when out of range.
func (g *Grid) CellAt(x, y int) *Cell {
	if x < 0 || x >= g.size || y < 0 || y >= g.size {
		return nil
	}
	return g.cells[y*g.size+x]
}

// Cells returns all cells in row-major order.
func (g *Grid) Cells() []*Cell {
	return slices.Clone(g.cells)
}

// EmptyCells yields the cells without a settled tile, in row-major order.
func (g *Grid) EmptyCells() iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for _, c := range g.cells {
			if c.tile != nil {
				continue
			}
			if !yield(c) {
				return
			}
		}
	}
}

// EmptyCount returns the number of empty cells.
func (g *Grid) EmptyCount() int {
	n := 0
	for range g.EmptyCells() {
		n++
	}
	return n
}

// RandomEmptyCell picks one empty cell uniformly: index floor(r*emptyCount).
func (g *Grid) RandomEmptyCell(rng Random) (*Cell, error) {
	count := g.EmptyCount()
	if count == 0 {
		return nil, ErrNoEmptyCell
	}
	target := int(rng.Float64() * float64(count))
	// Sources outside math/rand may return exactly 1.
	target = min(target, count-1)

	i := 0
	for c := range g.EmptyCells() {
		if i == target {
			return c, nil
		}
		i++
	}
	return nil, ErrNoEmptyCell
}

// Columns returns one line per x, each ordered by increasing y.
func (g *Grid) Columns() [][]*Cell {
	cols := make([][]*Cell, g.size)
	for x := range g.size {
		col := make([]*Cell, g.size)
		for y := range g.size {
			col[y] = g.CellAt(x, y)
		}
		cols[x] = col
	}
	return cols
}

// Rows returns one line per y, each ordered by increasing x.
func (g *Grid) Rows() [][]*Cell {
	rows := make([][]*Cell, g.size)
	for y := range g.size {
		rows[y] = slices.Clone(g.cells[y*g.size : (y+1)*g.size])
	}
	return rows
}

// Lines returns the lines for dir with index 0 at the edge tiles move toward.
// Up and left use columns and rows as they are; down and right reverse them.
func (g *Grid) Lines(dir Direction) [][]*Cell {
	switch dir {
	case DirUp:
		return g.Columns()
	case DirDown:
		return reversed(g.Columns())
	case DirLeft:
		return g.Rows()
	case DirRight:
		return reversed(g.Rows())
	default:
		return nil
	}
}

func reversed(lines [][]*Cell) [][]*Cell {
	for _, line := range lines {
		slices.Reverse(line)
	}
	return lines
}

// Values returns the tile values row-major ([y][x]), 0 for empty cells.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.size)
	for y := range g.size {
		out[y] = make([]int, g.size)
		for x := range g.size {
			if t := g.CellAt(x, y).tile; t != nil {
				out[y][x] = t.value
			}
		}
	}
	return out
}

// MaxTile returns the largest tile value, or 0 on an empty grid.
func (g *Grid) MaxTile() int {
	maxVal := 0
	for _, c := range g.cells {
		if c.tile != nil && c.tile.value > maxVal {
			maxVal = c.tile.value
		}
	}
	return maxVal
}

// TileCount returns the number of settled tiles.
func (g *Grid) TileCount() int {
	return len(g.cells) - g.EmptyCount()
}

// Sum returns the sum of all settled tile values.
func (g *Grid) Sum() int {
	total := 0
	for _, c := range g.cells {
		if c.tile != nil {
			total += c.tile.value
		}
	}
	return total
}

func (g *Grid) maxTileID() uint64 {
	var id uint64
	for _, c := range g.cells {
		if c.tile != nil && c.tile.id > id {
			id = c.tile.id
		}
	}
	return id
}
