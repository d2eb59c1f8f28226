package t2048

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewTilePanicsOnInvalidValue(t *testing.T) {
	for _, v := range []int{-2, 0, 1, 3, 6, 12} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("NewTile(%d) did not panic", v)
				}
			}()
			NewTile(1, v)
		}()
	}

	tile := NewTile(7, 2)
	if x, y := tile.Position(); x != -1 || y != -1 {
		t.Errorf("unplaced position = (%d,%d), want (-1,-1)", x, y)
	}
	tile.SetValue(4)
	if tile.Value() != 4 || tile.ID() != 7 {
		t.Errorf("tile = id %d value %d", tile.ID(), tile.Value())
	}
}

func TestCellCanAccept(t *testing.T) {
	two := NewTile(1, 2)
	otherTwo := NewTile(2, 2)
	four := NewTile(3, 4)

	c := newCell(0, 0)
	if !c.CanAccept(two) {
		t.Error("empty cell should accept any tile")
	}

	c.SetTile(two)
	if !c.CanAccept(otherTwo) {
		t.Error("cell should accept an equal tile while nothing is incoming")
	}
	if c.CanAccept(four) {
		t.Error("cell should refuse an unequal tile")
	}

	c.SetIncoming(otherTwo)
	if c.CanAccept(NewTile(4, 2)) {
		t.Error("cell should refuse a second merge in the same turn")
	}

	gained, discarded := c.ResolveMerge()
	if gained != 4 || discarded != otherTwo {
		t.Errorf("ResolveMerge() = (%d, %v), want (4, incoming tile)", gained, discarded)
	}
	if c.Incoming() != nil || c.Tile() != two || two.Value() != 4 {
		t.Error("merge did not fold the incoming tile into the settled one")
	}

	// Nothing incoming: no-op
	if gained, discarded := c.ResolveMerge(); gained != 0 || discarded != nil {
		t.Errorf("ResolveMerge() without incoming = (%d, %v)", gained, discarded)
	}
}

func TestSetTilePropagatesPosition(t *testing.T) {
	g := NewGrid(3)
	tile := NewTile(1, 8)
	g.CellAt(2, 1).SetTile(tile)
	if x, y := tile.Position(); x != 2 || y != 1 {
		t.Errorf("Position() = (%d,%d), want (2,1)", x, y)
	}
	g.CellAt(2, 1).SetTile(nil)
	if !g.CellAt(2, 1).Empty() {
		t.Error("SetTile(nil) should clear the cell")
	}
}

func TestGridLayout(t *testing.T) {
	g := NewGrid(4)
	if g.Size() != 4 || len(g.Cells()) != 16 {
		t.Fatalf("grid has size %d and %d cells", g.Size(), len(g.Cells()))
	}
	for _, c := range g.Cells() {
		if g.CellAt(c.X(), c.Y()) != c {
			t.Errorf("CellAt(%d,%d) is not the cell at that position", c.X(), c.Y())
		}
	}
	if g.CellAt(-1, 0) != nil || g.CellAt(0, 4) != nil {
		t.Error("out-of-range CellAt should return nil")
	}
	if g.EmptyCount() != 16 {
		t.Errorf("EmptyCount() = %d, want 16", g.EmptyCount())
	}
}

func TestGridLines(t *testing.T) {
	g := NewGrid(3)
	coords := func(line []*Cell) [][2]int {
		out := make([][2]int, len(line))
		for i, c := range line {
			out[i] = [2]int{c.X(), c.Y()}
		}
		return out
	}

	tests := []struct {
		dir   Direction
		first [][2]int // first line of the view
	}{
		{DirUp, [][2]int{{0, 0}, {0, 1}, {0, 2}}},
		{DirDown, [][2]int{{0, 2}, {0, 1}, {0, 0}}},
		{DirLeft, [][2]int{{0, 0}, {1, 0}, {2, 0}}},
		{DirRight, [][2]int{{2, 0}, {1, 0}, {0, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			lines := g.Lines(tt.dir)
			if len(lines) != 3 {
				t.Fatalf("got %d lines, want 3", len(lines))
			}
			if got := coords(lines[0]); !reflect.DeepEqual(got, tt.first) {
				t.Errorf("first line = %v, want %v", got, tt.first)
			}
		})
	}

	// Reversing a view must not reorder the grid itself
	g.Lines(DirRight)
	if got := coords(g.Rows()[0]); !reflect.DeepEqual(got, [][2]int{{0, 0}, {1, 0}, {2, 0}}) {
		t.Errorf("rows after right view = %v", got)
	}
}

func TestRandomEmptyCell(t *testing.T) {
	g := mustGrid(t, [][]int{
		{2, 0},
		{0, 4},
	})

	tests := []struct {
		r    float64
		x, y int
	}{
		{0.0, 1, 0},
		{0.49, 1, 0},
		{0.5, 0, 1},
		{0.99, 0, 1},
		{1.0, 0, 1},
	}
	for _, tt := range tests {
		c, err := g.RandomEmptyCell(fixedRandom(tt.r))
		if err != nil {
			t.Fatalf("RandomEmptyCell(%g): %v", tt.r, err)
		}
		if c.X() != tt.x || c.Y() != tt.y {
			t.Errorf("RandomEmptyCell(%g) = (%d,%d), want (%d,%d)", tt.r, c.X(), c.Y(), tt.x, tt.y)
		}
	}

	full := mustGrid(t, [][]int{{2, 4}, {8, 16}})
	if _, err := full.RandomEmptyCell(fixedRandom(0)); !errors.Is(err, ErrNoEmptyCell) {
		t.Errorf("full grid error = %v, want ErrNoEmptyCell", err)
	}
}

func TestGridFromValues(t *testing.T) {
	values := [][]int{
		{2, 0, 4},
		{0, 8, 0},
		{16, 0, 2},
	}
	g := mustGrid(t, values)
	if !reflect.DeepEqual(g.Values(), values) {
		t.Errorf("Values() = %v, want %v", g.Values(), values)
	}
	if g.MaxTile() != 16 || g.TileCount() != 5 || g.Sum() != 32 {
		t.Errorf("max %d count %d sum %d", g.MaxTile(), g.TileCount(), g.Sum())
	}
	if g.maxTileID() != 5 {
		t.Errorf("maxTileID() = %d, want 5", g.maxTileID())
	}

	bad := [][][]int{
		{},
		{{2, 0}, {0}},
		{{3, 0}, {0, 0}},
	}
	for _, b := range bad {
		if _, err := GridFromValues(b); err == nil {
			t.Errorf("GridFromValues(%v) should fail", b)
		}
	}
}
