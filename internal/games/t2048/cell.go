package t2048

// Cell is one grid slot. It owns at most one settled tile and at most one
// incoming tile that is merging into the settled one during the current turn.
type Cell struct {
	x, y     int
	tile     *Tile
	incoming *Tile
}

func newCell(x, y int) *Cell {
	return &Cell{x: x, y: y}
}

// X returns the column of the cell.
func (c *Cell) X() int { return c.x }

// Y returns the row of the cell.
func (c *Cell) Y() int { return c.y }

// Tile returns the settled tile, or nil.
func (c *Cell) Tile() *Tile { return c.tile }

// Incoming returns the tile merging into this cell this turn, or nil.
func (c *Cell) Incoming() *Tile { return c.incoming }

// Empty reports whether the cell has no settled tile.
func (c *Cell) Empty() bool { return c.tile == nil }

// CanAccept reports whether t may slide into this cell: the cell is empty,
// or its occupant has the same value and nothing is merging into it yet.
func (c *Cell) CanAccept(t *Tile) bool {
	if c.tile == nil {
		return true
	}
	return c.incoming == nil && c.tile.value == t.value
}

// SetTile assigns or clears the settled tile and stamps the cell position on it.
// The previous owner must release the tile itself.
func (c *Cell) SetTile(t *Tile) {
	c.tile = t
	if t != nil {
		t.place(c.x, c.y)
	}
}

// SetIncoming assigns or clears the tile merging into this cell.
func (c *Cell) SetIncoming(t *Tile) {
	c.incoming = t
	if t != nil {
		t.place(c.x, c.y)
	}
}

// ResolveMerge folds the incoming tile into the settled one. It returns the
// new value (the score gained) and the discarded tile. When either slot is
// empty it does nothing and returns (0, nil).
func (c *Cell) ResolveMerge() (gained int, discarded *Tile) {
	if c.tile == nil || c.incoming == nil {
		return 0, nil
	}
	discarded = c.incoming
	c.tile.SetValue(c.tile.value + discarded.value)
	c.incoming = nil
	return c.tile.value, discarded
}
