package t2048

import "fmt"

// Tile is a mergeable power-of-two value. Tiles are compared by identity:
// two tiles holding the same value are still different tiles.
type Tile struct {
	id    uint64
	value int
	x, y  int
}

// NewTile creates an unplaced tile. It panics if value is not a power of two >= 2.
func NewTile(id uint64, value int) *Tile {
	mustBeTileValue(value)
	return &Tile{id: id, value: value, x: -1, y: -1}
}

// ID returns the tile identity.
func (t *Tile) ID() uint64 {
	return t.id
}

// Value returns the tile value.
func (t *Tile) Value() int {
	return t.value
}

// SetValue replaces the value. Only merge resolution calls this.
func (t *Tile) SetValue(v int) {
	mustBeTileValue(v)
	t.value = v
}

// Position returns the coordinates of the cell that last owned the tile,
// or (-1, -1) for a tile never placed.
func (t *Tile) Position() (x, y int) {
	return t.x, t.y
}

func (t *Tile) place(x, y int) {
	t.x, t.y = x, y
}

// IsTileValue reports whether v is a legal tile value.
func IsTileValue(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

func mustBeTileValue(v int) {
	if !IsTileValue(v) {
		panic(fmt.Sprintf("t2048: invalid tile value %d", v))
	}
}
