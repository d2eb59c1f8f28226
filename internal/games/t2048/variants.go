package t2048

import "github.com/vovakirdan/tui-2048/internal/registry"

// variant is a registered board size. A zero size takes grid.size from config.
type variant struct {
	id    string
	title string
	size  int
}

var variants = []variant{
	{id: "2048", title: "2048"},
	{id: "2048_5x5", title: "2048 (5x5)", size: 5},
	{id: "2048_6x6", title: "2048 (6x6)", size: 6},
}

func init() {
	for _, v := range variants {
		registry.Register(v.id, func() registry.Game {
			return newGame(v)
		})
	}
}

// New creates the classic game, sized by configuration.
func New() *Game {
	return newGame(variants[0])
}

// IsVariant reports whether id names a 2048 variant.
func IsVariant(id string) bool {
	for _, v := range variants {
		if v.id == id {
			return true
		}
	}
	return false
}
