package t2048

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// Rows above the board: title, score line, status line.
const hudHeight = 3

// boardSize returns the board width and height in characters, borders included.
func (g *Game) boardSize() (w, h int) {
	return g.size*g.cellW + 1, g.size*g.cellH + 1
}

// TileColor returns the shade for a tile value: one step darker per doubling.
func TileColor(value int) core.Color {
	if value < 2 {
		return core.ColorDefault
	}
	idx := bits.TrailingZeros(uint(value)) - 1
	idx = core.Clamp(idx, 0, len(core.TileShades)-1)
	return core.TileShades[idx]
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.ctrl == nil {
		return
	}

	// Check screen size
	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	boardW, boardH := g.boardSize()
	board := core.NewRect((g.screenW-boardW)/2, hudHeight+1, boardW, boardH)

	g.renderHUD(dst, board)
	g.renderGridLines(dst, board)
	g.renderTiles(dst, board)
	g.renderOverlays(dst, board)
}

// renderTooSmall shows a "window too small" message.
func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, "Please resize terminal")
}

// renderHUD draws the title, score and best score.
func (g *Game) renderHUD(dst *core.Screen, board core.Rect) {
	title := g.variant.title
	dst.DrawText(board.X+(board.W-len(title))/2, 0, title)

	dst.DrawText(board.X, 1, fmt.Sprintf("Score: %d", g.ctrl.Score()))

	best := fmt.Sprintf("Best: %d", max(g.ctrl.Best(), g.ctrl.Score()))
	dst.DrawText(max(board.X, board.Right()-len(best)), 1, best)

	status := fmt.Sprintf("Max: %d", g.ctrl.Grid().MaxTile())
	dst.DrawText(board.X+(board.W-len(status))/2, 2, status)
}

// renderGridLines draws the cell borders.
func (g *Game) renderGridLines(dst *core.Screen, board core.Rect) {
	n := g.size
	for y := range n + 1 {
		for x := range n + 1 {
			px := board.X + x*g.cellW
			py := board.Y + y*g.cellH

			// Draw corner/intersection
			var corner rune
			switch {
			case y == 0 && x == 0:
				corner = '┌'
			case y == 0 && x == n:
				corner = '┐'
			case y == n && x == 0:
				corner = '└'
			case y == n && x == n:
				corner = '┘'
			case y == 0:
				corner = '┬'
			case y == n:
				corner = '┴'
			case x == 0:
				corner = '├'
			case x == n:
				corner = '┤'
			default:
				corner = '┼'
			}
			dst.SetColored(px, py, corner, core.ColorGray)

			if x < n {
				for i := 1; i < g.cellW; i++ {
					dst.SetColored(px+i, py, '─', core.ColorGray)
				}
			}
			if y < n {
				for i := 1; i < g.cellH; i++ {
					dst.SetColored(px, py+i, '│', core.ColorGray)
				}
			}
		}
	}
}

// renderTiles draws settled tiles in their cells and sliding tiles in between.
func (g *Game) renderTiles(dst *core.Screen, board core.Rect) {
	for _, cell := range g.ctrl.Grid().Cells() {
		tile := cell.Tile()
		if tile == nil || g.fx.hidden(tile.ID()) {
			continue
		}
		value := g.fx.displayValue(tile.ID(), tile.Value())
		px := board.X + cell.X()*g.cellW
		py := board.Y + cell.Y()*g.cellH
		g.drawTile(dst, px, py, value, g.fx.highlighted(tile.ID()))
	}

	for i := range g.fx.sliding {
		tr := &g.fx.sliding[i]
		x, y := tr.position()
		px := board.X + int(math.Round(x*float64(g.cellW)))
		py := board.Y + int(math.Round(y*float64(g.cellH)))
		g.drawTile(dst, px, py, tr.value, false)
	}
}

// drawTile draws a value inside the cell whose top-left border is (px, py).
func (g *Game) drawTile(dst *core.Screen, px, py, value int, highlight bool) {
	color := TileColor(value)
	innerW := g.cellW - 1
	innerH := max(g.cellH-1, 1)

	if highlight {
		for dy := range innerH {
			for dx := range innerW {
				dst.SetColored(px+1+dx, py+1+dy, '░', color)
			}
		}
	}

	text := strconv.Itoa(value)
	padLeft := max((innerW-len(text))/2, 0)
	dst.DrawTextColored(px+1+padLeft, py+1+(innerH-1)/2, text, color)
}

// renderOverlays draws game state overlays.
func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	centerX, centerY := board.Center()

	if g.prompt != nil {
		lines := wrapText(g.prompt.message, max(board.W, 24))
		lines = append(lines, "", "Y: yes   Esc: no")
		g.drawOverlay(dst, centerX, centerY, lines...)
		return
	}

	if g.paused {
		g.drawOverlay(dst, centerX, centerY, "PAUSED", "Press P to resume")
		return
	}

	if g.over != nil {
		lines := []string{
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.over.final),
			fmt.Sprintf("Best: %d", g.over.best),
		}
		if g.over.newBest {
			lines = append(lines, "New best!")
		}
		lines = append(lines, "Press R to restart")
		g.drawOverlay(dst, centerX, centerY, lines...)
	}
}

// drawOverlay draws a centered text overlay.
func (g *Game) drawOverlay(dst *core.Screen, centerX, centerY int, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len(line))
	}

	box := core.NewRect(centerX-(maxLen+4)/2, centerY-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	for i, line := range lines {
		dst.DrawText(centerX-len(line)/2, box.Y+1+i, line)
	}
}

// wrapText splits text into lines no longer than width, breaking at spaces.
func wrapText(text string, width int) []string {
	var lines []string
	var line strings.Builder
	for _, word := range strings.Fields(text) {
		if line.Len() > 0 && line.Len()+1+len(word) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return lines
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows/WASD/HJKL: Move | N: New | X: Reset best | P: Pause | Q: Quit"
}
