package frogger

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/tui-frogger/internal/core"
)

// Visual characters for rendering.
const (
	WaterChar  = '≈'
	RoadChar   = '·'
	GrassChar  = '░'
	EnemyChar  = '█'
	PlayerChar = '@'
)

// Cell limits for one block, so the board stays readable on huge terminals.
const (
	maxCellW = 16
	maxCellH = 5
	minCellW = 4
)

// boardView projects pixel-space coordinates onto terminal cells.
type boardView struct {
	offX, offY   int // Top-left cell of the board
	cellW, cellH int // Cells per block
	cols, rows   int
	pxPerCol     float64 // Pixels per terminal column
}

// newBoardView fits the board into the screen below the HUD line.
// Returns false when the screen cannot hold one cell per block.
func (g *Game) newBoardView(dst *core.Screen) (boardView, bool) {
	b := g.cfg.Board
	availH := dst.Height() - 1

	cellW := core.Min(dst.Width()/b.Cols, maxCellW)
	cellH := core.Min(availH/b.Rows, maxCellH)
	if cellW < minCellW || cellH < 1 {
		return boardView{}, false
	}

	boardW := cellW * b.Cols
	boardH := cellH * b.Rows
	return boardView{
		offX:     (dst.Width() - boardW) / 2,
		offY:     1 + (availH-boardH)/2,
		cellW:    cellW,
		cellH:    cellH,
		cols:     b.Cols,
		rows:     b.Rows,
		pxPerCol: b.BlockWidth / float64(cellW),
	}, true
}

// col converts a pixel x coordinate to a screen column.
func (v boardView) col(px float64) int {
	return v.offX + int(math.Floor(px/v.pxPerCol))
}

// rowTop returns the first screen row of a grid row.
func (v boardView) rowTop(row int) int {
	return v.offY + row*v.cellH
}

func (v boardView) right() int {
	return v.offX + v.cols*v.cellW
}

// Render draws the board, the enemies, the player and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}

	v, ok := g.newBoardView(dst)
	if !ok {
		g.drawCenteredMessage(dst, "Window too small", "Resize to continue")
		return
	}

	g.drawBoard(dst, v)
	for _, e := range g.session.enemies {
		g.drawEnemy(dst, v, e)
	}
	g.drawPlayer(dst, v)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawBoard paints the goal row, the enemy lanes and the grass.
func (g *Game) drawBoard(dst *core.Screen, v boardView) {
	lanes := g.cfg.Enemies.Lanes
	width := v.cols * v.cellW

	for row := 0; row < v.rows; row++ {
		ch, color := GrassChar, core.ColorGreen
		switch {
		case row == 0:
			ch, color = WaterChar, core.ColorBlue
		case row <= lanes:
			ch, color = RoadChar, core.ColorGray
		}
		top := v.rowTop(row)
		dst.DrawRect(core.NewRect(v.offX, top, width, v.cellH), ch, color)
	}
}

// drawEnemy fills the enemy's block, clipped to the board.
func (g *Game) drawEnemy(dst *core.Screen, v boardView, e *Enemy) {
	x0 := core.Max(v.col(e.X()), v.offX)
	x1 := core.Min(v.col(e.X()+g.cfg.Board.BlockWidth), v.right())
	if x1 <= x0 {
		return
	}
	dst.DrawRect(core.NewRect(x0, v.rowTop(e.Row()), x1-x0, v.cellH), EnemyChar, core.ColorRed)
}

// drawPlayer fills the player's collision area, a quarter block narrower on
// each side than its block.
func (g *Game) drawPlayer(dst *core.Screen, v boardView) {
	bx, by := g.session.player.Block()
	inset := v.cellW / 4
	x0 := v.offX + bx*v.cellW + inset
	w := core.Max(v.cellW-2*inset, 1)
	dst.DrawRect(core.NewRect(x0, v.rowTop(by), w, v.cellH), PlayerChar, core.ColorBrightYellow)
}

// drawHUD writes the counters on the top line.
func (g *Game) drawHUD(dst *core.Screen) {
	st := g.session.Stats()
	hud := fmt.Sprintf(" %s  Score: %d  Crossings: %d  Hits: %d  Enemies: %d ",
		g.title, st.Score, st.Crossings, st.Collisions, st.Active)
	if g.cfg.Difficulty.Enabled {
		hud += fmt.Sprintf(" Level: %d%% ", int(g.session.Level()*100))
	}
	dst.DrawTextColored(0, 0, hud, core.ColorWhite)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := utf8.RuneCountInString(title)
	subtitleLen := utf8.RuneCountInString(subtitle)

	boxW := core.Max(titleLen, subtitleLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
}
