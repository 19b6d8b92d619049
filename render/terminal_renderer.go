package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/game"
)

const (
	glyphSnake = '█'
	glyphFood  = '●'
)

// TerminalRenderer draws snapshots onto a tcell screen
type TerminalRenderer struct {
	screen tcell.Screen
	cellW  int
	cellH  int

	base      tcell.Style
	border    tcell.Style
	body      tcell.Style
	head      tcell.Style
	dead      tcell.Style
	food      tcell.Style
	hudLabel  tcell.Style
	hudValue  tcell.Style
	highScore tcell.Style
	modal     tcell.Style
	title     tcell.Style
	alert     tcell.Style
}

// NewTerminalRenderer creates a renderer with the given cell footprint
func NewTerminalRenderer(screen tcell.Screen, cellW, cellH int) *TerminalRenderer {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	base := tcell.StyleDefault.Background(RgbBackground)
	modal := base.Background(RgbModalBg).Foreground(RgbHudValue)

	return &TerminalRenderer{
		screen:    screen,
		cellW:     cellW,
		cellH:     cellH,
		base:      base,
		border:    base.Foreground(RgbBorder),
		body:      base.Foreground(RgbSnakeBody),
		head:      base.Foreground(RgbSnakeHead),
		dead:      base.Foreground(RgbSnakeDead),
		food:      base.Foreground(RgbFood),
		hudLabel:  base.Foreground(RgbHudLabel),
		hudValue:  base.Foreground(RgbHudValue).Bold(true),
		highScore: base.Foreground(RgbHighScore).Bold(true),
		modal:     modal,
		title:     modal.Foreground(RgbModalTitle).Bold(true),
		alert:     modal.Foreground(RgbModalAlert).Bold(true),
	}
}

// Grid returns the board size for the current screen
func (r *TerminalRenderer) Grid() (rows, cols int) {
	w, h := r.screen.Size()
	return GridFor(w, h, r.cellW, r.cellH)
}

// Render draws the whole frame
func (r *TerminalRenderer) Render(snap game.Snapshot) {
	r.screen.Fill(' ', r.base)

	r.drawHUD(snap)
	r.drawBorder(snap.Rows, snap.Cols)
	r.drawBoard(snap)

	switch snap.Phase {
	case game.PhaseIdle:
		r.drawModal(snap, []modalLine{
			{"VI-SNAKE", r.title},
			{"", r.modal},
			{"Enter / Space   start", r.modal},
			{"hjkl / arrows   steer", r.modal},
			{"q               quit", r.modal},
		})
	case game.PhaseGameOver:
		r.drawModal(snap, []modalLine{
			{"GAME OVER", r.alert},
			{collisionText(snap.Collision), r.modal},
			{"", r.modal},
			{"Score " + game.FormatScore(snap.Score) + "   Time " + snap.Elapsed.String(), r.modal},
			{"", r.modal},
			{"r   restart     q   quit", r.modal},
		})
	}

	r.screen.Show()
}

// Sync forces a full repaint, used after terminal resize
func (r *TerminalRenderer) Sync() {
	r.screen.Sync()
}

func collisionText(c game.Collision) string {
	switch c {
	case game.CollisionWall:
		return "hit the wall"
	case game.CollisionSelf:
		return "bit your own tail"
	}
	return ""
}

func (r *TerminalRenderer) drawHUD(snap game.Snapshot) {
	x := 0
	x = r.drawText(x, 0, "Score ", r.hudLabel)
	x = r.drawText(x, 0, game.FormatScore(snap.Score), r.hudValue)
	x = r.drawText(x, 0, "   High ", r.hudLabel)
	x = r.drawText(x, 0, game.FormatScore(snap.HighScore), r.highScore)
	x = r.drawText(x, 0, "   Time ", r.hudLabel)
	r.drawText(x, 0, snap.Elapsed.String(), r.hudValue)
}

func (r *TerminalRenderer) drawBorder(rows, cols int) {
	top := hudRows
	bottom := hudRows + borderWidth + rows*r.cellH
	right := borderWidth + cols*r.cellW

	for x := 1; x < right; x++ {
		r.screen.SetContent(x, top, '─', nil, r.border)
		r.screen.SetContent(x, bottom, '─', nil, r.border)
	}
	for y := top + 1; y < bottom; y++ {
		r.screen.SetContent(0, y, '│', nil, r.border)
		r.screen.SetContent(right, y, '│', nil, r.border)
	}
	r.screen.SetContent(0, top, '┌', nil, r.border)
	r.screen.SetContent(right, top, '┐', nil, r.border)
	r.screen.SetContent(0, bottom, '└', nil, r.border)
	r.screen.SetContent(right, bottom, '┘', nil, r.border)
}

func (r *TerminalRenderer) drawBoard(snap game.Snapshot) {
	bodyStyle, headStyle := r.body, r.head
	if snap.Phase == game.PhaseGameOver {
		bodyStyle, headStyle = r.dead, r.dead
	}

	for i, p := range snap.Snake {
		style := bodyStyle
		if i == 0 {
			style = headStyle
		}
		r.fillCell(p, glyphSnake, style)
	}

	x, y := cellOrigin(snap.Food.Row, snap.Food.Col, r.cellW, r.cellH)
	if snap.Food.Row >= 0 && snap.Food.Row < snap.Rows && snap.Food.Col >= 0 && snap.Food.Col < snap.Cols {
		r.screen.SetContent(x, y, glyphFood, nil, r.food)
	}
}

// fillCell paints every screen position a board cell covers
func (r *TerminalRenderer) fillCell(p game.Position, ch rune, style tcell.Style) {
	x0, y0 := cellOrigin(p.Row, p.Col, r.cellW, r.cellH)
	for dy := 0; dy < r.cellH; dy++ {
		for dx := 0; dx < r.cellW; dx++ {
			r.screen.SetContent(x0+dx, y0+dy, ch, nil, style)
		}
	}
}

type modalLine struct {
	text  string
	style tcell.Style
}

// drawModal centres a padded panel over the board
func (r *TerminalRenderer) drawModal(snap game.Snapshot, lines []modalLine) {
	width := 0
	for _, l := range lines {
		if n := len([]rune(l.text)); n > width {
			width = n
		}
	}
	width += 4
	height := len(lines) + 2

	boardW := 2*borderWidth + snap.Cols*r.cellW
	boardH := 2*borderWidth + snap.Rows*r.cellH
	left := (boardW - width) / 2
	top := hudRows + (boardH-height)/2
	if left < 0 {
		left = 0
	}
	if top < hudRows {
		top = hudRows
	}

	for y := top; y < top+height; y++ {
		for x := left; x < left+width; x++ {
			r.screen.SetContent(x, y, ' ', nil, r.modal)
		}
	}
	for i, l := range lines {
		n := len([]rune(l.text))
		r.drawText(left+(width-n)/2, top+1+i, l.text, l.style)
	}
}

func (r *TerminalRenderer) drawText(x, y int, text string, style tcell.Style) int {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
	return x
}

// String summarises the renderer geometry for logs
func (r *TerminalRenderer) String() string {
	rows, cols := r.Grid()
	return fmt.Sprintf("terminal %dx%d cells of %dx%d", rows, cols, r.cellW, r.cellH)
}
