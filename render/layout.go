package render

const (
	hudRows     = 1 // Score / high score / time line
	borderWidth = 1
)

// GridFor derives the board size that fits a screen, fixed for the session
// Each cell spans cellW columns and cellH rows; the HUD and border are reserved
func GridFor(screenW, screenH, cellW, cellH int) (rows, cols int) {
	if cellW <= 0 || cellH <= 0 {
		return 0, 0
	}
	cols = (screenW - 2*borderWidth) / cellW
	rows = (screenH - hudRows - 2*borderWidth) / cellH
	if cols < 0 {
		cols = 0
	}
	if rows < 0 {
		rows = 0
	}
	return rows, cols
}

// cellOrigin returns the top-left screen coordinate of a board cell
func cellOrigin(row, col, cellW, cellH int) (x, y int) {
	return borderWidth + col*cellW, hudRows + borderWidth + row*cellH
}
