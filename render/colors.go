package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(90, 90, 110)   // Muted slate
	RgbSnakeBody  = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbSnakeHead  = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbSnakeDead  = tcell.NewRGBColor(180, 50, 50)   // Dark Red
	RgbFood       = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbHudLabel   = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbHudValue   = tcell.NewRGBColor(255, 255, 255) // White
	RgbHighScore  = tcell.NewRGBColor(255, 215, 0)   // Gold
	RgbModalBg    = tcell.NewRGBColor(40, 42, 60)    // Raised panel
	RgbModalTitle = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbModalAlert = tcell.NewRGBColor(255, 120, 120) // Bright Red
)
