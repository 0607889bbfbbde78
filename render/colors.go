package render

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
)

// RGB color definitions for the tcell playfield
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbSnakeBody  = tcell.NewRGBColor(0, 200, 0)     // Normal Green
	RgbSnakeHead  = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbFood       = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // White
	RgbHintText   = tcell.NewRGBColor(120, 120, 120) // Dim gray
	RgbGameOver   = tcell.NewRGBColor(255, 215, 0)   // Gold
)

// Adaptive colors for the plain renderer's status lines
var (
	colorScore    = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}
	colorHint     = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}
	colorGameOver = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}
)
