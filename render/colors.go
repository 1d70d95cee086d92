package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-monster/core"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbBorder     = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbStatusText = tcell.NewRGBColor(255, 255, 255) // White
	RgbDebugText  = tcell.NewRGBColor(120, 120, 120) // Dim gray
	RgbIntroText  = tcell.NewRGBColor(135, 206, 250) // Light sky blue

	RgbSnakeHead = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbSnakeBody = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbSnakeDead = tcell.NewRGBColor(128, 0, 128)   // Dark purple
	RgbMonster   = tcell.NewRGBColor(144, 0, 200)   // Violet
	RgbFood      = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbBanner    = tcell.NewRGBColor(255, 165, 0)   // Orange
)

// roleColor returns the fill color for a snake segment role
func roleColor(role core.ColorRole) tcell.Color {
	switch role {
	case core.RoleHead:
		return RgbSnakeHead
	case core.RoleDead:
		return RgbSnakeDead
	default:
		return RgbSnakeBody
	}
}
