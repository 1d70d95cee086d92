// Package grid maps logical cells to display space and holds the pure collision rules
package grid

import (
	"math"

	"github.com/joonazan/vec2"

	"github.com/lixenwraith/snake-monster/constants"
	"github.com/lixenwraith/snake-monster/core"
)

// The three glyph kinds anchor differently, so each mapping keeps its own offset.
// Do not derive one from another.

// SnakeDisplay returns the display position of a snake segment
func SnakeDisplay(c core.Cell) vec2.Vector {
	return vec2.Vector{
		X: float64(c.Row*constants.CellPixels + constants.SnakeOffsetX),
		Y: float64(c.Col*constants.CellPixels + constants.SnakeOffsetY),
	}
}

// MonsterDisplay returns the display position of the monster glyph
func MonsterDisplay(c core.Cell) vec2.Vector {
	return vec2.Vector{
		X: float64(c.Row*constants.CellPixels + constants.MonsterOffsetX),
		Y: float64(c.Col*constants.CellPixels + constants.MonsterOffsetY),
	}
}

// FoodDisplay returns the display position of a food numeral
func FoodDisplay(c core.Cell) vec2.Vector {
	return vec2.Vector{
		X: float64(c.Row*constants.CellPixels + constants.FoodOffsetX),
		Y: float64(c.Col*constants.CellPixels + constants.FoodOffsetY),
	}
}

// SnakeCellAt inverts SnakeDisplay
func SnakeCellAt(v vec2.Vector) core.Cell {
	return cellAt(v, constants.SnakeOffsetX, constants.SnakeOffsetY)
}

// MonsterCellAt inverts MonsterDisplay
func MonsterCellAt(v vec2.Vector) core.Cell {
	return cellAt(v, constants.MonsterOffsetX, constants.MonsterOffsetY)
}

// FoodCellAt inverts FoodDisplay
func FoodCellAt(v vec2.Vector) core.Cell {
	return cellAt(v, constants.FoodOffsetX, constants.FoodOffsetY)
}

func cellAt(v vec2.Vector, offX, offY int) core.Cell {
	return core.Cell{
		Row: int(math.Round((v.X - float64(offX)) / constants.CellPixels)),
		Col: int(math.Round((v.Y - float64(offY)) / constants.CellPixels)),
	}
}
