package grid

import (
	"github.com/lixenwraith/snake-monster/constants"
	"github.com/lixenwraith/snake-monster/core"
)

// Occupancy answers whether a cell is taken by the snake body
type Occupancy interface {
	Contains(c core.Cell) bool
}

// SnakeCanEnter reports whether the snake may step into c
// A false result is a harmless bounce, not a loss
func SnakeCanEnter(c core.Cell, body Occupancy) bool {
	return inRange(c, constants.GridSize) && !body.Contains(c)
}

// MonsterInBounds reports whether c lies inside the monster's smaller grid
func MonsterInBounds(c core.Cell) bool {
	return inRange(c, constants.MonsterGridSize)
}

// ContactCells returns the monster's 2x2 footprint anchored at m
func ContactCells(m core.Cell) [4]core.Cell {
	return [4]core.Cell{
		{Row: m.Row + 1, Col: m.Col + 1},
		{Row: m.Row + 1, Col: m.Col},
		{Row: m.Row, Col: m.Col + 1},
		{Row: m.Row, Col: m.Col},
	}
}

// TouchesSnakeBody reports whether the footprint overlaps any body cell
func TouchesSnakeBody(m core.Cell, body Occupancy) bool {
	for _, c := range ContactCells(m) {
		if body.Contains(c) {
			return true
		}
	}
	return false
}

// TouchesSnakeHead reports whether head lies inside the footprint
func TouchesSnakeHead(m, head core.Cell) bool {
	for _, c := range ContactCells(m) {
		if c == head {
			return true
		}
	}
	return false
}

func inRange(c core.Cell, size int) bool {
	return c.Row >= 0 && c.Row < size && c.Col >= 0 && c.Col < size
}
