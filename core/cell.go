package core

// Cell is a logical grid coordinate
// Row feeds the horizontal display axis, Col the vertical one
type Cell struct {
	Row, Col int
}

// Add returns the cell offset by d
func (c Cell) Add(d Cell) Cell {
	return Cell{Row: c.Row + d.Row, Col: c.Col + d.Col}
}

// Manhattan returns the taxicab distance between two cells
func (c Cell) Manhattan(o Cell) int {
	return abs(c.Row-o.Row) + abs(c.Col-o.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
