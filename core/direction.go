package core

// Direction is the snake's facing; DirNone until the first directional input
type Direction uint8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Delta returns the unit step for the direction in (row, col) terms
func (d Direction) Delta() Cell {
	switch d {
	case DirUp:
		return Cell{Row: 0, Col: 1}
	case DirDown:
		return Cell{Row: 0, Col: -1}
	case DirLeft:
		return Cell{Row: -1, Col: 0}
	case DirRight:
		return Cell{Row: 1, Col: 0}
	}
	return Cell{}
}

// String returns the name shown in the status line
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	}
	return "None"
}
