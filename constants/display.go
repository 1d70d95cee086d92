package constants

// Display-space geometry, turtle-style coordinates with Y growing upward
const (
	// CellPixels is the display size of one grid cell
	CellPixels = 20

	SnakeOffsetX = -240
	SnakeOffsetY = -280

	MonsterOffsetX = -230
	MonsterOffsetY = -270

	FoodOffsetX = -240
	FoodOffsetY = -292
)
