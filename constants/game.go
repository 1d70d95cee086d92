package constants

import "time"

// Grid Dimensions
const (
	// GridSize is the number of rows and columns the snake and food occupy
	GridSize = 25

	// MonsterGridSize is the monster's extent; its glyph spans one extra row and column
	MonsterGridSize = 24

	// StartRow and StartCol locate the snake head when the session is built
	StartRow = 12
	StartCol = 12

	// MonsterMinDistance is the minimum Manhattan distance between the monster spawn and the snake start
	MonsterMinDistance = 12

	// BannerPivot splits the board into left/right halves for banner anchoring
	BannerPivot = 12
)

// Snake Growth
const (
	// InitialTargetLength is the snake's length target before eating
	InitialTargetLength = 5

	// MaxSnakeLength ends the game with a win when reached while growing
	MaxSnakeLength = 20
)

// Food Table
const (
	// FoodCount is the number of food items placed at start
	FoodCount = 5
)

// Snake Timing
const (
	// SnakeBasePeriod is the period when idle, blocked, or fully extended
	SnakeBasePeriod = 200 * time.Millisecond

	// SnakeGrowPeriod is the slower period while the snake grows toward its target
	SnakeGrowPeriod = 300 * time.Millisecond
)

// Monster Timing (jitter ranges, inclusive, in milliseconds)
const (
	MonsterBlockedMinMs = 250
	MonsterBlockedMaxMs = 350
	MonsterMovedMinMs   = 280
	MonsterMovedMaxMs   = 380
)

// Food Visibility Timing
const (
	// FoodFirstToggleDelay is the fixed delay before the first visibility toggle
	FoodFirstToggleDelay = 5 * time.Second

	FoodToggleMinMs = 5000
	FoodToggleMaxMs = 10000
)

// Status Timing
const (
	// StatusRefreshPeriod is the status line refresh interval
	StatusRefreshPeriod = 1 * time.Second
)
