package constants

// Status and Banner Text
const (
	StatusFormat      = "Contact: %d    Time: %d    Motion: %s"
	MotionWaiting     = "Wait for start"
	MotionPaused      = "Paused"
	IntroWelcome      = "Welcome to the Snake Game!"
	IntroPrompt       = "Click anywhere to start the game..."
	BannerLose        = "Game Over!"
	BannerWin         = "Winner!"
	FinalLose         = "You lose. Click anywhere to quit."
	FinalWin          = "You win! Click anywhere to quit."
	BannerPadding     = "    "
	DebugMotionFormat = "ticks %d  moves %d/%d  blocked %d/%d"
	DebugFoodFormat   = "eaten %d  toggles %d  contacts %d"
)

// Terminal Layout
const (
	// TerminalCellWidth is the number of terminal columns per grid cell
	TerminalCellWidth = 2

	// BoardTop is the first terminal row of the board, below the status area
	BoardTop = 4

	// BoardLeft is the first terminal column of the board
	BoardLeft = 2
)
