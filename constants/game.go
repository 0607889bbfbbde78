package constants

import "time"

// Board Dimensions
const (
	// GridWidth is the number of playfield columns
	GridWidth = 20

	// GridHeight is the number of playfield rows
	GridHeight = 10

	// StartRow and StartCol place the length-1 snake at game start
	StartRow = 5
	StartCol = 5
)

// Game Loop Timing Constants
const (
	// InteractiveTickInterval is the clock period when a human steers
	InteractiveTickInterval = 100 * time.Millisecond

	// AutoplayTickInterval is the clock period when the random pilot steers
	AutoplayTickInterval = 500 * time.Millisecond

	// MaxTickLag is how far the clock may fall behind before it rebases the next deadline
	MaxTickLag = 2
)

// Food Placement
const (
	// FoodAttemptsPerCell bounds rejection sampling to this many draws per board cell
	// before placement falls back to a scan of free cells
	FoodAttemptsPerCell = 4
)
