package constants

// Glyphs
const (
	SnakeGlyph = 'O'
	FoodGlyph  = '*'
	EmptyGlyph = ' '

	// HeadGlyph is used by the tcell renderer only; the plain renderer keeps SnakeGlyph for the whole body
	HeadGlyph = '@'
)

// Status Text
const (
	ScorePrefix  = "Score: "
	ControlHint  = "Use 'w', 'a', 's', 'd' to move"
	GameOverText = "Game Over!"
	FinalPrefix  = "Final score: "

	// KeyHint is shown by the tcell renderer, where arrows and quit keys also work
	KeyHint = "w/a/s/d or arrows to move, q to quit"
)

// Input Tokens
const (
	TokenUp    = "w"
	TokenLeft  = "a"
	TokenDown  = "s"
	TokenRight = "d"
)

// MaxInputLineBytes bounds a line of typed input; longer lines are read through and dropped
const MaxInputLineBytes = 4096
