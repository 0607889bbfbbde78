package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
)

// tokenDirections maps the recognized input tokens to moves
var tokenDirections = map[string]engine.Direction{
	constants.TokenUp:    engine.DirUp,
	constants.TokenLeft:  engine.DirLeft,
	constants.TokenDown:  engine.DirDown,
	constants.TokenRight: engine.DirRight,
}

// ParseToken normalizes a raw token and maps it to a direction
// Matching is case-insensitive and ignores surrounding whitespace; ok is false for anything else
func ParseToken(raw string) (engine.Direction, bool) {
	d, ok := tokenDirections[normalize(raw)]
	return d, ok
}

// KeyTable maps tcell keys to input tokens
type KeyTable struct {
	// Special keys (arrows)
	SpecialKeys map[tcell.Key]string

	// Keys that end the game from the keyboard
	QuitKeys map[tcell.Key]bool

	// Runes that end the game
	QuitRunes map[rune]bool
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]string{
			tcell.KeyUp:    constants.TokenUp,
			tcell.KeyLeft:  constants.TokenLeft,
			tcell.KeyDown:  constants.TokenDown,
			tcell.KeyRight: constants.TokenRight,
		},
		QuitKeys: map[tcell.Key]bool{
			tcell.KeyEscape: true,
			tcell.KeyCtrlC:  true,
			tcell.KeyCtrlQ:  true,
		},
		QuitRunes: map[rune]bool{
			'q': true,
			'Q': true,
		},
	}
}

// Translate converts a key event into a token
// quit is true for quit keys; an empty token with quit false means the key is unbound
func (kt *KeyTable) Translate(ev *tcell.EventKey) (token string, quit bool) {
	if kt.QuitKeys[ev.Key()] {
		return "", true
	}
	if ev.Key() == tcell.KeyRune {
		r := ev.Rune()
		if kt.QuitRunes[r] {
			return "", true
		}
		return string(r), false
	}
	return kt.SpecialKeys[ev.Key()], false
}
