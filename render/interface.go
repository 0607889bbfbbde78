package render

import (
	"github.com/lixenwraith/vi-snake/engine"
)

// Renderer is an output sink for board snapshots
// Satisfies engine.Renderer; Close releases the underlying terminal
type Renderer interface {
	Render(snap engine.Snapshot) error
	GameOver(score int) error
	Close() error
}
