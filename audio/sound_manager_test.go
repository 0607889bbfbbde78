package audio

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/vi-snake/engine"
)

// TestSoundManagerGracefulDegradation verifies audio operations don't panic when not initialized
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(nil, zerolog.Nop())

	assert.NotPanics(t, func() {
		sm.Play(SoundEat)
		sm.HandleEvent(engine.GameEvent{Type: engine.EventGameOver})
		sm.Drain(time.Millisecond)
		sm.Cleanup()
	})
	assert.Zero(t, sm.Pending())
}

// TestSoundManagerDisabledSkipsDevice verifies Initialize never touches the speaker when disabled
func TestSoundManagerDisabledSkipsDevice(t *testing.T) {
	sm := NewSoundManager(DefaultAudioConfig(), zerolog.Nop())

	assert.NoError(t, sm.Initialize())
	assert.False(t, sm.initialized)
}

// TestSoundManagerInitialization verifies sound manager can be initialized and cleaned up
func TestSoundManagerInitialization(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.Enabled = true
	sm := NewSoundManager(cfg, zerolog.Nop())

	// Speaker initialization may fail in CI without audio devices; audio is optional
	if err := sm.Initialize(); err != nil {
		t.Logf("Sound initialization failed (expected in test environment): %v", err)
		return
	}
	assert.NoError(t, sm.Initialize(), "second initialization is a no-op")
	sm.Cleanup()
}

// TestSoundManagerRoutesEvents verifies each event queues its effect on the mixer
func TestSoundManagerRoutesEvents(t *testing.T) {
	sm := NewSoundManager(DefaultAudioConfig(), zerolog.Nop())
	// Mark ready without opening a device; the mixer is never pulled so streamers stay queued
	sm.initialized = true

	sm.HandleEvent(engine.GameEvent{Type: engine.EventFoodEaten})
	assert.Equal(t, 1, sm.Pending())

	sm.HandleEvent(engine.GameEvent{Type: engine.EventDirectionChanged})
	assert.Equal(t, 1, sm.Pending(), "direction changes are silent")

	sm.HandleEvent(engine.GameEvent{Type: engine.EventGameOver})
	assert.Equal(t, 2, sm.Pending())

	assert.ElementsMatch(t, []engine.EventType{engine.EventFoodEaten, engine.EventGameOver}, sm.EventTypes())
}
