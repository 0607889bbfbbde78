package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/errors"
)

// SoundManager plays short effects for game events
// Every operation is a no-op until Initialize succeeds, so the game runs silently without a device
type SoundManager struct {
	mu          sync.Mutex
	cfg         *AudioConfig
	mixer       *beep.Mixer
	logger      zerolog.Logger
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *AudioConfig, logger zerolog.Logger) *SoundManager {
	if cfg == nil {
		cfg = DefaultAudioConfig()
	}
	return &SoundManager{
		cfg:    cfg,
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize sets up the speaker; a no-op when audio is disabled
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.cfg.Enabled {
		return nil
	}

	rate := beep.SampleRate(sm.cfg.SampleRate)
	if err := speaker.Init(rate, rate.N(constants.AudioBufferLatency)); err != nil {
		return errors.Wrap(err, "failed to initialize speaker")
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug().Int("sample_rate", sm.cfg.SampleRate).Msg("audio initialized")
	return nil
}

// Cleanup stops all sounds and closes the audio system
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	speaker.Close()
	sm.initialized = false
}

// Play queues an effect on the mixer
func (sm *SoundManager) Play(soundType SoundType) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	streamer := GetSoundEffect(soundType, sm.cfg)
	if streamer == nil {
		return
	}

	speaker.Lock()
	sm.mixer.Add(streamer)
	speaker.Unlock()
}

// EventTypes implements engine.Handler
func (sm *SoundManager) EventTypes() []engine.EventType {
	return []engine.EventType{engine.EventFoodEaten, engine.EventGameOver}
}

// HandleEvent implements engine.Handler
func (sm *SoundManager) HandleEvent(ev engine.GameEvent) {
	switch ev.Type {
	case engine.EventFoodEaten:
		sm.Play(SoundEat)
	case engine.EventGameOver:
		sm.Play(SoundGameOver)
	}
}

// Drain waits until queued effects finish or timeout elapses
func (sm *SoundManager) Drain(timeout time.Duration) {
	deadline := time.Now().Add(timeout)
	for sm.Pending() > 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
}

// Pending returns the number of streamers still playing on the mixer
func (sm *SoundManager) Pending() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()
	return sm.mixer.Len()
}
