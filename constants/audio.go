package constants

import "time"

// Audio Output
const (
	AudioSampleRate    = 44100
	AudioBufferLatency = 100 * time.Millisecond
	DefaultVolume      = 60
)

// Eat Sound Timing
const (
	EatSoundNote1Duration = 60 * time.Millisecond
	EatSoundNote2Duration = 140 * time.Millisecond
	EatSoundAttack        = 5 * time.Millisecond
	EatSoundNote1Release  = 30 * time.Millisecond
	EatSoundNote2Release  = 100 * time.Millisecond
)

// Game Over Sound Timing
const (
	GameOverNoteDuration = 180 * time.Millisecond
	GameOverNoteAttack   = 5 * time.Millisecond
	GameOverNoteRelease  = 120 * time.Millisecond
	GameOverNoiseRelease = 400 * time.Millisecond
)
