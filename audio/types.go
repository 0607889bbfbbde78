package audio

import (
	"github.com/lixenwraith/vi-snake/constants"
)

// SoundType represents different sound effects
type SoundType int

const (
	SoundEat      SoundType = iota // Food eaten
	SoundGameOver                  // Collision or full board
	soundTypeCount
)

// String returns the sound name used in logs
func (s SoundType) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// AudioConfig holds output settings and per-effect volumes in [0, 1]
type AudioConfig struct {
	Enabled       bool
	SampleRate    int
	MasterVolume  float64
	EffectVolumes [soundTypeCount]float64
}

// DefaultAudioConfig returns the built-in mix with audio disabled
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      false,
		SampleRate:   constants.AudioSampleRate,
		MasterVolume: float64(constants.DefaultVolume) / 100.0,
		EffectVolumes: [soundTypeCount]float64{
			SoundEat:      0.8,
			SoundGameOver: 1.0,
		},
	}
}

// WithVolume returns a copy with the master volume set from a 0-100 percentage
func (c AudioConfig) WithVolume(percent int) *AudioConfig {
	c.MasterVolume = min(max(float64(percent)/100.0, 0), 1)
	return &c
}
