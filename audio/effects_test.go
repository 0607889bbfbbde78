package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRate = beep.SampleRate(1000)

// drain pulls s to completion and returns every sample
func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 64)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok || n < len(buf) {
			return out
		}
	}
}

func TestOscillator_StopsAfterDuration(t *testing.T) {
	samples := drain(NewOscillator(100, 100*time.Millisecond, WaveSquare, testRate))

	require.Len(t, samples, 100)
	for _, s := range samples {
		assert.Equal(t, 1.0, math.Abs(s[0]))
		assert.Equal(t, s[0], s[1])
	}
}

func TestOscillator_WaveRanges(t *testing.T) {
	for _, wave := range []WaveType{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		for _, s := range drain(NewOscillator(37, 50*time.Millisecond, wave, testRate)) {
			assert.LessOrEqual(t, math.Abs(s[0]), 1.0, "wave %d", wave)
		}
	}
}

func TestEnvelope_RampsInAndOut(t *testing.T) {
	osc := NewOscillator(0, 100*time.Millisecond, WaveSquare, testRate)
	samples := drain(NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, testRate))

	require.Len(t, samples, 100)
	assert.Equal(t, 0.0, samples[0][0], "attack starts silent")
	assert.Equal(t, 1.0, samples[50][0], "sustain is full scale")
	assert.Less(t, samples[99][0], 0.2, "release fades out")
}

func TestEnvelope_CutsLongerNote(t *testing.T) {
	osc := NewOscillator(0, 200*time.Millisecond, WaveSquare, testRate)
	samples := drain(NewEnvelope(osc, 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, testRate))

	assert.Len(t, samples, 100)
}

func TestSeq_ChainsNotesBackToBack(t *testing.T) {
	first := NewOscillator(100, 30*time.Millisecond, WaveSquare, testRate)
	second := NewOscillator(200, 50*time.Millisecond, WaveSine, testRate)

	assert.Len(t, drain(beep.Seq(first, second)), 80)
}

func TestNewVolume_ZeroIsSilent(t *testing.T) {
	osc := NewOscillator(0, 10*time.Millisecond, WaveSquare, testRate)
	for _, s := range drain(newVolume(osc, 0)) {
		assert.Equal(t, 0.0, s[0])
	}
}

func TestGetSoundEffect(t *testing.T) {
	cfg := DefaultAudioConfig()
	cfg.SampleRate = int(testRate)

	assert.NotEmpty(t, drain(GetSoundEffect(SoundEat, cfg)))
	assert.NotEmpty(t, drain(GetSoundEffect(SoundGameOver, cfg)))
	assert.Nil(t, GetSoundEffect(soundTypeCount, cfg))
}

func TestAudioConfig_WithVolume(t *testing.T) {
	base := DefaultAudioConfig()

	assert.Equal(t, 0.25, base.WithVolume(25).MasterVolume)
	assert.Equal(t, 1.0, base.WithVolume(250).MasterVolume)
	assert.Equal(t, 0.0, base.WithVolume(-5).MasterVolume)
	assert.Equal(t, 0.6, base.MasterVolume, "original untouched")
}
