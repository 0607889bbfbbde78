package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/vi-snake/constants"
)

// WaveType selects the oscillator shape: square and sine for the eat chirp, saw and noise for game over
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator emits one note at a fixed frequency for a fixed number of samples
// It ends the stream itself, so beep.Seq can chain notes of a phrase back to back
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a single note; freq is ignored for WaveNoise
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // Keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a note in and out so chained notes do not click at the seams
// It cuts the wrapped stream at the note's length even if the source runs longer
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps a note with a linear attack ramp, a flat sustain and a linear release
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: max(total-att-rel, 0),
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s with a linear volume; math.Log2(0) is -Inf so zero means silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// CreateEatSound generates a rising two-note chirp
func CreateEatSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	// E5 then A5
	n1 := NewOscillator(659.25, constants.EatSoundNote1Duration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, constants.EatSoundNote1Duration, constants.EatSoundAttack, constants.EatSoundNote1Release, rate)

	n2 := NewOscillator(880.0, constants.EatSoundNote2Duration, WaveSine, rate)
	n2Shaped := NewEnvelope(n2, constants.EatSoundNote2Duration, constants.EatSoundAttack, constants.EatSoundNote2Release, rate)

	vol := cfg.EffectVolumes[SoundEat] * cfg.MasterVolume
	return newVolume(beep.Seq(newVolume(n1Shaped, 0.4), n2Shaped), vol)
}

// CreateGameOverSound generates a falling three-note saw phrase over a noise tail
func CreateGameOverSound(cfg *AudioConfig) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	notes := []float64{392.0, 311.13, 196.0} // G4, Eb4, G3
	phrase := make([]beep.Streamer, 0, len(notes))
	for _, f := range notes {
		osc := NewOscillator(f, constants.GameOverNoteDuration, WaveSaw, rate)
		phrase = append(phrase, NewEnvelope(osc, constants.GameOverNoteDuration, constants.GameOverNoteAttack, constants.GameOverNoteRelease, rate))
	}

	tailLen := constants.GameOverNoteDuration * time.Duration(len(notes))
	noise := NewOscillator(0, tailLen, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, tailLen, constants.GameOverNoteAttack, constants.GameOverNoiseRelease, rate)

	mixed := beep.Mix(
		newVolume(beep.Seq(phrase...), 0.6),
		newVolume(noiseShaped, 0.15),
	)

	vol := cfg.EffectVolumes[SoundGameOver] * cfg.MasterVolume
	return newVolume(mixed, vol)
}

// GetSoundEffect returns the streamer for the given type
func GetSoundEffect(soundType SoundType, cfg *AudioConfig) beep.Streamer {
	switch soundType {
	case SoundEat:
		return CreateEatSound(cfg)
	case SoundGameOver:
		return CreateGameOverSound(cfg)
	default:
		return nil
	}
}
