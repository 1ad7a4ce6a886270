package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/gridsnake/parameter"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a finite oscillator
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
		o.phase = o.phase - math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope wraps s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := max(e.attackSamples, e.totalSamples-e.releaseSamples)
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		} else if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero maps to silence since log2(0) is -Inf
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// eatSound is a short high blip
func eatSound(rate beep.SampleRate) beep.Streamer {
	d := parameter.SoundEatDuration
	osc := NewOscillator(parameter.SoundEatFrequency, d, WaveSquare, rate)
	shaped := NewEnvelope(osc, d, d/10, d/2, rate)
	return newVolume(shaped, parameter.SoundVolume)
}

// deathSound is a falling two-note buzz over a noise burst
func deathSound(rate beep.SampleRate) beep.Streamer {
	half := parameter.SoundDeathDuration / 2
	n1 := NewEnvelope(NewOscillator(parameter.SoundDeathFrequency*2, half, WaveSaw, rate), half, 5*time.Millisecond, half/4, rate)
	n2 := NewEnvelope(NewOscillator(parameter.SoundDeathFrequency, half, WaveSaw, rate), half, 5*time.Millisecond, half/2, rate)

	d := parameter.SoundDeathDuration
	noise := NewEnvelope(NewOscillator(0, d, WaveNoise, rate), d, 0, d, rate)

	mixed := beep.Mix(
		newVolume(beep.Seq(n1, n2), 0.8),
		newVolume(noise, 0.2),
	)
	return newVolume(mixed, parameter.SoundVolume)
}

// Sound returns a fresh streamer for a queued sound id, nil for unknown ids
func Sound(id string, rate beep.SampleRate) beep.Streamer {
	switch id {
	case parameter.SoundEat:
		return eatSound(rate)
	case parameter.SoundDeath:
		return deathSound(rate)
	default:
		return nil
	}
}
