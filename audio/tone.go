package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
)

// oscillator generates a fixed-length raw wave
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a streamer producing duration worth of wave at freq
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
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer      beep.Streamer
	position      int
	attackSamples int
	releaseStart  int
	totalSamples  int
}

// NewEnvelope shapes s with attack and release ramps over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	releaseStart := total - rate.N(release)
	if releaseStart < 0 {
		releaseStart = 0
	}
	return &envelope{
		streamer:      s,
		attackSamples: rate.N(attack),
		releaseStart:  releaseStart,
		totalSamples:  total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= e.releaseStart && e.totalSamples > e.releaseStart {
			vol = math.Min(vol, float64(e.totalSamples-e.position)/float64(e.totalSamples-e.releaseStart))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume applies linear volume; log2(0) is -Inf so zero is made silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// Tone describes one cue
type Tone struct {
	Frequency float64
	Duration  time.Duration
	Volume    float64
}

// NewCommitSound is a two-partial ding played when a rectangle is committed
func NewCommitSound(t Tone, rate beep.SampleRate) beep.Streamer {
	attack := t.Duration / 10
	release := t.Duration / 2

	fund := NewEnvelope(NewOscillator(t.Frequency, t.Duration, WaveSine, rate), t.Duration, attack, release, rate)
	over := NewEnvelope(NewOscillator(t.Frequency*2, t.Duration, WaveSine, rate), t.Duration, attack, release/2, rate)

	mixed := beep.Mix(
		newVolume(fund, 0.7),
		newVolume(over, 0.3),
	)
	return newVolume(beep.Take(rate.N(t.Duration), mixed), t.Volume)
}

// NewRemoveSound is a short low buzz played when rectangles are removed
func NewRemoveSound(t Tone, rate beep.SampleRate) beep.Streamer {
	osc := NewOscillator(t.Frequency/4, t.Duration, WaveSaw, rate)
	shaped := NewEnvelope(osc, t.Duration, t.Duration/20, t.Duration/2, rate)
	return newVolume(shaped, t.Volume*0.6)
}
