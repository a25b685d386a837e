package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave is an oscillator wave shape.
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a fixed-length tone whose frequency slides linearly
// from freq to freqEnd.
type oscillator struct {
	freq     float64
	freqEnd  float64
	phase    float64
	position int
	length   int
	wave     Wave
	rate     beep.SampleRate
	rng      *rand.Rand
}

func newOscillator(freq, freqEnd float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:    freq,
		freqEnd: freqEnd,
		length:  rate.N(d),
		wave:    wave,
		rate:    rate,
		rng:     rand.New(rand.NewSource(1)),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.length {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = o.rng.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		t := float64(o.position) / float64(o.length)
		freq := o.freq + (o.freqEnd-o.freq)*t
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

func newEnvelope(s beep.Streamer, d, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(d),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.total {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; remaining < e.release {
			vol = math.Min(vol, float64(remaining)/float64(e.release))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}

	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales a stream linearly. math.Log2(0) is -Inf, so zero is
// mapped to a silent effect.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func tone(freq, freqEnd float64, d time.Duration, wave Wave, rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(freq, freqEnd, d, wave, rate)
	return newEnvelope(osc, d, 5*time.Millisecond, d/2, rate)
}

// synthFlap is a short upward chirp.
func synthFlap(rate beep.SampleRate) beep.Streamer {
	return newVolume(tone(440, 880, 90*time.Millisecond, WaveSquare, rate), 0.25)
}

// synthGameOver is three falling notes.
func synthGameOver(rate beep.SampleRate) beep.Streamer {
	return newVolume(beep.Seq(
		tone(523.25, 523.25, 180*time.Millisecond, WaveSaw, rate),
		tone(392.00, 392.00, 180*time.Millisecond, WaveSaw, rate),
		tone(261.63, 196.00, 420*time.Millisecond, WaveSaw, rate),
	), 0.3)
}

// synthEnemy is a filtered noise whoosh.
func synthEnemy(rate beep.SampleRate) beep.Streamer {
	osc := newOscillator(0, 0, 250*time.Millisecond, WaveNoise, rate)
	shaped := newEnvelope(osc, 250*time.Millisecond, 120*time.Millisecond, 120*time.Millisecond, rate)
	return newVolume(shaped, 0.2)
}

// melody is the background loop: C major arpeggio over a walking bass.
var melody = []float64{
	261.63, 329.63, 392.00, 523.25,
	220.00, 261.63, 329.63, 440.00,
	174.61, 220.00, 261.63, 349.23,
	196.00, 246.94, 293.66, 392.00,
}

// synthMusic renders one bar cycle of the background melody into a buffer
// so it can be looped.
func synthMusic(rate beep.SampleRate) *beep.Buffer {
	notes := make([]beep.Streamer, 0, len(melody))
	for _, f := range melody {
		notes = append(notes, newVolume(tone(f, f, 220*time.Millisecond, WaveSine, rate), 0.5))
	}

	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Seq(notes...))
	return buf
}
