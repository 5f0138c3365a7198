package sprout

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const soundSampleRate = beep.SampleRate(48000)

// oscillator generates a fixed-duration sine wave.
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	rate     beep.SampleRate
}

// newOscillator creates a sine oscillator at the given frequency that
// streams for the given duration and then ends.
func newOscillator(freq float64, duration time.Duration, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		val := math.Sin(2 * math.Pi * o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase) // keep in [0, 1)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with linear attack and release ramps so the
// blip starts and ends without clicks.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// newEnvelope wraps s in an attack/release envelope over the given
// duration. Attack and release are trimmed if they exceed the duration.
func newEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer: s,
		attack:   att,
		release:  rel,
		total:    total,
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
		} else if left := e.total - e.position; left < e.release {
			vol = float64(left) / float64(e.release)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return nil }

// Sounds owns the speaker and a mixer for one-shot effects. The zero value
// is usable; Play* calls before Init are silently dropped, so examples can
// wire sounds unconditionally and let Init decide whether audio exists.
type Sounds struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSounds creates an uninitialized sound bank.
func NewSounds() *Sounds {
	return &Sounds{mixer: &beep.Mixer{}}
}

// Init opens the speaker and starts the mixer. Safe to call more than once.
func (s *Sounds) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(soundSampleRate, soundSampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// PlayBounce plays a short blip, used when the square reflects off a
// canvas edge.
func (s *Sounds) PlayBounce() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	const d = 60 * time.Millisecond
	tone := newOscillator(660, d, soundSampleRate)
	shaped := newEnvelope(tone, d, 5*time.Millisecond, 30*time.Millisecond, soundSampleRate)

	speaker.Lock()
	s.mixer.Add(shaped)
	speaker.Unlock()
}

// Close silences the mixer. The speaker itself stays open; beep provides
// no way to close it.
func (s *Sounds) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}
