package sprout

import (
	"testing"
	"time"

	"github.com/gopxl/beep"
)

// constant streams a fixed value forever; used to isolate the envelope.
type constant float64

func (c constant) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		samples[i][0] = float64(c)
		samples[i][1] = float64(c)
	}
	return len(samples), true
}

func (constant) Err() error { return nil }

func TestOscillatorSamplesInRange(t *testing.T) {
	rate := beep.SampleRate(48000)
	osc := newOscillator(440, 100*time.Millisecond, rate)

	samples := make([][2]float64, 256)
	n, ok := osc.Stream(samples)
	if !ok || n != 256 {
		t.Fatalf("Stream = (%d, %v), want (256, true)", n, ok)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Fatalf("sample %d = %f, outside [-1, 1]", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Fatalf("sample %d channels differ: %f vs %f", i, samples[i][0], samples[i][1])
		}
	}
}

func TestOscillatorEndsAfterDuration(t *testing.T) {
	rate := beep.SampleRate(48000)
	d := 10 * time.Millisecond
	osc := newOscillator(440, d, rate)

	total := 0
	buf := make([][2]float64, 128)
	for {
		n, ok := osc.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := rate.N(d); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(48000)
	env := newEnvelope(constant(1), 100*time.Millisecond, 10*time.Millisecond, 10*time.Millisecond, rate)

	total := rate.N(100 * time.Millisecond)
	samples := make([][2]float64, total)
	n, _ := env.Stream(samples)
	if n != total {
		t.Fatalf("streamed %d samples, want %d", n, total)
	}

	attack := rate.N(10 * time.Millisecond)
	if samples[0][0] != 0 {
		t.Errorf("first sample = %f, want 0 at attack start", samples[0][0])
	}
	if got := samples[attack][0]; got != 1 {
		t.Errorf("sample after attack = %f, want full volume", got)
	}
	if got := samples[total/2][0]; got != 1 {
		t.Errorf("sustain sample = %f, want full volume", got)
	}
	if got := samples[total-1][0]; got >= 0.01 {
		t.Errorf("final sample = %f, want faded near 0", got)
	}
}

func TestEnvelopeEndsStream(t *testing.T) {
	rate := beep.SampleRate(48000)
	d := 20 * time.Millisecond
	env := newEnvelope(constant(1), d, time.Millisecond, time.Millisecond, rate)

	total := 0
	buf := make([][2]float64, 100)
	for {
		n, ok := env.Stream(buf)
		total += n
		if !ok {
			break
		}
	}
	if want := rate.N(d); total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestSoundsPlayBeforeInitIsNoop(t *testing.T) {
	// No speaker in CI: Play and Close on an uninitialized bank must be
	// silent no-ops rather than panics.
	s := NewSounds()
	s.PlayBounce()
	s.Close()
}
