package audio

import (
	"math"
	"sync"

	"github.com/gordonklaus/portaudio"

	"github.com/san-kum/sortvis/internal/steps"
)

const (
	SampleRate = 44100
	BufferSize = 512

	MinFreq = 220.0
	MaxFreq = 880.0

	// per-sample envelope decay, about 150ms to silence
	decay = 0.9994
	gain  = 0.25
)

// Voice is a single decaying triangle-wave tone.
type Voice struct {
	phase float64
	freq  float64
	env   float64
}

func (v *Voice) Trigger(freq float64) {
	v.freq = freq
	v.env = 1
}

func (v *Voice) Silent() bool { return v.env < 1e-4 }

// Next returns the next sample and advances the oscillator.
func (v *Voice) Next() float64 {
	if v.Silent() {
		return 0
	}
	s := triangle(v.phase) * v.env * gain
	v.phase += v.freq / SampleRate
	v.phase -= math.Floor(v.phase)
	v.env *= decay
	return s
}

// Triangle Wave: Smooth, flute-like, no harsh buzz
func triangle(phase float64) float64 {
	p := phase - math.Floor(phase)
	return 4.0*math.Abs(p-0.5) - 1.0
}

// Frequency maps value within [lo, hi] linearly onto [MinFreq, MaxFreq].
func Frequency(value, lo, hi int) float64 {
	if hi <= lo {
		return (MinFreq + MaxFreq) / 2
	}
	t := float64(value-lo) / float64(hi-lo)
	t = math.Max(0, math.Min(1, t))
	return MinFreq + t*(MaxFreq-MinFreq)
}

// StepFrequencies returns up to two tones for a step: the highlighted pair
// when there is one, otherwise the first elements not in the default state.
func StepFrequencies(step steps.Step) []float64 {
	if len(step.Array) == 0 {
		return nil
	}
	lo, hi := step.Array[0].Value, step.Array[0].Value
	for _, e := range step.Array {
		lo = min(lo, e.Value)
		hi = max(hi, e.Value)
	}

	var idx []int
	switch {
	case step.Swapping != nil:
		idx = []int{step.Swapping[0], step.Swapping[1]}
	case step.Comparing != nil:
		idx = []int{step.Comparing[0], step.Comparing[1]}
	default:
		for i, e := range step.Array {
			if e.State != steps.StateDefault && e.State != steps.StateSorted {
				idx = append(idx, i)
				if len(idx) == 2 {
					break
				}
			}
		}
	}

	var out []float64
	for n, i := range idx {
		if i < 0 || i >= len(step.Array) || (n == 1 && i == idx[0]) {
			continue
		}
		out = append(out, Frequency(step.Array[i].Value, lo, hi))
	}
	return out
}

// Sonifier plays a short tone for every step it is given.
type Sonifier struct {
	stream *portaudio.Stream

	mu     sync.Mutex
	voices [2]Voice

	Active bool
}

func New() *Sonifier {
	return &Sonifier{}
}

// Start opens the default output device.
func (s *Sonifier) Start() error {
	if err := portaudio.Initialize(); err != nil {
		return err
	}
	stream, err := portaudio.OpenDefaultStream(0, 2, SampleRate, BufferSize, s.process)
	if err != nil {
		portaudio.Terminate()
		return err
	}
	if err := stream.Start(); err != nil {
		stream.Close()
		portaudio.Terminate()
		return err
	}
	s.stream = stream
	s.Active = true
	return nil
}

func (s *Sonifier) Stop() {
	if s.stream != nil {
		s.stream.Stop()
		s.stream.Close()
		s.stream = nil
		portaudio.Terminate()
	}
	s.Active = false
}

// Play retriggers the voices with the tones of step.
func (s *Sonifier) Play(step steps.Step) {
	freqs := StepFrequencies(step)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range freqs {
		s.voices[i].Trigger(f)
	}
}

// process is the stream callback; out holds one buffer per channel.
func (s *Sonifier) process(out [][]float32) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(out) == 0 {
		return
	}
	for i := range out[0] {
		left := s.voices[0].Next()
		right := s.voices[1].Next()
		out[0][i] = float32(left*0.7 + right*0.3)
		if len(out) > 1 {
			out[1][i] = float32(left*0.3 + right*0.7)
		}
	}
}
