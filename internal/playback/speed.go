package playback

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/san-kum/sortvis/internal/steps"
)

// ErrInvalidSpeed is returned for multipliers outside Speeds.
var ErrInvalidSpeed = errors.New("playback: unsupported speed")

// Speed scales the auto-advance delay.
type Speed float64

// Speeds is the enumerated set of supported multipliers, slowest first.
var Speeds = []Speed{0.5, 1, 1.5, 2, 3}

const (
	DefaultSpeed Speed = 1

	SwapDelay = 1000 * time.Millisecond
	StepDelay = 800 * time.Millisecond
	MinDelay  = 300 * time.Millisecond
	StopGrace = 50 * time.Millisecond
)

func (s Speed) Valid() bool {
	return s.index() >= 0
}

func (s Speed) index() int {
	for i, v := range Speeds {
		if v == s {
			return i
		}
	}
	return -1
}

// Faster returns the next multiplier up, or s when already the fastest.
func (s Speed) Faster() Speed {
	i := s.index()
	if i < 0 || i == len(Speeds)-1 {
		return s
	}
	return Speeds[i+1]
}

// Slower returns the next multiplier down, or s when already the slowest.
func (s Speed) Slower() Speed {
	i := s.index()
	if i <= 0 {
		return s
	}
	return Speeds[i-1]
}

func (s Speed) String() string {
	return strconv.FormatFloat(float64(s), 'f', -1, 64) + "x"
}

// ParseSpeed accepts "1.5" or "1.5x".
func ParseSpeed(v string) (Speed, error) {
	if n := len(v); n > 0 && (v[n-1] == 'x' || v[n-1] == 'X') {
		v = v[:n-1]
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSpeed, v)
	}
	s := Speed(f)
	if !s.Valid() {
		return 0, fmt.Errorf("%w: %v (available: %v)", ErrInvalidSpeed, f, Speeds)
	}
	return s, nil
}

// Delay is the dwell time of step before auto-advance:
// max(MinDelay, base/speed), base being SwapDelay for swap steps.
func Delay(step steps.Step, speed Speed) time.Duration {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	base := StepDelay
	if step.IsSwap() {
		base = SwapDelay
	}
	d := time.Duration(float64(base) / float64(speed))
	if d < MinDelay {
		d = MinDelay
	}
	return d
}
