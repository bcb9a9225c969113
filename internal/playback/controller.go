package playback

import (
	"github.com/rs/zerolog"

	"github.com/san-kum/sortvis/internal/steps"
)

// Phase is the playback state shown to the user.
type Phase int

const (
	PhaseIdle Phase = iota
	PhasePlaying
	PhasePaused
)

func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "PLAYING"
	case PhasePaused:
		return "PAUSED"
	default:
		return "IDLE"
	}
}

// View is everything a renderer needs to draw the current position.
type View struct {
	Step    steps.Step
	Cursor  int
	Total   int
	Percent float64
	Playing bool
	Speed   Speed
	Phase   Phase
	AtEnd   bool
}

// Controller holds the cursor over a step sequence. The cursor always lies in
// [0, len-1]; an empty sequence pins it at 0.
type Controller struct {
	seq     steps.Sequence
	cursor  int
	playing bool
	speed   Speed

	sched       Scheduler
	pending     Token
	pendingStop bool
	issued      Token

	log zerolog.Logger
}

type Option func(*Controller)

func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// WithSpeed sets the initial speed; invalid values are ignored.
func WithSpeed(s Speed) Option {
	return func(c *Controller) {
		if s.Valid() {
			c.speed = s
		}
	}
}

// New creates a controller. A nil scheduler disables auto-advance.
func New(sched Scheduler, opts ...Option) *Controller {
	if sched == nil {
		sched = nopScheduler{}
	}
	c := &Controller{
		speed: DefaultSpeed,
		sched: sched,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Load replaces the sequence wholesale and returns to Idle.
func (c *Controller) Load(seq steps.Sequence) {
	c.seq = seq
	c.cursor = 0
	c.playing = false
	c.reschedule()
	c.log.Debug().Int("steps", len(seq)).Msg("sequence loaded")
}

// Play starts auto-advance. It reports false when there is nothing to play.
// At the last step only the grace stop is scheduled.
func (c *Controller) Play() bool {
	if len(c.seq) == 0 {
		return false
	}
	if c.playing {
		return true
	}
	c.playing = true
	c.reschedule()
	c.log.Debug().Int("cursor", c.cursor).Stringer("speed", c.speed).Msg("play")
	return true
}

func (c *Controller) Pause() {
	if !c.playing {
		return
	}
	c.playing = false
	c.reschedule()
	c.log.Debug().Int("cursor", c.cursor).Msg("pause")
}

// Toggle switches between Play and Pause.
func (c *Controller) Toggle() {
	if c.playing {
		c.Pause()
		return
	}
	c.Play()
}

func (c *Controller) Reset() {
	c.cursor = 0
	c.playing = false
	c.reschedule()
	c.log.Debug().Msg("reset")
}

// StepForward moves one step ahead; a no-op on the last step.
func (c *Controller) StepForward() bool {
	return c.Seek(c.cursor + 1)
}

// StepBackward moves one step back; a no-op on the first step.
func (c *Controller) StepBackward() bool {
	return c.Seek(c.cursor - 1)
}

// Seek moves the cursor to i, clamped to the sequence. It reports whether the
// cursor changed.
func (c *Controller) Seek(i int) bool {
	if len(c.seq) == 0 {
		return false
	}
	i = c.seq.Clamp(i)
	if i == c.cursor {
		return false
	}
	c.cursor = i
	c.reschedule()
	return true
}

// SetSpeed changes the multiplier. While playing, the pending advance is
// rescheduled with the new delay; the cursor does not move.
func (c *Controller) SetSpeed(s Speed) error {
	if !s.Valid() {
		return ErrInvalidSpeed
	}
	if s == c.speed {
		return nil
	}
	c.speed = s
	c.reschedule()
	c.log.Debug().Stringer("speed", s).Msg("speed changed")
	return nil
}

// Fire handles a token delivered by the scheduler. Stale tokens are ignored.
// It reports whether the token was current.
func (c *Controller) Fire(t Token) bool {
	if t == 0 || t != c.pending {
		return false
	}
	c.pending = 0

	if c.pendingStop {
		c.pendingStop = false
		c.playing = false
		c.log.Debug().Int("cursor", c.cursor).Msg("playback finished")
		return true
	}

	if c.cursor < len(c.seq)-1 {
		c.cursor++
	}
	c.reschedule()
	return true
}

// reschedule cancels the outstanding token and, while playing, issues the
// next one from the current state.
func (c *Controller) reschedule() {
	if c.pending != 0 {
		c.sched.Cancel(c.pending)
		c.pending = 0
		c.pendingStop = false
	}
	if !c.playing || len(c.seq) == 0 {
		return
	}

	c.issued++
	c.pending = c.issued
	if c.cursor >= len(c.seq)-1 {
		c.pendingStop = true
		c.sched.Schedule(StopGrace, c.pending)
		return
	}
	c.sched.Schedule(Delay(c.seq[c.cursor], c.speed), c.pending)
}

func (c *Controller) Cursor() int { return c.cursor }

func (c *Controller) Len() int { return len(c.seq) }

func (c *Controller) Playing() bool { return c.playing }

func (c *Controller) Speed() Speed { return c.speed }

func (c *Controller) Sequence() steps.Sequence { return c.seq }

// Pending returns the outstanding token, if any.
func (c *Controller) Pending() (Token, bool) {
	return c.pending, c.pending != 0
}

func (c *Controller) AtEnd() bool {
	return len(c.seq) == 0 || c.cursor == len(c.seq)-1
}

// Current returns the step under the cursor.
func (c *Controller) Current() (steps.Step, bool) {
	if len(c.seq) == 0 {
		return steps.Step{}, false
	}
	return c.seq[c.cursor], true
}

func (c *Controller) Phase() Phase {
	switch {
	case c.playing:
		return PhasePlaying
	case c.cursor == 0 || c.AtEnd():
		return PhaseIdle
	default:
		return PhasePaused
	}
}

func (c *Controller) Snapshot() View {
	v := View{
		Cursor:  c.cursor,
		Total:   len(c.seq),
		Playing: c.playing,
		Speed:   c.speed,
		Phase:   c.Phase(),
		AtEnd:   c.AtEnd(),
	}
	if step, ok := c.Current(); ok {
		v.Step = step
		v.Percent = float64(c.cursor+1) / float64(len(c.seq)) * 100
	}
	return v
}
