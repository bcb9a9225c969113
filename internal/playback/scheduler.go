package playback

import "time"

// Token identifies one scheduled advance. The zero token is never issued.
type Token uint64

// Scheduler delivers a token back to the controller after a delay.
// Cancel is best effort: a token that is already in flight is discarded by
// the controller as stale.
type Scheduler interface {
	Schedule(delay time.Duration, token Token)
	Cancel(token Token)
}

type nopScheduler struct{}

func (nopScheduler) Schedule(time.Duration, Token) {}
func (nopScheduler) Cancel(Token)                  {}

// TimerScheduler backs a Scheduler with time.AfterFunc. Fired tokens arrive on
// C and must be passed to Controller.Fire by the goroutine that owns the
// controller.
type TimerScheduler struct {
	c     chan Token
	done  chan struct{}
	timer *time.Timer
	token Token
}

func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{
		c:    make(chan Token, 1),
		done: make(chan struct{}),
	}
}

func (s *TimerScheduler) C() <-chan Token {
	return s.c
}

func (s *TimerScheduler) Schedule(delay time.Duration, token Token) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.token = token
	s.timer = time.AfterFunc(delay, func() {
		select {
		case s.c <- token:
		case <-s.done:
		}
	})
}

func (s *TimerScheduler) Cancel(token Token) {
	if s.timer != nil && s.token == token {
		s.timer.Stop()
		s.timer = nil
		s.token = 0
	}
}

// Close stops the pending timer and releases blocked deliveries.
func (s *TimerScheduler) Close() {
	if s.timer != nil {
		s.timer.Stop()
	}
	close(s.done)
}
