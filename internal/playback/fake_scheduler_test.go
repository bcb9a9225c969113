package playback_test

import (
	"time"

	"github.com/san-kum/sortvis/internal/playback"
)

type scheduled struct {
	token playback.Token
	delay time.Duration
}

// fakeScheduler records requests; tests fire tokens by hand.
type fakeScheduler struct {
	history   []scheduled
	cancelled []playback.Token
	live      map[playback.Token]time.Duration
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{live: make(map[playback.Token]time.Duration)}
}

func (f *fakeScheduler) Schedule(delay time.Duration, token playback.Token) {
	f.history = append(f.history, scheduled{token: token, delay: delay})
	f.live[token] = delay
}

func (f *fakeScheduler) Cancel(token playback.Token) {
	f.cancelled = append(f.cancelled, token)
	delete(f.live, token)
}

func (f *fakeScheduler) last() scheduled {
	return f.history[len(f.history)-1]
}

// fire delivers the only live token, as a timer would.
func (f *fakeScheduler) fire(c *playback.Controller) bool {
	for token := range f.live {
		delete(f.live, token)
		return c.Fire(token)
	}
	return false
}
