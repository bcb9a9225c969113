package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortvis/internal/playback"
)

// advanceMsg is a scheduled auto-advance. owner ties the token to the
// controller that issued it; tokens restart for every new controller.
type advanceMsg struct {
	owner *playback.Controller
	token playback.Token
}

// tickScheduler turns controller schedules into tea.Tick commands. Commands
// are collected during Update and returned in one batch. Cancel is a no-op:
// the controller drops late ticks as stale.
type tickScheduler struct {
	owner *playback.Controller
	cmds  []tea.Cmd
}

func (s *tickScheduler) Schedule(delay time.Duration, token playback.Token) {
	owner := s.owner
	s.cmds = append(s.cmds, tea.Tick(delay, func(time.Time) tea.Msg {
		return advanceMsg{owner: owner, token: token}
	}))
}

func (s *tickScheduler) Cancel(playback.Token) {}

func (s *tickScheduler) flush() tea.Cmd {
	if len(s.cmds) == 0 {
		return nil
	}
	cmds := s.cmds
	s.cmds = nil
	return tea.Batch(cmds...)
}
