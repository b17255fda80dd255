// Package tui provides the Bubble Tea integration for the balloon game.
// It handles the terminal UI loop, input mapping, and timer scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/balloon-math/internal/games/balloons"
)

// timerMsg is sent when a scheduled timer fires.
type timerMsg struct {
	id int
}

type timerEntry struct {
	interval time.Duration
	fn       func()
}

// scheduler implements balloons.Scheduler on the Bubble Tea message loop.
// Each firing arrives as a timerMsg and runs on the Update goroutine, so
// timer callbacks never overlap with key or mouse handling.
type scheduler struct {
	nextID  int
	live    map[int]timerEntry
	pending []tea.Cmd
	logger  *log.Logger
}

func newScheduler(logger *log.Logger) *scheduler {
	return &scheduler{
		live:   make(map[int]timerEntry),
		logger: logger,
	}
}

// schedTimer is a handle to a registered timer.
type schedTimer struct {
	s  *scheduler
	id int
}

// Stop unregisters the timer. A tick already in flight is dropped on arrival.
func (t schedTimer) Stop() {
	delete(t.s.live, t.id)
}

// Every implements balloons.Scheduler.
func (s *scheduler) Every(interval time.Duration, fn func()) balloons.Timer {
	s.nextID++
	id := s.nextID
	s.live[id] = timerEntry{interval: interval, fn: fn}
	s.pending = append(s.pending, tickCmd(id, interval))
	return schedTimer{s: s, id: id}
}

// fire runs the callback of a live timer and re-arms it.
// Messages for stopped timers are ignored.
func (s *scheduler) fire(id int) {
	entry, ok := s.live[id]
	if !ok {
		return
	}

	s.dispatch(id, entry.fn)

	// The callback may have stopped its own timer.
	if _, ok := s.live[id]; ok {
		s.pending = append(s.pending, tickCmd(id, entry.interval))
	}
}

func (s *scheduler) dispatch(id int, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("recovered from panic in timer", "timer", id, "panic", r)
		}
	}()
	fn()
}

// active returns the number of registered timers.
func (s *scheduler) active() int {
	return len(s.live)
}

// flush returns the commands for every tick armed since the last flush.
func (s *scheduler) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// tickCmd returns a Bubble Tea command that reports one firing of timer id.
func tickCmd(id int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	})
}
