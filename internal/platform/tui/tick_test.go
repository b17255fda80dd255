package tui

import (
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func newTestScheduler() *scheduler {
	return newScheduler(log.New(io.Discard))
}

func TestSchedulerFiresLiveTimers(t *testing.T) {
	s := newTestScheduler()
	calls := 0
	tm := s.Every(20*time.Millisecond, func() { calls++ }).(schedTimer)

	if s.flush() == nil {
		t.Fatal("Every did not arm a tick")
	}
	if s.flush() != nil {
		t.Error("flush returned the same ticks twice")
	}

	s.fire(tm.id)
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
	if s.flush() == nil {
		t.Error("timer was not re-armed after firing")
	}

	tm.Stop()
	s.fire(tm.id)
	if calls != 1 {
		t.Error("stopped timer fired")
	}
	if s.flush() != nil {
		t.Error("stopped timer was re-armed")
	}
	if s.active() != 0 {
		t.Errorf("active = %d, want 0", s.active())
	}
}

func TestSchedulerTimerStopsItself(t *testing.T) {
	s := newTestScheduler()
	var tm schedTimer
	tm = s.Every(time.Second, func() { tm.Stop() }).(schedTimer)
	s.flush()

	s.fire(tm.id)

	if s.flush() != nil {
		t.Error("timer re-armed after stopping itself")
	}
}

func TestSchedulerIgnoresUnknownTimer(t *testing.T) {
	s := newTestScheduler()
	s.fire(42)
	if s.flush() != nil {
		t.Error("unknown timer produced a tick")
	}
}

func TestSchedulerRecoversPanics(t *testing.T) {
	s := newTestScheduler()
	tm := s.Every(time.Second, func() { panic("boom") }).(schedTimer)
	s.flush()

	s.fire(tm.id)

	if s.flush() == nil {
		t.Error("timer not re-armed after a panicking callback")
	}
}

func TestTickCmdReportsTimer(t *testing.T) {
	msg := tickCmd(7, time.Millisecond)()

	tm, ok := msg.(timerMsg)
	if !ok || tm.id != 7 {
		t.Errorf("tick produced %#v, want timerMsg{id: 7}", msg)
	}
}
