package tui

import (
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"golang.org/x/term"
)

// bellAudio implements balloons.Audio with the terminal bell: one ring for
// a correct catch, two for a wrong one. It stays silent until Resume has
// confirmed the output is a terminal.
type bellAudio struct {
	out    io.Writer
	probe  func() bool
	ready  atomic.Bool
	logger *log.Logger
}

// newBellAudio rings on stderr, leaving stdout to the Bubble Tea renderer.
func newBellAudio(logger *log.Logger) *bellAudio {
	return &bellAudio{
		out:    os.Stderr,
		probe:  func() bool { return term.IsTerminal(int(os.Stderr.Fd())) },
		logger: logger,
	}
}

// Resume checks the output in the background; the game does not wait for it.
func (a *bellAudio) Resume() {
	if a.ready.Load() {
		return
	}
	go func() {
		if !a.probe() {
			a.logger.Warn("audio unavailable: stderr is not a terminal")
			return
		}
		a.ready.Store(true)
	}()
}

func (a *bellAudio) Success() { a.ring(1) }
func (a *bellAudio) Failure() { a.ring(2) }

func (a *bellAudio) ring(n int) {
	if !a.ready.Load() {
		return
	}
	if _, err := io.WriteString(a.out, strings.Repeat("\a", n)); err != nil {
		a.logger.Debug("bell failed", "error", err)
	}
}
