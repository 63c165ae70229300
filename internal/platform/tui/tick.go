// Package tui provides the Bubble Tea integration for the raycaster.
// It handles the terminal UI loop, input mapping, map picking and the
// SSH front end.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one engine frame. Run identifies the tick
// loop that produced it, so a loop left over from a previous game cannot
// drive the next one.
type TickMsg struct {
	Time time.Time
	Run  uint64
}

var runSeq atomic.Uint64

// nextRun returns a fresh tick loop identifier.
func nextRun() uint64 {
	return runSeq.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, run uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Run: run}
	})
}
