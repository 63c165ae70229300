package game

import (
	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
)

// HeldInput turns terminal key presses into a held motion intent.
// Terminals report presses (and auto-repeats) but never releases, so each
// press holds its direction for a number of ticks; repeats keep it alive.
type HeldInput struct {
	holdTicks int

	turn, move         int
	turnLeft, moveLeft int // ticks remaining
}

// NewHeldInput creates an input source that holds each press for holdTicks.
func NewHeldInput(holdTicks int) *HeldInput {
	return &HeldInput{holdTicks: max(holdTicks, 1)}
}

// Press applies the motion actions of one input frame.
func (h *HeldInput) Press(in core.InputFrame) {
	if in.Has(core.ActionStop) {
		h.Release()
	}

	switch {
	case in.Has(core.ActionForward) && !in.Has(core.ActionBackward):
		h.move, h.moveLeft = 1, h.holdTicks
	case in.Has(core.ActionBackward) && !in.Has(core.ActionForward):
		h.move, h.moveLeft = -1, h.holdTicks
	}

	switch {
	case in.Has(core.ActionTurnLeft) && !in.Has(core.ActionTurnRight):
		h.turn, h.turnLeft = -1, h.holdTicks
	case in.Has(core.ActionTurnRight) && !in.Has(core.ActionTurnLeft):
		h.turn, h.turnLeft = 1, h.holdTicks
	}
}

// Release drops any held motion.
func (h *HeldInput) Release() {
	h.turn, h.move = 0, 0
	h.turnLeft, h.moveLeft = 0, 0
}

// Poll returns the held intent and counts one tick off each hold.
func (h *HeldInput) Poll() raycast.Intent {
	in := raycast.Intent{Turn: h.turn, Move: h.move}

	if h.turnLeft > 0 {
		h.turnLeft--
		if h.turnLeft == 0 {
			h.turn = 0
		}
	}
	if h.moveLeft > 0 {
		h.moveLeft--
		if h.moveLeft == 0 {
			h.move = 0
		}
	}
	return in
}
