package game

import (
	"testing"

	"github.com/vovakirdan/tui-raycaster/internal/core"
	"github.com/vovakirdan/tui-raycaster/internal/raycast"
)

func TestHeldInputHoldsForTicks(t *testing.T) {
	h := NewHeldInput(3)
	h.Press(press(core.ActionForward, core.ActionTurnLeft))

	want := raycast.Intent{Turn: -1, Move: 1}
	for i := 0; i < 3; i++ {
		if got := h.Poll(); got != want {
			t.Fatalf("poll %d = %+v, want %+v", i, got, want)
		}
	}
	if got := h.Poll(); got != (raycast.Intent{}) {
		t.Errorf("hold should expire after 3 ticks, got %+v", got)
	}
}

func TestHeldInputRepeatRefreshes(t *testing.T) {
	h := NewHeldInput(2)
	h.Press(press(core.ActionBackward))
	h.Poll()
	h.Press(press(core.ActionBackward))

	for i := 0; i < 2; i++ {
		if got := h.Poll(); got.Move != -1 {
			t.Fatalf("poll %d after repeat = %+v", i, got)
		}
	}
}

func TestHeldInputAxesExpireIndependently(t *testing.T) {
	h := NewHeldInput(2)
	h.Press(press(core.ActionForward))
	h.Poll()
	h.Press(press(core.ActionTurnRight))

	if got := h.Poll(); got != (raycast.Intent{Turn: 1, Move: 1}) {
		t.Errorf("got %+v", got)
	}
	if got := h.Poll(); got != (raycast.Intent{Turn: 1}) {
		t.Errorf("move should expire before turn, got %+v", got)
	}
}

func TestHeldInputOppositePressesCancel(t *testing.T) {
	h := NewHeldInput(5)
	h.Press(press(core.ActionForward))
	h.Press(press(core.ActionForward, core.ActionBackward, core.ActionTurnLeft, core.ActionTurnRight))

	// Contradictory presses leave the previous hold in place.
	if got := h.Poll(); got != (raycast.Intent{Move: 1}) {
		t.Errorf("got %+v", got)
	}
}

func TestHeldInputStopAndRelease(t *testing.T) {
	h := NewHeldInput(5)
	h.Press(press(core.ActionForward, core.ActionTurnRight))
	h.Press(press(core.ActionStop))
	if got := h.Poll(); got != (raycast.Intent{}) {
		t.Errorf("Stop should release, got %+v", got)
	}

	// Stop together with a direction restarts from that direction only.
	h.Press(press(core.ActionForward, core.ActionTurnRight))
	h.Press(press(core.ActionStop, core.ActionBackward))
	if got := h.Poll(); got != (raycast.Intent{Move: -1}) {
		t.Errorf("got %+v", got)
	}

	h.Release()
	if got := h.Poll(); got != (raycast.Intent{}) {
		t.Errorf("Release should clear, got %+v", got)
	}
}

func TestNewHeldInputMinimumHold(t *testing.T) {
	h := NewHeldInput(0)
	h.Press(press(core.ActionForward))
	if got := h.Poll(); got.Move != 1 {
		t.Error("a press should hold for at least one tick")
	}
}
