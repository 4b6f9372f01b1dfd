// Package journey drives the flight engine through the level cycle: fly to
// the monolith, answer its question, warp into the sector the answer built.
package journey

import (
	"errors"
	"fmt"
)

// Phase is the stage of the current level.
type Phase uint8

const (
	PhaseFlying Phase = iota
	PhaseTeaching
	PhaseWarping
)

func (p Phase) String() string {
	switch p {
	case PhaseFlying:
		return "FLYING"
	case PhaseTeaching:
		return "TEACHING"
	case PhaseWarping:
		return "WARPING"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Event is something that may move the journey to another phase.
type Event uint8

const (
	EventTargetReached Event = iota
	EventSubmit
	EventWarpComplete
	EventWarpFailed
)

func (e Event) String() string {
	switch e {
	case EventTargetReached:
		return "target-reached"
	case EventSubmit:
		return "submit"
	case EventWarpComplete:
		return "warp-complete"
	case EventWarpFailed:
		return "warp-failed"
	default:
		return fmt.Sprintf("Event(%d)", uint8(e))
	}
}

var (
	// ErrWrongPhase is returned for an event the current phase does not accept.
	ErrWrongPhase = errors.New("journey: event not valid in this phase")

	// ErrEmptyPhilosophy is returned when a blank answer is submitted.
	ErrEmptyPhilosophy = errors.New("journey: empty philosophy")
)

type edge struct {
	from Phase
	on   Event
}

var transitions = map[edge]Phase{
	{PhaseFlying, EventTargetReached}: PhaseTeaching,
	{PhaseTeaching, EventSubmit}:      PhaseWarping,
	{PhaseWarping, EventWarpComplete}: PhaseFlying,
	{PhaseWarping, EventWarpFailed}:   PhaseFlying,
}

// Transition returns the phase that follows p on ev. Unlisted pairs leave
// the phase unchanged and report ErrWrongPhase.
func Transition(p Phase, ev Event) (Phase, error) {
	next, ok := transitions[edge{p, ev}]
	if !ok {
		return p, fmt.Errorf("%w: %s on %s", ErrWrongPhase, ev, p)
	}
	return next, nil
}
