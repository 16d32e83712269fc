// Package input turns raw pointer and touch activity into one event type
// expressed in surface-local coordinates.
package input

import "LocalSketchpad/internal/state"

type Phase int

const (
	Begin Phase = iota
	Move
	End
	Cancel
	// Leave is sent when the device leaves the surface while pressed.
	Leave
)

func (p Phase) String() string {
	switch p {
	case Begin:
		return "begin"
	case Move:
		return "move"
	case End:
		return "end"
	case Cancel:
		return "cancel"
	case Leave:
		return "leave"
	default:
		return "unknown"
	}
}

// Finishes reports whether the phase ends a stroke.
func (p Phase) Finishes() bool {
	return p == End || p == Cancel || p == Leave
}

type Modality int

const (
	Pointer Modality = iota
	Touch
)

func (m Modality) String() string {
	if m == Touch {
		return "touch"
	}
	return "pointer"
}

// Raw is an event as reported by the input system, before normalization.
// It is implemented by PointerEvent and TouchEvent only.
type Raw interface {
	phase() Phase
}

// PointerEvent is a mouse event carrying a viewport position.
type PointerEvent struct {
	Phase    Phase
	Viewport state.Point
}

// TouchEvent carries the active contact points in viewport coordinates.
// Only the first contact is used.
type TouchEvent struct {
	Phase   Phase
	Touches []state.Point
}

func (e PointerEvent) phase() Phase { return e.Phase }
func (e TouchEvent) phase() Phase   { return e.Phase }

// Event is the normalized form consumed by the stroke controller.
type Event struct {
	Phase    Phase
	Modality Modality
	Pos      state.Point // surface-local; zero for finishing phases
}

// Normalize converts a raw event into surface-local coordinates by
// subtracting the top-left corner of bounds from its viewport position.
// Both modalities use the same rectangle subtraction. It reports false
// for events that carry no usable position, e.g. a touch move with no
// contacts.
func Normalize(raw Raw, bounds state.Rect) (Event, bool) {
	switch e := raw.(type) {
	case PointerEvent:
		ev := Event{Phase: e.Phase, Modality: Pointer}
		if !e.Phase.Finishes() {
			ev.Pos = bounds.Local(e.Viewport)
		}
		return ev, true
	case TouchEvent:
		ev := Event{Phase: e.Phase, Modality: Touch}
		if e.Phase.Finishes() {
			return ev, true
		}
		if len(e.Touches) == 0 {
			return Event{}, false
		}
		ev.Pos = bounds.Local(e.Touches[0])
		return ev, true
	default:
		return Event{}, false
	}
}
