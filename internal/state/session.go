package state

import (
	"github.com/google/uuid"
)

// Session tracks whether a stroke is in progress and where its path
// currently ends. The zero value is an idle session.
type Session struct {
	id     string
	state  SessionState
	anchor Point
	moves  int
}

// Begin starts a new stroke at p. A session that is already active is
// ended first, so a missed end event can never leave it stuck; the
// returned bool reports whether that happened.
func (s *Session) Begin(p Point) (endedPrior bool) {
	endedPrior = s.End()
	s.id = uuid.NewString()
	s.state = Active
	s.anchor = p
	s.moves = 0
	return endedPrior
}

// Advance moves the anchor to p and returns where the previous segment
// should start. It reports false when no stroke is active.
func (s *Session) Advance(p Point) (from Point, ok bool) {
	if s.state != Active {
		return Point{}, false
	}
	from = s.anchor
	s.anchor = p
	s.moves++
	return from, true
}

// End finishes the stroke. Ending an idle session is a no-op that
// returns false.
func (s *Session) End() bool {
	if s.state != Active {
		return false
	}
	s.state = Idle
	return true
}

func (s *Session) State() SessionState { return s.state }
func (s *Session) Active() bool        { return s.state == Active }
func (s *Session) Anchor() Point       { return s.anchor }

// ID identifies the current or most recent stroke. Empty before the first Begin.
func (s *Session) ID() string { return s.id }

// Moves is the number of segments the current or most recent stroke produced.
func (s *Session) Moves() int { return s.moves }
