package state

import "image/color"

// Point is a position in either viewport or surface-local coordinates,
// depending on where it came from.
type Point struct{ X, Y float32 }

// Sub returns p translated by -o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Segment is one straight line painted between two consecutive positions.
// Color and Width are the style at the moment it was painted.
type Segment struct {
	From  Point
	To    Point
	Color color.NRGBA
	Width int
}

type SessionState int

const (
	Idle SessionState = iota
	Active
)

func (s SessionState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Active:
		return "active"
	default:
		return "unknown"
	}
}
