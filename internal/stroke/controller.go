// Package stroke turns normalized input events into painted segments.
//
// A Controller owns one stroke session. Begin anchors a path, every Move
// while active paints exactly one segment from the anchor to the new
// position, and End, Cancel or Leave finish the stroke. Events that arrive
// while the surface is unmounted, or that carry no usable position, are
// dropped silently.
package stroke

import (
	"LocalSketchpad/internal/input"
	"LocalSketchpad/internal/state"
)

// Painter paints a single segment. *surface.Surface implements it.
type Painter interface {
	PaintSegment(state.Segment)
}

// BoundsFunc reports the surface's on-screen rectangle. ok is false while
// the surface is not mounted.
type BoundsFunc func() (bounds state.Rect, ok bool)

type Controller struct {
	painter Painter
	style   *state.Style
	bounds  BoundsFunc
	session state.Session
	sub     *input.Subscription
}

func New(painter Painter, style *state.Style, bounds BoundsFunc) *Controller {
	return &Controller{painter: painter, style: style, bounds: bounds}
}

// Attach subscribes the controller to bus. A previous attachment is
// released first.
func (c *Controller) Attach(bus *input.Bus) *input.Subscription {
	c.Detach()
	c.sub = bus.Subscribe(c.Handle)
	return c.sub
}

// Detach releases the bus subscription and ends any stroke in progress.
func (c *Controller) Detach() {
	if c.sub != nil {
		c.sub.Close()
		c.sub = nil
	}
	c.session.End()
}

func (c *Controller) Active() bool { return c.session.Active() }

func (c *Controller) Session() *state.Session { return &c.session }

// Handle processes one raw event. It never fails.
func (c *Controller) Handle(raw input.Raw) {
	if c.painter == nil || c.style == nil || c.bounds == nil {
		return
	}
	bounds, ok := c.bounds()
	if !ok || bounds.Empty() {
		return
	}
	ev, ok := input.Normalize(raw, bounds)
	if !ok {
		Logger().Debug("dropped event without position")
		return
	}

	switch ev.Phase {
	case input.Begin:
		if c.session.Begin(ev.Pos) {
			Logger().Debug("stroke restarted without end")
		}
		Logger().Debug("stroke begin", "session", c.session.ID(), "modality", ev.Modality, "x", ev.Pos.X, "y", ev.Pos.Y)
	case input.Move:
		if !c.session.Active() {
			return
		}
		if !bounds.Contains(ev.Pos) {
			c.finish(input.Leave)
			return
		}
		from, _ := c.session.Advance(ev.Pos)
		c.painter.PaintSegment(c.style.Segment(from, ev.Pos))
	default:
		c.finish(ev.Phase)
	}
}

func (c *Controller) finish(p input.Phase) {
	if c.session.End() {
		Logger().Debug("stroke "+p.String(), "session", c.session.ID(), "segments", c.session.Moves())
	}
}
