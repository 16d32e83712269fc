package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"LocalSketchpad/internal/input"
	"LocalSketchpad/internal/state"
	"LocalSketchpad/internal/stroke"
	"LocalSketchpad/internal/surface"
)

// SurfaceWidget hosts the raster surface and feeds mouse and touch
// activity to the stroke controller. The surface exists only while the
// widget is mounted (between CreateRenderer and renderer Destroy).
type SurfaceWidget struct {
	widget.BaseWidget

	width, height int
	style         *state.Style
	ctrl          *stroke.Controller

	surf     *surface.Surface
	raster   *canvas.Image
	bus      *input.Bus
	released bool // renderer destroyed; a new one mounts again

	touching bool // modality of the current gesture
	last     fyne.Position
	haveLast bool

	// origin locates the widget on screen; replaced in tests.
	origin func(fyne.CanvasObject) (fyne.Position, bool)
}

var _ fyne.Widget = (*SurfaceWidget)(nil)
var _ fyne.Draggable = (*SurfaceWidget)(nil)
var _ desktop.Mouseable = (*SurfaceWidget)(nil)
var _ desktop.Hoverable = (*SurfaceWidget)(nil)
var _ mobile.Touchable = (*SurfaceWidget)(nil)

func NewSurfaceWidget(width, height int, style *state.Style) *SurfaceWidget {
	if style == nil {
		style = state.NewStyle()
	}
	b := &SurfaceWidget{
		width:  width,
		height: height,
		style:  style,
		origin: driverOrigin,
	}
	b.ctrl = stroke.New(b, style, b.bounds)
	b.ExtendBaseWidget(b)
	return b
}

func driverOrigin(o fyne.CanvasObject) (fyne.Position, bool) {
	a := fyne.CurrentApp()
	if a == nil || a.Driver() == nil {
		return fyne.Position{}, false
	}
	return a.Driver().AbsolutePositionForObject(o), true
}

func (b *SurfaceWidget) Style() *state.Style { return b.style }

// Surface returns the mounted surface, or nil.
func (b *SurfaceWidget) Surface() *surface.Surface { return b.surf }

func (b *SurfaceWidget) Drawing() bool { return b.ctrl.Active() }

func (b *SurfaceWidget) mount() {
	if b.surf != nil {
		return
	}
	surf, err := surface.New(b.width, b.height)
	if err != nil {
		log.Printf("Surface not mounted: %v", err)
		return
	}
	b.surf = surf
	b.raster.Image = surf.Image()
	b.bus = input.NewBus()
	b.ctrl.Attach(b.bus)
}

// Unmount releases the event subscriptions and drops the surface.
// It is safe to call more than once.
func (b *SurfaceWidget) Unmount() {
	b.ctrl.Detach()
	if b.bus != nil {
		b.bus.Close()
		b.bus = nil
	}
	b.surf = nil
	b.haveLast = false
	b.touching = false
	b.released = true
}

// ResizeSurface replaces the surface with one of the new pixel size.
// Everything painted so far is lost. A widget that has no renderer, or whose
// renderer was destroyed, only records the size for the next mount.
func (b *SurfaceWidget) ResizeSurface(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("resize surface: %w: %dx%d", surface.ErrInvalidSize, width, height)
	}
	b.width, b.height = width, height
	b.ctrl.Session().End()
	b.haveLast = false

	switch {
	case b.raster == nil || b.released:
		return nil
	case b.surf == nil:
		// the first mount failed, e.g. on a zero initial size
		b.mount()
	default:
		surf, err := surface.New(width, height)
		if err != nil {
			return fmt.Errorf("resize surface: %w", err)
		}
		b.surf = surf
		b.raster.Image = surf.Image()
	}
	b.raster.SetMinSize(b.MinSize())
	b.Refresh()
	return nil
}

// Clear wipes the surface.
func (b *SurfaceWidget) Clear() {
	if b.surf == nil {
		return
	}
	b.surf.Clear()
	b.refreshRaster()
}

// PaintSegment forwards to the mounted surface; it is the controller's painter.
func (b *SurfaceWidget) PaintSegment(seg state.Segment) {
	if b.surf == nil {
		return
	}
	b.surf.PaintSegment(seg)
	b.refreshRaster()
}

func (b *SurfaceWidget) refreshRaster() {
	if b.raster != nil {
		b.raster.Refresh()
	}
}

func (b *SurfaceWidget) bounds() (state.Rect, bool) {
	if b.surf == nil {
		return state.Rect{}, false
	}
	pos, ok := b.origin(b)
	if !ok {
		return state.Rect{}, false
	}
	w, h := b.surf.Size()
	return state.NewRect(toPoint(pos), float32(w), float32(h)), true
}

func (b *SurfaceWidget) MinSize() fyne.Size {
	return fyne.NewSize(float32(b.width), float32(b.height))
}

func (b *SurfaceWidget) publish(raw input.Raw) {
	if b.bus == nil {
		return
	}
	b.bus.Publish(raw)
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: p.X, Y: p.Y}
}

func (b *SurfaceWidget) begin(abs fyne.Position, touch bool) {
	b.touching = touch
	b.last, b.haveLast = abs, true
	if touch {
		b.publish(input.TouchEvent{Phase: input.Begin, Touches: []state.Point{toPoint(abs)}})
	} else {
		b.publish(input.PointerEvent{Phase: input.Begin, Viewport: toPoint(abs)})
	}
}

// move drops a second delivery of the same motion, which happens when the
// driver reports a drag both as MouseMoved and as Dragged.
func (b *SurfaceWidget) move(abs fyne.Position) {
	if b.haveLast && abs == b.last {
		return
	}
	b.last, b.haveLast = abs, true
	if b.touching {
		b.publish(input.TouchEvent{Phase: input.Move, Touches: []state.Point{toPoint(abs)}})
	} else {
		b.publish(input.PointerEvent{Phase: input.Move, Viewport: toPoint(abs)})
	}
}

func (b *SurfaceWidget) finish(p input.Phase) {
	b.haveLast = false
	if b.touching {
		b.publish(input.TouchEvent{Phase: p})
	} else {
		b.publish(input.PointerEvent{Phase: p})
	}
	// hover and mouse events count again once the touch gesture is over
	b.touching = false
}

func (b *SurfaceWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary {
		b.begin(e.AbsolutePosition, false)
	}
}

func (b *SurfaceWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonPrimary && !b.touching {
		b.finish(input.End)
	}
}

func (b *SurfaceWidget) MouseMoved(e *desktop.MouseEvent) {
	if !b.touching {
		b.move(e.AbsolutePosition)
	}
}

func (b *SurfaceWidget) MouseOut() {
	if !b.touching {
		b.finish(input.Leave)
	}
}

func (b *SurfaceWidget) Dragged(e *fyne.DragEvent) {
	b.move(e.AbsolutePosition)
}

func (b *SurfaceWidget) DragEnd() {
	b.finish(input.End)
}

func (b *SurfaceWidget) TouchDown(e *mobile.TouchEvent) {
	b.begin(e.AbsolutePosition, true)
}

func (b *SurfaceWidget) TouchUp(*mobile.TouchEvent) {
	b.finish(input.End)
}

func (b *SurfaceWidget) TouchCancel(*mobile.TouchEvent) {
	b.finish(input.Cancel)
}

func (b *SurfaceWidget) MouseIn(*desktop.MouseEvent) {}

func (b *SurfaceWidget) CreateRenderer() fyne.WidgetRenderer {
	b.raster = canvas.NewImageFromImage(nil)
	b.raster.FillMode = canvas.ImageFillStretch
	b.raster.ScaleMode = canvas.ImageScalePixels
	b.released = false
	b.mount()
	b.raster.SetMinSize(b.MinSize())
	return &surfaceRenderer{board: b}
}

type surfaceRenderer struct {
	board *SurfaceWidget
}

func (r *surfaceRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.board.raster}
}

func (r *surfaceRenderer) Layout(size fyne.Size) {
	r.board.raster.Resize(size)
}

func (r *surfaceRenderer) MinSize() fyne.Size {
	return r.board.MinSize()
}

func (r *surfaceRenderer) Refresh() {
	canvas.Refresh(r.board.raster)
}

func (r *surfaceRenderer) Destroy() {
	r.board.Unmount()
}
