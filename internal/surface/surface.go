// Package surface holds the raster buffer strokes are painted onto.
// Painting is immediate: once a segment is painted only its pixels remain.
package surface

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"LocalSketchpad/internal/state"
)

var ErrInvalidSize = errors.New("surface size must be positive")

// Background is the color a new or cleared surface is filled with.
var Background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Surface is a fixed-size RGBA buffer. Resizing means creating a new one.
type Surface struct {
	img      *image.RGBA
	ras      *vector.Rasterizer
	maskBuf  []uint8
	segments int
}

func New(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	s := &Surface{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		ras: vector.NewRasterizer(1, 1),
	}
	s.Clear()
	return s, nil
}

func (s *Surface) Image() *image.RGBA { return s.img }

func (s *Surface) Size() (width, height int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

// Segments is the number of segments painted since creation or the last Clear.
func (s *Surface) Segments() int { return s.segments }

func (s *Surface) Clear() {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(Background), image.Point{}, draw.Src)
	s.segments = 0
}

// PaintSegment strokes a straight line with round caps. Work is bounded by
// the segment's own bounding box, so it does not grow with the surface or
// with the length of the stroke so far. Pixels outside the surface are
// dropped.
func (s *Surface) PaintSegment(seg state.Segment) {
	half := float32(seg.Width) / 2
	if half <= 0 {
		half = 0.5
	}

	box := image.Rect(
		int(math.Floor(float64(min(seg.From.X, seg.To.X)-half))),
		int(math.Floor(float64(min(seg.From.Y, seg.To.Y)-half))),
		int(math.Ceil(float64(max(seg.From.X, seg.To.X)+half))),
		int(math.Ceil(float64(max(seg.From.Y, seg.To.Y)+half))),
	)
	s.segments++
	clip := box.Intersect(s.img.Bounds())
	if clip.Empty() {
		return
	}

	// The whole segment is rasterized into a mask of its own size and only
	// the visible part of the mask is composited.
	w, h := box.Dx(), box.Dy()
	s.ras.Reset(w, h)
	ox, oy := float32(box.Min.X), float32(box.Min.Y)
	a := state.Point{X: seg.From.X - ox, Y: seg.From.Y - oy}
	b := state.Point{X: seg.To.X - ox, Y: seg.To.Y - oy}
	addLine(s.ras, a, b, half)
	addDisc(s.ras, a, half)
	if a != b {
		addDisc(s.ras, b, half)
	}

	mask := s.maskFor(w, h)
	s.ras.DrawOp = draw.Src
	s.ras.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	draw.DrawMask(s.img, clip, image.NewUniform(seg.Color), image.Point{}, mask, clip.Min.Sub(box.Min), draw.Over)
}

// maskFor returns a w×h alpha mask whose stride is exactly w. The
// rasterizer copies its coverage into the mask as one contiguous block, so
// the pixel buffer is reused across calls but the image header is not.
func (s *Surface) maskFor(w, h int) *image.Alpha {
	n := w * h
	if cap(s.maskBuf) < n {
		s.maskBuf = make([]uint8, n)
	}
	return &image.Alpha{Pix: s.maskBuf[:n], Stride: w, Rect: image.Rect(0, 0, w, h)}
}

// addLine adds the body of a thick line as a quad. Every shape added by
// this package winds the same way so overlaps do not cancel out.
func addLine(r *vector.Rasterizer, a, b state.Point, half float32) {
	dx, dy := b.X-a.X, b.Y-a.Y
	l := float32(math.Hypot(float64(dx), float64(dy)))
	if l == 0 {
		return
	}
	nx, ny := -dy/l*half, dx/l*half
	r.MoveTo(a.X+nx, a.Y+ny)
	r.LineTo(b.X+nx, b.Y+ny)
	r.LineTo(b.X-nx, b.Y-ny)
	r.LineTo(a.X-nx, a.Y-ny)
	r.ClosePath()
}

// addDisc approximates a circle with four cubic Béziers.
func addDisc(r *vector.Rasterizer, c state.Point, radius float32) {
	const k = float32(0.5522847498)
	kr := k * radius
	cx, cy := c.X, c.Y

	r.MoveTo(cx, cy-radius)
	r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
	r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
	r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
	r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	r.ClosePath()
}
