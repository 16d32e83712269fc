package surface

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"LocalSketchpad/internal/state"
)

var (
	red  = color.NRGBA{R: 255, A: 255}
	blue = color.NRGBA{B: 255, A: 255}
)

func rgba(c color.NRGBA) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

func TestNewRejectsBadSize(t *testing.T) {
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, 5}} {
		_, err := New(sz[0], sz[1])
		assert.ErrorIs(t, err, ErrInvalidSize)
	}
}

func TestNewIsBlank(t *testing.T) {
	s, err := New(64, 32)
	require.NoError(t, err)
	w, h := s.Size()
	assert.Equal(t, 64, w)
	assert.Equal(t, 32, h)
	assert.Equal(t, rgba(Background), s.Image().RGBAAt(10, 10))
	assert.Equal(t, 0, s.Segments())
}

func TestPaintSegmentHorizontal(t *testing.T) {
	s, err := New(100, 50)
	require.NoError(t, err)

	s.PaintSegment(state.Segment{From: state.Point{X: 10, Y: 20}, To: state.Point{X: 60, Y: 20}, Color: red, Width: 4})

	img := s.Image()
	assert.Equal(t, rgba(red), img.RGBAAt(30, 20))
	assert.Equal(t, rgba(red), img.RGBAAt(30, 19))
	assert.Equal(t, rgba(Background), img.RGBAAt(30, 30), "far from the line")
	assert.Equal(t, rgba(Background), img.RGBAAt(80, 20), "past the end cap")
	assert.Equal(t, 1, s.Segments())
}

func TestPaintSegmentDiagonal(t *testing.T) {
	s, err := New(100, 100)
	require.NoError(t, err)

	s.PaintSegment(state.Segment{From: state.Point{X: 10, Y: 10}, To: state.Point{X: 90, Y: 90}, Color: blue, Width: 6})

	assert.Equal(t, rgba(blue), s.Image().RGBAAt(50, 50))
	assert.Equal(t, rgba(Background), s.Image().RGBAAt(80, 20))
}

func TestPaintZeroLengthSegmentLeavesDot(t *testing.T) {
	s, err := New(40, 40)
	require.NoError(t, err)

	s.PaintSegment(state.Segment{From: state.Point{X: 20, Y: 20}, To: state.Point{X: 20, Y: 20}, Color: red, Width: 6})
	assert.Equal(t, rgba(red), s.Image().RGBAAt(20, 20))
}

func TestPaintSegmentClipsToSurface(t *testing.T) {
	s, err := New(20, 20)
	require.NoError(t, err)

	s.PaintSegment(state.Segment{From: state.Point{X: -30, Y: 10}, To: state.Point{X: 50, Y: 10}, Color: red, Width: 4})
	assert.Equal(t, rgba(red), s.Image().RGBAAt(0, 10))
	assert.Equal(t, rgba(red), s.Image().RGBAAt(19, 10))

	s.PaintSegment(state.Segment{From: state.Point{X: 100, Y: 100}, To: state.Point{X: 120, Y: 100}, Color: red, Width: 4})
	assert.Equal(t, 2, s.Segments())
}

func TestLaterSegmentsDoNotRecolorEarlierOnes(t *testing.T) {
	s, err := New(100, 100)
	require.NoError(t, err)

	s.PaintSegment(state.Segment{From: state.Point{X: 10, Y: 10}, To: state.Point{X: 90, Y: 10}, Color: red, Width: 3})
	s.PaintSegment(state.Segment{From: state.Point{X: 10, Y: 50}, To: state.Point{X: 90, Y: 50}, Color: blue, Width: 3})

	assert.Equal(t, rgba(red), s.Image().RGBAAt(50, 10))
	assert.Equal(t, rgba(blue), s.Image().RGBAAt(50, 50))
}

func TestClear(t *testing.T) {
	s, err := New(30, 30)
	require.NoError(t, err)
	s.PaintSegment(state.Segment{From: state.Point{X: 0, Y: 15}, To: state.Point{X: 30, Y: 15}, Color: red, Width: 5})

	s.Clear()
	assert.Equal(t, rgba(Background), s.Image().RGBAAt(15, 15))
	assert.Equal(t, 0, s.Segments())
}

func BenchmarkPaintSegment(b *testing.B) {
	s, err := New(1024, 768)
	require.NoError(b, err)
	seg := state.Segment{From: state.Point{X: 100, Y: 100}, To: state.Point{X: 104, Y: 103}, Color: red, Width: 5}

	b.ReportAllocs()
	for b.Loop() {
		s.PaintSegment(seg)
	}
}

func countColor(s *Surface, c color.NRGBA, x, y0, y1 int) int {
	n := 0
	for y := y0; y <= y1; y++ {
		if s.Image().RGBAAt(x, y) == rgba(c) {
			n++
		}
	}
	return n
}

func TestNarrowSegmentAfterWideOne(t *testing.T) {
	fresh, err := New(200, 100)
	require.NoError(t, err)
	fresh.PaintSegment(state.Segment{From: state.Point{X: 100, Y: 50}, To: state.Point{X: 100, Y: 90}, Color: blue, Width: 4})
	want := countColor(fresh, blue, 100, 55, 85)
	require.Equal(t, 31, want)

	s, err := New(200, 100)
	require.NoError(t, err)
	s.PaintSegment(state.Segment{From: state.Point{X: 0, Y: 5}, To: state.Point{X: 199, Y: 5}, Color: red, Width: 4})
	s.Clear()
	s.PaintSegment(state.Segment{From: state.Point{X: 100, Y: 50}, To: state.Point{X: 100, Y: 90}, Color: blue, Width: 4})

	assert.Equal(t, want, countColor(s, blue, 100, 55, 85))
	assert.Equal(t, fresh.Image().Pix, s.Image().Pix, "mask reuse must not change the result")
}
