package state

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	MinWidth = 1
	MaxWidth = 10

	DefaultHex   = "#000000"
	DefaultWidth = 5
)

var ErrInvalidColor = errors.New("invalid color")

// Style is the paint style applied to segments as they are painted.
// Changes only affect segments painted afterwards.
type Style struct {
	color color.NRGBA
	width int
}

// NewStyle returns the default style: black, width 5.
func NewStyle() *Style {
	return &Style{
		color: color.NRGBA{A: 255},
		width: DefaultWidth,
	}
}

// SetColor accepts any color; alpha is dropped since strokes are opaque.
func (s *Style) SetColor(c color.Color) {
	r, g, b, a := c.RGBA()
	if a != 0 && a != 0xffff {
		// un-premultiply
		r, g, b = r*0xffff/a, g*0xffff/a, b*0xffff/a
	}
	s.color = color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: 255}
}

// SetHexColor parses "#rrggbb" or "#rgb". On failure the current color
// is left unchanged.
func (s *Style) SetHexColor(hex string) error {
	c, err := ParseHex(hex)
	if err != nil {
		return err
	}
	s.color = c
	return nil
}

// SetWidth clamps w into [MinWidth, MaxWidth].
func (s *Style) SetWidth(w int) {
	s.width = ClampWidth(w)
}

func (s *Style) Color() color.NRGBA { return s.color }
func (s *Style) Width() int         { return s.width }

// Hex formats the current color as "#rrggbb".
func (s *Style) Hex() string {
	return FormatHex(s.color)
}

// Segment stamps the current style onto a line from a to b.
func (s *Style) Segment(a, b Point) Segment {
	return Segment{From: a, To: b, Color: s.color, Width: s.width}
}

func ClampWidth(w int) int {
	if w < MinWidth {
		return MinWidth
	}
	if w > MaxWidth {
		return MaxWidth
	}
	return w
}

func ParseHex(hex string) (color.NRGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("%w %q: %v", ErrInvalidColor, hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: 255}, nil
}

func FormatHex(c color.NRGBA) string {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hex()
}
