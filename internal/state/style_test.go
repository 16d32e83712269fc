package state

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStyleDefaults(t *testing.T) {
	s := NewStyle()
	assert.Equal(t, DefaultHex, s.Hex())
	assert.Equal(t, DefaultWidth, s.Width())
}

func TestSetWidthClamps(t *testing.T) {
	s := NewStyle()
	tests := []struct {
		in, want int
	}{
		{0, 1},
		{-3, 1},
		{1, 1},
		{7, 7},
		{10, 10},
		{15, 10},
	}
	for _, tt := range tests {
		s.SetWidth(tt.in)
		assert.Equal(t, tt.want, s.Width(), "SetWidth(%d)", tt.in)
	}
}

func TestSetHexColor(t *testing.T) {
	s := NewStyle()
	require.NoError(t, s.SetHexColor("#ff0000"))
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, s.Color())
	assert.Equal(t, "#ff0000", s.Hex())

	require.NoError(t, s.SetHexColor("#0f0"))
	assert.Equal(t, color.NRGBA{G: 255, A: 255}, s.Color())
}

func TestSetHexColorRejectsGarbage(t *testing.T) {
	s := NewStyle()
	require.NoError(t, s.SetHexColor("#123456"))

	err := s.SetHexColor("blue")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidColor)
	assert.Equal(t, "#123456", s.Hex(), "failed parse must keep the previous color")
}

func TestSetColorForcesOpaque(t *testing.T) {
	s := NewStyle()
	s.SetColor(color.NRGBA{R: 0, G: 0, B: 255, A: 255})
	assert.Equal(t, "#0000ff", s.Hex())

	s.SetColor(color.Transparent)
	assert.Equal(t, uint8(255), s.Color().A)
}

func TestSegmentUsesStyleAtCallTime(t *testing.T) {
	s := NewStyle()
	require.NoError(t, s.SetHexColor("#ff0000"))
	s.SetWidth(3)
	first := s.Segment(Point{0, 0}, Point{1, 1})

	require.NoError(t, s.SetHexColor("#0000ff"))
	s.SetWidth(8)
	second := s.Segment(Point{1, 1}, Point{2, 2})

	assert.Equal(t, color.NRGBA{R: 255, A: 255}, first.Color)
	assert.Equal(t, 3, first.Width)
	assert.Equal(t, color.NRGBA{B: 255, A: 255}, second.Color)
	assert.Equal(t, 8, second.Width)
}
