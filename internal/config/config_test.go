package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 800, c.Width)
	assert.Equal(t, 600, c.Height)
	assert.Equal(t, "#000000", c.Color)
	assert.Equal(t, 5, c.StrokeWidth)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sketchpad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width": 320, "color": "#ff8800", "stroke_width": 40}`), 0644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 320, c.Width)
	assert.Equal(t, 600, c.Height, "missing fields keep defaults")
	assert.Equal(t, "#ff8800", c.Color)
	assert.Equal(t, 10, c.StrokeWidth, "stroke width is clamped, not rejected")

	s, err := c.Style()
	require.NoError(t, err)
	assert.Equal(t, "#ff8800", s.Hex())
	assert.Equal(t, 10, s.Width())
}

func TestLoadRejectsBadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"width": 0, "color": "chartreuse"}`), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "surface size")
	assert.Contains(t, err.Error(), "chartreuse")
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, l)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}

func TestLoadFitWindow(t *testing.T) {
	assert.False(t, Default().FitWindow)

	path := filepath.Join(t.TempDir(), "fit.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"fit_window": true}`), 0644))
	c, err := Load(path)
	require.NoError(t, err)
	assert.True(t, c.FitWindow)
	assert.Equal(t, 800, c.Width, "initial size still comes from the defaults")
}
