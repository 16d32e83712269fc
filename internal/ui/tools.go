package ui

import (
	"fmt"
	"image/color"
	"log"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"LocalSketchpad/internal/state"
	"LocalSketchpad/internal/surface"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

var palette = []color.Color{
	color.Black,
	color.NRGBA{R: 255, A: 255},         // Red
	color.NRGBA{G: 255, A: 255},         // Green
	color.NRGBA{B: 255, A: 255},         // Blue
	color.NRGBA{R: 255, G: 255, A: 255}, // Yellow
}

// controls are the setters behind the toolbar. Every change only affects
// segments painted afterwards.
type controls struct {
	style *state.Style
	board *SurfaceWidget

	hex     *widget.Entry
	preview *canvas.Rectangle
	slider  *widget.Slider
	size    *widget.Label

	// restored when switching back from the eraser
	lastColor color.Color
}

func newControls(style *state.Style, board *SurfaceWidget) *controls {
	c := &controls{
		style:     style,
		board:     board,
		hex:       widget.NewEntry(),
		preview:   canvas.NewRectangle(style.Color()),
		slider:    widget.NewSlider(state.MinWidth, state.MaxWidth),
		size:      widget.NewLabel(""),
		lastColor: style.Color(),
	}
	c.preview.SetMinSize(fyne.NewSize(28, 28))

	c.hex.SetPlaceHolder("#rrggbb")
	c.hex.SetText(style.Hex())
	c.hex.OnSubmitted = c.setHex

	c.slider.Step = 1
	c.slider.SetValue(float64(style.Width()))
	c.slider.OnChanged = func(v float64) { c.setWidth(int(math.Round(v))) }
	c.size.SetText(fmt.Sprintf("%d px", style.Width()))
	return c
}

func (c *controls) setColor(col color.Color) {
	c.lastColor = col
	c.paintWith(col)
}

func (c *controls) paintWith(col color.Color) {
	c.style.SetColor(col)
	c.hex.SetText(c.style.Hex())
	c.preview.FillColor = c.style.Color()
	c.preview.Refresh()
}

func (c *controls) setHex(text string) {
	if err := c.style.SetHexColor(text); err != nil {
		log.Printf("Ignoring color input: %v", err)
		c.hex.SetText(c.style.Hex())
		return
	}
	c.setColor(c.style.Color())
}

func (c *controls) setWidth(w int) {
	c.style.SetWidth(w)
	if got := float64(c.style.Width()); c.slider.Value != got {
		c.slider.SetValue(got)
	}
	c.size.SetText(fmt.Sprintf("%d px", c.style.Width()))
}

func (c *controls) pen()    { c.paintWith(c.lastColor) }
func (c *controls) eraser() { c.paintWith(surface.Background) }

// NewToolbar builds the pen/eraser actions, color palette, color picker,
// width slider and clear button for board.
func NewToolbar(style *state.Style, board *SurfaceWidget, win fyne.Window) fyne.CanvasObject {
	c := newControls(style, board)

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), c.pen),  // Pen
		widget.NewToolbarAction(theme.ContentClearIcon(), c.eraser), // Eraser
		widget.NewToolbarAction(theme.ColorPaletteIcon(), func() {
			picker := dialog.NewColorPicker("Stroke color", "Pick any color", c.setColor, win)
			picker.Advanced = true
			picker.Show()
		}),
	)

	colorBox := container.NewHBox()
	for _, col := range palette {
		colorBox.Add(newColorSwatch(col, c.setColor))
	}

	hexBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(100, 35)), c.hex)
	sliderBox := container.New(layout.NewGridWrapLayout(fyne.NewSize(150, 35)), c.slider)
	clearBtn := widget.NewButtonWithIcon("Clear", theme.DeleteIcon(), board.Clear)

	return container.NewHBox(
		widget.NewLabel("Tool:"),
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		c.preview,
		hexBox,
		widget.NewSeparator(),
		widget.NewLabel("Width:"),
		sliderBox,
		c.size,
		layout.NewSpacer(),
		clearBtn,
	)
}
