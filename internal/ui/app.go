package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"LocalSketchpad/internal/config"
)

// RunApp opens the sketchpad window and blocks until it is closed.
func RunApp(cfg *config.Config) error {
	style, err := cfg.Style()
	if err != nil {
		return err
	}

	myApp := app.NewWithID("io.localsketchpad")
	myWindow := myApp.NewWindow("Local Sketchpad")

	board := NewSurfaceWidget(cfg.Width, cfg.Height, style)
	toolbar := NewToolbar(style, board, myWindow)
	status := widget.NewLabel(fmt.Sprintf("Surface %dx%d px", cfg.Width, cfg.Height))

	var center fyne.CanvasObject = container.NewCenter(board)
	if cfg.FitWindow {
		center = newFitContainer(board)
		status.SetText("Surface follows the window size")
	}
	content := container.NewBorder(toolbar, status, nil, nil, center)
	myWindow.SetContent(content)
	myWindow.Resize(fyne.NewSize(float32(cfg.Width)+80, float32(cfg.Height)+140))

	// renderer teardown is not guaranteed when the app exits
	myWindow.SetOnClosed(func() {
		log.Println("Window closed, releasing surface")
		board.Unmount()
	})
	myWindow.ShowAndRun()
	return nil
}
