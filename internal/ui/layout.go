package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// fitMinSide keeps a fitted surface usable when the window is shrunk.
const fitMinSide = 100

// fitLayout hands all of its space to the surface widget and keeps the
// surface's pixel size equal to that space, the way a page-sized canvas
// follows its window.
type fitLayout struct {
	board *SurfaceWidget
}

func newFitContainer(board *SurfaceWidget) *fyne.Container {
	return container.New(&fitLayout{board: board}, board)
}

func (l *fitLayout) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	w, h := int(size.Width), int(size.Height)
	if w > 0 && h > 0 && (w != l.board.width || h != l.board.height) {
		if err := l.board.ResizeSurface(w, h); err != nil {
			log.Printf("Surface not resized: %v", err)
		}
	}
	for _, o := range objects {
		o.Move(fyne.NewPos(0, 0))
		o.Resize(size)
	}
}

func (l *fitLayout) MinSize([]fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(fitMinSide, fitMinSide)
}
