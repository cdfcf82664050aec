package desktop

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/san-kum/golife/internal/export"
	"github.com/san-kum/golife/internal/life"
)

// boardView draws a board at a fixed cell size and reports taps as cell
// coordinates.
type boardView struct {
	widget.BaseWidget

	img      *canvas.Image
	cellSize int
	palette  export.Palette
	cols     int
	rows     int
	onTap    func(x, y int)
}

func newBoardView(b *life.Board, cellSize int, pal export.Palette, onTap func(x, y int)) *boardView {
	v := &boardView{
		cellSize: cellSize,
		palette:  pal,
		cols:     b.Width(),
		rows:     b.Height(),
		onTap:    onTap,
	}
	v.img = canvas.NewImageFromImage(export.RenderBoard(b, cellSize, pal))
	v.img.FillMode = canvas.ImageFillOriginal
	v.img.ScaleMode = canvas.ImageScalePixels
	v.img.SetMinSize(fyne.NewSize(float32(b.Width()*cellSize), float32(b.Height()*cellSize)))
	v.ExtendBaseWidget(v)
	return v
}

func (v *boardView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(v.img)
}

// Tapped maps the tap position onto the cell grid. The image may be drawn
// larger than its minimum size, so the scale comes from the current size.
func (v *boardView) Tapped(ev *fyne.PointEvent) {
	size := v.Size()
	if size.Width <= 0 || size.Height <= 0 || v.onTap == nil {
		return
	}
	x := int(ev.Position.X / size.Width * float32(v.cols))
	y := int(ev.Position.Y / size.Height * float32(v.rows))
	if x < 0 || y < 0 || x >= v.cols || y >= v.rows {
		return
	}
	v.onTap(x, y)
}

// update redraws from b, which must be the board size the view was built for.
func (v *boardView) update(b *life.Board) {
	v.img.Image = export.RenderBoard(b, v.cellSize, v.palette)
	v.img.Refresh()
}
