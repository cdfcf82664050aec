package export

import (
	"image"
	"image/color"
	"image/gif"
	"image/png"
	"io"
	"strconv"

	"github.com/san-kum/golife/internal/life"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	deadIndex uint8 = iota
	aliveIndex
	gridIndex
	textIndex
)

func (p Palette) gifPalette() color.Palette {
	return color.Palette{p.Dead, p.Alive, p.Grid, color.RGBA{A: 255}}
}

// RenderBoard draws b into a paletted image, one cellSize square per cell
// with a one-pixel outline when cells are at least 4 pixels wide.
func RenderBoard(b *life.Board, cellSize int, pal Palette) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, b.Width()*cellSize, b.Height()*cellSize), pal.gifPalette())
	outline := cellSize >= 4
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			idx := deadIndex
			if b.At(x, y) == life.Alive {
				idx = aliveIndex
			}
			x0, y0 := x*cellSize, y*cellSize
			for py := 0; py < cellSize; py++ {
				for px := 0; px < cellSize; px++ {
					c := idx
					if outline && (px == 0 || py == 0 || px == cellSize-1 || py == cellSize-1) {
						c = gridIndex
					}
					img.SetColorIndex(x0+px, y0+py, c)
				}
			}
		}
	}
	return img
}

func WritePNG(w io.Writer, b *life.Board, cellSize int, pal Palette) error {
	return png.Encode(w, RenderBoard(b, cellSize, pal))
}

// WriteGIF encodes frames as a looping animation. delay is in hundredths of
// a second. Each frame is stamped with its index in the top-left corner.
func WriteGIF(w io.Writer, frames []*life.Board, cellSize, delay int, pal Palette) error {
	anim := &gif.GIF{
		Image: make([]*image.Paletted, 0, len(frames)),
		Delay: make([]int, 0, len(frames)),
	}
	for i, b := range frames {
		img := RenderBoard(b, cellSize, pal)
		caption(img, "gen "+strconv.Itoa(i))
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, delay)
	}
	return gif.EncodeAll(w, anim)
}

// caption writes text with a 7x13 bitmap face when the image is large
// enough to hold it.
func caption(img *image.Paletted, text string) {
	face := basicfont.Face7x13
	if img.Bounds().Dy() < 2*face.Height || img.Bounds().Dx() < face.Advance*len(text)+4 {
		return
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(img.Palette[textIndex]),
		Face: face,
		Dot:  fixed.P(2, face.Ascent+2),
	}
	d.DrawString(text)
}

// Frames steps b n-1 times under r and returns all n boards.
func Frames(b *life.Board, r life.Rule, n int) []*life.Board {
	frames := make([]*life.Board, 0, n)
	cur := b
	for i := 0; i < n; i++ {
		frames = append(frames, cur)
		cur = life.StepRule(cur, r)
	}
	return frames
}
