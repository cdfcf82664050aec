package viz

import (
	"strings"

	"github.com/san-kum/golife/internal/life"
)

const brailleBase = 0x2800

// Braille Patterns: 2x4 dots
// 1 4
// 2 5
// 3 6
// 7 8
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

// Canvas packs 2x4 cells into each Braille character.
type Canvas struct {
	Width, Height int
	Grid          [][]rune
}

// NewCanvas returns a canvas of w x h characters.
func NewCanvas(w, h int) *Canvas {
	c := &Canvas{
		Width:  w,
		Height: h,
		Grid:   make([][]rune, h),
	}
	for i := range c.Grid {
		c.Grid[i] = make([]rune, w)
	}
	c.Clear()
	return c
}

// CanvasFor returns a canvas just large enough to hold b.
func CanvasFor(b *life.Board) *Canvas {
	return NewCanvas((b.Width()+1)/2, (b.Height()+3)/4)
}

// Set lights the dot for cell (x, y). Out-of-range cells are ignored.
func (c *Canvas) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] |= pixelMap[y%4][x%2]
}

// Unset clears the dot for cell (x, y).
func (c *Canvas) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= c.Width || row >= c.Height {
		return
	}
	c.Grid[row][col] &^= pixelMap[y%4][x%2]
}

func (c *Canvas) Clear() {
	for i := range c.Grid {
		for j := range c.Grid[i] {
			c.Grid[i][j] = brailleBase
		}
	}
}

// Draw replaces the canvas contents with the live cells of b.
func (c *Canvas) Draw(b *life.Board) {
	c.Clear()
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y) == life.Alive {
				c.Set(x, y)
			}
		}
	}
}

func (c *Canvas) String() string {
	var sb strings.Builder
	for i, row := range c.Grid {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}
