// Package export renders boards as SVG, PNG and animated GIF.
package export

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/san-kum/golife/internal/life"
)

// Palette holds the colors of live cells, dead cells and cell outlines.
type Palette struct {
	Alive color.RGBA
	Dead  color.RGBA
	Grid  color.RGBA
}

// Classic is blue on white with gray outlines.
var Classic = Palette{
	Alive: color.RGBA{R: 0, G: 0, B: 255, A: 255},
	Dead:  color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Grid:  color.RGBA{R: 128, G: 128, B: 128, A: 255},
}

func hex(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// BoardToSVG draws every cell as an outlined square. Dead cells are left to
// the background rect.
func BoardToSVG(b *life.Board, cellSize int, pal Palette) string {
	if b == nil || cellSize <= 0 {
		return ""
	}

	width := b.Width() * cellSize
	height := b.Height() * cellSize

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, hex(pal.Dead), hex(pal.Alive)))

	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y) != life.Alive {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%d" y="%d" width="%d" height="%d"/>
`, x*cellSize, y*cellSize, cellSize, cellSize))
		}
	}
	sb.WriteString("</g>\n")

	// grid lines
	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="1">
`, hex(pal.Grid)))
	for x := 0; x <= b.Width(); x++ {
		sb.WriteString(fmt.Sprintf(`<line x1="%d" y1="0" x2="%d" y2="%d"/>
`, x*cellSize, x*cellSize, height))
	}
	for y := 0; y <= b.Height(); y++ {
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%d" x2="%d" y2="%d"/>
`, y*cellSize, width, y*cellSize))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// PopulationToSVG plots a population series as a polyline.
func PopulationToSVG(pop []int, width, height int, strokeColor string) string {
	if len(pop) < 2 {
		return ""
	}

	maxP := 1
	for _, p := range pop {
		if p > maxP {
			maxP = p
		}
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, strokeColor))

	for i, p := range pop {
		x := float64(i) / float64(len(pop)-1) * float64(width)
		y := float64(height) - float64(p)/float64(maxP)*float64(height)*0.9

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
