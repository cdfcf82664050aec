// Package pattern reads and writes Life patterns in the plaintext (.cells)
// and run-length encoded (.rle) formats and ships a small library of
// well-known patterns.
package pattern

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/san-kum/golife/internal/life"
)

var (
	ErrUnknownPattern = errors.New("pattern: unknown pattern")
	ErrMalformed      = errors.New("pattern: malformed input")
	ErrTooLarge       = errors.New("pattern: larger than board")
)

// Point is a live cell offset from the pattern's top-left corner.
type Point struct {
	X, Y int
}

// Pattern is a set of live cells inside a Width x Height bounding box.
type Pattern struct {
	Name   string
	Rule   string
	Width  int
	Height int
	Cells  []Point
}

// Place stamps the pattern onto b with its top-left corner at (x, y),
// wrapping around the board edges. Cells already alive stay alive.
func (p *Pattern) Place(b *life.Board, x, y int) error {
	if p.Width > b.Width() || p.Height > b.Height() {
		return fmt.Errorf("%w: %s is %dx%d, board is %dx%d", ErrTooLarge, p.Name, p.Width, p.Height, b.Width(), b.Height())
	}
	for _, c := range p.Cells {
		cx, cy := b.Wrap(x+c.X, y+c.Y)
		if err := b.Set(cx, cy, life.Alive); err != nil {
			return err
		}
	}
	return nil
}

// PlaceCenter places the pattern in the middle of b.
func (p *Pattern) PlaceCenter(b *life.Board) error {
	return p.Place(b, (b.Width()-p.Width)/2, (b.Height()-p.Height)/2)
}

// Board returns a board exactly the size of the pattern.
func (p *Pattern) Board() (*life.Board, error) {
	b, err := life.NewBoard(p.Width, p.Height)
	if err != nil {
		return nil, err
	}
	if err := p.Place(b, 0, 0); err != nil {
		return nil, err
	}
	return b, nil
}

// FromBoard captures every live cell of b. The bounding box is the whole board.
func FromBoard(name string, b *life.Board) *Pattern {
	p := &Pattern{Name: name, Width: b.Width(), Height: b.Height()}
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y) == life.Alive {
				p.Cells = append(p.Cells, Point{X: x, Y: y})
			}
		}
	}
	return p
}

// Parse decodes data as RLE when it carries an RLE header or terminator and
// as plaintext otherwise.
func Parse(name string, data string) (*Pattern, error) {
	var p *Pattern
	var err error
	if looksLikeRLE(data) {
		p, err = ParseRLE(data)
	} else {
		p, err = ParsePlaintext(data)
	}
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		p.Name = name
	}
	return p, nil
}

func looksLikeRLE(data string) bool {
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line[0] == '#' || line[0] == '!' {
			continue
		}
		if line[0] == 'x' && strings.Contains(line, "=") {
			return true
		}
		return strings.ContainsAny(line, "bo$!")
	}
	return false
}

// bounded returns a normalized copy of p with every cell inside its box,
// shifting the cells right and down if any coordinate is negative.
func (p *Pattern) bounded() *Pattern {
	q := *p
	q.Cells = append([]Point(nil), p.Cells...)
	dx, dy := 0, 0
	for _, c := range q.Cells {
		dx, dy = max(dx, -c.X), max(dy, -c.Y)
	}
	if dx > 0 || dy > 0 {
		for i := range q.Cells {
			q.Cells[i].X += dx
			q.Cells[i].Y += dy
		}
		q.Width += dx
		q.Height += dy
	}
	q.normalize()
	return &q
}

func (p *Pattern) normalize() {
	sort.Slice(p.Cells, func(i, j int) bool {
		if p.Cells[i].Y != p.Cells[j].Y {
			return p.Cells[i].Y < p.Cells[j].Y
		}
		return p.Cells[i].X < p.Cells[j].X
	})
	for _, c := range p.Cells {
		if c.X+1 > p.Width {
			p.Width = c.X + 1
		}
		if c.Y+1 > p.Height {
			p.Height = c.Y + 1
		}
	}
	if p.Width == 0 {
		p.Width = 1
	}
	if p.Height == 0 {
		p.Height = 1
	}
}
