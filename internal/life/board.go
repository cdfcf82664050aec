package life

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strings"
)

// Size describes the dimensions of a board.
type Size struct {
	W int
	H int
}

// Board stores a W x H grid of cells in row-major order.
type Board struct {
	w, h  int
	cells []Cell
}

// NewBoard allocates an all-dead board.
func NewBoard(w, h int) (*Board, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, w, h)
	}
	return &Board{w: w, h: h, cells: make([]Cell, w*h)}, nil
}

// RandomBoard allocates a board where each cell is alive independently with
// probability density.
func RandomBoard(w, h int, seed int64, density float64) (*Board, error) {
	b, err := NewBoard(w, h)
	if err != nil {
		return nil, err
	}
	b.Randomize(NewRNG(seed), density)
	return b, nil
}

// NewRNG returns a deterministic PCG source for the seed.
func NewRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), 0))
}

func (b *Board) Width() int  { return b.w }
func (b *Board) Height() int { return b.h }
func (b *Board) Size() Size  { return Size{W: b.w, H: b.h} }

// Cells exposes the backing slice in row-major order.
func (b *Board) Cells() []Cell { return b.cells }

// Index returns the linear index of (x, y). It does not check bounds.
func (b *Board) Index(x, y int) int { return y*b.w + x }

// Wrap maps any coordinates onto the torus.
func (b *Board) Wrap(x, y int) (int, int) {
	x = (x%b.w + b.w) % b.w
	y = (y%b.h + b.h) % b.h
	return x, y
}

// InBounds reports whether (x, y) addresses a cell without wrapping.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.w && y >= 0 && y < b.h
}

// At returns the cell at (x, y), wrapping out-of-range coordinates.
func (b *Board) At(x, y int) Cell {
	x, y = b.Wrap(x, y)
	return b.cells[y*b.w+x]
}

// Set stores c at (x, y).
func (b *Board) Set(x, y int, c Cell) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, x, y, b.w, b.h)
	}
	b.cells[y*b.w+x] = c
	return nil
}

// Toggle flips the cell at (x, y) and leaves every other cell untouched.
func (b *Board) Toggle(x, y int) error {
	if !b.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d", ErrOutOfBounds, x, y, b.w, b.h)
	}
	i := y*b.w + x
	b.cells[i] = b.cells[i].Toggle()
	return nil
}

// Clear sets every cell to Dead.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = Dead
	}
}

// Randomize refills the board from rng.
func (b *Board) Randomize(rng *rand.Rand, density float64) {
	for i := range b.cells {
		if rng.Float64() < density {
			b.cells[i] = Alive
		} else {
			b.cells[i] = Dead
		}
	}
}

// Population counts live cells.
func (b *Board) Population() int {
	n := 0
	for _, c := range b.cells {
		if c == Alive {
			n++
		}
	}
	return n
}

func (b *Board) Clone() *Board {
	c := &Board{w: b.w, h: b.h, cells: make([]Cell, len(b.cells))}
	copy(c.cells, b.cells)
	return c
}

// CopyFrom overwrites b with src. Both boards must have the same size.
func (b *Board) CopyFrom(src *Board) error {
	if b.w != src.w || b.h != src.h {
		return ErrSizeMismatch
	}
	copy(b.cells, src.cells)
	return nil
}

func (b *Board) Equal(o *Board) bool {
	if o == nil || b.w != o.w || b.h != o.h {
		return false
	}
	for i := range b.cells {
		if b.cells[i] != o.cells[i] {
			return false
		}
	}
	return true
}

// Hash fingerprints the board contents for cycle detection.
func (b *Board) Hash() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 0, len(b.cells)/8+1)
	var acc byte
	for i, c := range b.cells {
		acc = acc<<1 | byte(c)
		if i%8 == 7 {
			buf = append(buf, acc)
			acc = 0
		}
	}
	buf = append(buf, acc)
	fmt.Fprintf(h, "%dx%d:", b.w, b.h)
	h.Write(buf)
	return h.Sum64()
}

// String renders the board with 'O' for live and '.' for dead cells.
func (b *Board) String() string {
	var sb strings.Builder
	sb.Grow((b.w + 1) * b.h)
	for y := 0; y < b.h; y++ {
		for x := 0; x < b.w; x++ {
			if b.cells[y*b.w+x] == Alive {
				sb.WriteByte('O')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
