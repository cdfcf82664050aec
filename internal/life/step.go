package life

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Neighbors counts live cells among the eight wrapped offsets around (x, y).
func Neighbors(b *Board, x, y int) int {
	w, h := b.w, b.h
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx := ((x+dx)%w + w) % w
			ny := ((y+dy)%h + h) % h
			if b.cells[ny*w+nx] == Alive {
				n++
			}
		}
	}
	return n
}

// Step returns the next generation under Conway's rule.
func Step(b *Board) *Board {
	return StepRule(b, Conway)
}

// StepRule returns the next generation under r. The input is not modified.
func StepRule(b *Board, r Rule) *Board {
	next := &Board{w: b.w, h: b.h, cells: make([]Cell, len(b.cells))}
	stepRows(next, b, r, 0, b.h)
	return next
}

// StepInto writes the next generation of src into dst.
func StepInto(dst, src *Board, r Rule) error {
	if err := checkStep(dst, src); err != nil {
		return err
	}
	stepRows(dst, src, r, 0, src.h)
	return nil
}

// StepParallel is StepInto with rows split across workers. workers <= 0
// uses GOMAXPROCS.
func StepParallel(dst, src *Board, r Rule, workers int) error {
	if err := checkStep(dst, src); err != nil {
		return err
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > src.h {
		workers = src.h
	}
	if workers <= 1 {
		stepRows(dst, src, r, 0, src.h)
		return nil
	}

	var eg errgroup.Group
	rowsPerWorker := (src.h + workers - 1) / workers
	for i := 0; i < workers; i++ {
		start := i * rowsPerWorker
		end := min(start+rowsPerWorker, src.h)
		if start >= end {
			break
		}
		eg.Go(func() error {
			stepRows(dst, src, r, start, end)
			return nil
		})
	}
	return eg.Wait()
}

func checkStep(dst, src *Board) error {
	if dst == src {
		return ErrAliasedBoard
	}
	if dst.w != src.w || dst.h != src.h {
		return ErrSizeMismatch
	}
	return nil
}

func stepRows(dst, src *Board, r Rule, y0, y1 int) {
	w := src.w
	for y := y0; y < y1; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			dst.cells[i] = r.Next(src.cells[i], Neighbors(src, x, y))
		}
	}
}
