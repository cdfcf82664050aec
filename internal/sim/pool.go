package sim

import (
	"sync"

	"github.com/san-kum/golife/internal/life"
)

// BoardPool recycles step buffers of one size. Boards returned by Get have
// undefined contents.
type BoardPool struct {
	pool sync.Pool
	size life.Size
}

func NewBoardPool(w, h int) *BoardPool {
	return &BoardPool{
		size: life.Size{W: w, H: h},
		pool: sync.Pool{
			New: func() interface{} {
				b, _ := life.NewBoard(w, h)
				return b
			},
		},
	}
}

func (p *BoardPool) Get() *life.Board {
	return p.pool.Get().(*life.Board)
}

// Put returns b to the pool. Boards of a different size are dropped.
func (p *BoardPool) Put(b *life.Board) {
	if b != nil && b.Size() == p.size {
		p.pool.Put(b)
	}
}
