package life_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/golife/internal/life"
)

// fromRows builds a board from rows of 'O' (alive) and '.' (dead).
func fromRows(rows ...string) *life.Board {
	b, err := life.NewBoard(len(rows[0]), len(rows))
	Expect(err).NotTo(HaveOccurred())
	for y, row := range rows {
		for x, ch := range row {
			if ch == 'O' {
				Expect(b.Set(x, y, life.Alive)).To(Succeed())
			}
		}
	}
	return b
}

func render(b *life.Board) []string {
	return strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
}

var _ = Describe("Neighbors", func() {
	It("counts the eight surrounding cells", func() {
		b := fromRows(
			"OOO",
			"O.O",
			"OOO",
		)
		Expect(life.Neighbors(b, 1, 1)).To(Equal(8))
	})

	It("wraps the corner onto the opposite corner", func() {
		b, _ := life.NewBoard(5, 5)
		Expect(b.Set(4, 4, life.Alive)).To(Succeed())
		Expect(life.Neighbors(b, 0, 0)).To(Equal(1))
		Expect(life.Neighbors(b, 4, 0)).To(Equal(1))
		Expect(life.Neighbors(b, 2, 2)).To(Equal(0))
	})

	It("wraps negative and oversized coordinates", func() {
		b, _ := life.NewBoard(5, 5)
		Expect(b.Set(0, 0, life.Alive)).To(Succeed())
		Expect(life.Neighbors(b, -1, -1)).To(Equal(life.Neighbors(b, 4, 4)))
		Expect(life.Neighbors(b, 6, 5)).To(Equal(life.Neighbors(b, 1, 0)))
	})

	Context("on small boards", func() {
		It("gives a lone cell on 3x3 no neighbors and everyone else one", func() {
			b := fromRows(
				"...",
				".O.",
				"...",
			)
			Expect(life.Neighbors(b, 1, 1)).To(Equal(0))
			for y := 0; y < 3; y++ {
				for x := 0; x < 3; x++ {
					if x == 1 && y == 1 {
						continue
					}
					Expect(life.Neighbors(b, x, y)).To(Equal(1), "cell (%d,%d)", x, y)
				}
			}
		})

		It("counts wrapped offsets more than once on 2x2", func() {
			b := fromRows(
				"O.",
				"..",
			)
			Expect(life.Neighbors(b, 0, 0)).To(Equal(0))
			Expect(life.Neighbors(b, 1, 0)).To(Equal(2))
			Expect(life.Neighbors(b, 0, 1)).To(Equal(2))
			Expect(life.Neighbors(b, 1, 1)).To(Equal(4))
		})

		It("lets a 1x1 cell count itself eight times", func() {
			b := fromRows("O")
			Expect(life.Neighbors(b, 0, 0)).To(Equal(8))
			Expect(life.Step(b).At(0, 0)).To(Equal(life.Dead))
		})
	})
})

var _ = Describe("Step", func() {
	It("keeps an all-dead board dead", func() {
		b, _ := life.NewBoard(50, 50)
		Expect(life.Step(b).Population()).To(BeZero())
	})

	It("kills an isolated cell", func() {
		b, _ := life.NewBoard(10, 10)
		Expect(b.Set(5, 5, life.Alive)).To(Succeed())
		Expect(life.Step(b).Population()).To(BeZero())
	})

	It("leaves a block unchanged", func() {
		b := fromRows(
			"......",
			".OO...",
			".OO...",
			"......",
		)
		Expect(life.Step(b).Equal(b)).To(BeTrue())
	})

	It("oscillates a blinker with period two", func() {
		b := fromRows(
			".....",
			"..O..",
			"..O..",
			"..O..",
			".....",
		)
		once := life.Step(b)
		Expect(render(once)).To(Equal([]string{
			".....",
			".....",
			".OOO.",
			".....",
			".....",
		}))
		Expect(life.Step(once).Equal(b)).To(BeTrue())
	})

	It("moves a glider diagonally across the wrap", func() {
		b := fromRows(
			"......",
			"......",
			"......",
			"....O.",
			".....O",
			"...OOO",
		)
		next := b
		for i := 0; i < 4; i++ {
			next = life.Step(next)
		}
		Expect(render(next)).To(Equal([]string{
			"O...OO",
			"......",
			"......",
			"......",
			".....O",
			"O.....",
		}))
		Expect(next.Population()).To(Equal(5))
	})

	It("preserves dimensions across generations", func() {
		for _, size := range []life.Size{{W: 1, H: 1}, {W: 2, H: 7}, {W: 50, H: 50}, {W: 33, H: 17}} {
			b, err := life.RandomBoard(size.W, size.H, 3, 0.5)
			Expect(err).NotTo(HaveOccurred())
			Expect(life.Step(life.Step(b)).Size()).To(Equal(size))
		}
	})

	It("does not mutate its input", func() {
		b, _ := life.RandomBoard(30, 30, 11, 0.4)
		before := b.Clone()
		_ = life.Step(b)
		Expect(b.Equal(before)).To(BeTrue())
	})

	It("uses only the previous generation", func() {
		// An in-place update scanning left to right would let the first
		// birth feed the next cell's count.
		b := fromRows(
			"......",
			".OOO..",
			"......",
			"......",
		)
		Expect(render(life.Step(b))).To(Equal([]string{
			"..O...",
			"..O...",
			"..O...",
			"......",
		}))
	})
})

var _ = Describe("StepInto and StepParallel", func() {
	It("match Step", func() {
		src, _ := life.RandomBoard(64, 48, 99, 0.35)
		want := life.Step(src)

		dst, _ := life.NewBoard(64, 48)
		Expect(life.StepInto(dst, src, life.Conway)).To(Succeed())
		Expect(dst.Equal(want)).To(BeTrue())

		for _, workers := range []int{0, 1, 3, 7, 100} {
			par, _ := life.NewBoard(64, 48)
			Expect(life.StepParallel(par, src, life.Conway, workers)).To(Succeed())
			Expect(par.Equal(want)).To(BeTrue(), "workers=%d", workers)
		}
	})

	It("reject mismatched and aliased boards", func() {
		src, _ := life.NewBoard(4, 4)
		small, _ := life.NewBoard(3, 4)
		Expect(life.StepInto(small, src, life.Conway)).To(MatchError(life.ErrSizeMismatch))
		Expect(life.StepInto(src, src, life.Conway)).To(MatchError(life.ErrAliasedBoard))
		Expect(life.StepParallel(src, src, life.Conway, 2)).To(MatchError(life.ErrAliasedBoard))
	})

	It("applies other rules", func() {
		// HighLife births on six neighbors.
		highLife := life.MustParseRule("B36/S23")
		b := fromRows(
			".......",
			".OOO...",
			".O.....",
			".OO....",
			".......",
		)
		Expect(life.Neighbors(b, 2, 2)).To(Equal(6))
		Expect(life.StepRule(b, highLife).At(2, 2)).To(Equal(life.Alive))
		Expect(life.Step(b).At(2, 2)).To(Equal(life.Dead))
	})
})
