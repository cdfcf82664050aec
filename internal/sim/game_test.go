package sim_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/pattern"
	"github.com/san-kum/golife/internal/sim"
)

var _ = Describe("Game", func() {
	var game *sim.Game

	BeforeEach(func() {
		b, err := life.NewBoard(50, 50)
		Expect(err).NotTo(HaveOccurred())
		game = sim.NewGame(b, life.Conway)
	})

	It("starts stopped at generation zero", func() {
		Expect(game.Running()).To(BeFalse())
		Expect(game.Generation()).To(Equal(0))
		Expect(game.Size()).To(Equal(life.Size{W: 50, H: 50}))
	})

	Describe("Toggle", func() {
		It("flips a single cell", func() {
			Expect(game.Toggle(3, 4)).To(Succeed())
			Expect(game.Board().At(3, 4)).To(Equal(life.Alive))
			Expect(game.Population()).To(Equal(1))
		})

		It("restores the board when applied twice", func() {
			Expect(game.Toggle(10, 10)).To(Succeed())
			Expect(game.Toggle(10, 10)).To(Succeed())
			Expect(game.Population()).To(BeZero())
		})

		It("rejects coordinates off the board", func() {
			Expect(game.Toggle(50, 0)).To(MatchError(life.ErrOutOfBounds))
			Expect(game.Toggle(0, -1)).To(MatchError(life.ErrOutOfBounds))
		})
	})

	Describe("Tick", func() {
		BeforeEach(func() {
			p, err := pattern.Lookup("blinker")
			Expect(err).NotTo(HaveOccurred())
			Expect(game.Load(p)).To(Succeed())
		})

		It("does nothing while stopped", func() {
			before := game.Snapshot()
			Expect(game.Tick()).To(BeFalse())
			Expect(game.Board().Equal(before)).To(BeTrue())
			Expect(game.Generation()).To(Equal(0))
		})

		It("advances one generation per tick while running", func() {
			game.SetRunning(true)
			Expect(game.Tick()).To(BeTrue())
			Expect(game.Tick()).To(BeTrue())
			Expect(game.Generation()).To(Equal(2))
			Expect(game.Population()).To(Equal(3))
		})

		It("stops advancing once the flag is cleared", func() {
			game.ToggleRunning()
			Expect(game.Running()).To(BeTrue())
			game.Tick()
			game.ToggleRunning()
			Expect(game.Tick()).To(BeFalse())
			Expect(game.Generation()).To(Equal(1))
		})
	})

	Describe("Step", func() {
		It("advances regardless of the running flag", func() {
			Expect(game.Toggle(0, 0)).To(Succeed())
			game.Step()
			Expect(game.Generation()).To(Equal(1))
			Expect(game.Population()).To(BeZero())
		})

		It("matches the pure step function", func() {
			game.Randomize(42, 0.5)
			want := life.Step(game.Snapshot())
			game.Step()
			Expect(game.Board().Equal(want)).To(BeTrue())
		})

		It("notifies observers", func() {
			var gens []int
			game.AddObserver(sim.ObserverFunc(func(b *life.Board, gen int) {
				gens = append(gens, gen)
			}))
			game.Step()
			game.Step()
			Expect(gens).To(Equal([]int{1, 2}))
		})
	})

	Describe("Clear", func() {
		It("kills every cell and resets the generation", func() {
			game.Randomize(7, 0.5)
			game.Step()
			game.Step()
			game.Clear()
			Expect(game.Population()).To(BeZero())
			Expect(game.Generation()).To(Equal(0))
			Expect(game.History()).To(Equal([]int{0}))
		})

		It("leaves the running flag alone", func() {
			game.SetRunning(true)
			game.Clear()
			Expect(game.Running()).To(BeTrue())
		})
	})

	Describe("Load", func() {
		It("centers the pattern on an empty board", func() {
			game.Randomize(1, 0.9)
			p, _ := pattern.Lookup("glider")
			Expect(game.Load(p)).To(Succeed())
			Expect(game.Population()).To(Equal(5))
		})

		It("rejects patterns bigger than the board", func() {
			small := sim.NewGame(mustBoard(10, 10), life.Conway)
			p, _ := pattern.Lookup("gosper_gun")
			Expect(small.Load(p)).To(MatchError(pattern.ErrTooLarge))
		})
	})

	It("keeps population history", func() {
		p, _ := pattern.Lookup("glider")
		Expect(game.Load(p)).To(Succeed())
		for i := 0; i < 4; i++ {
			game.Step()
		}
		Expect(game.History()).To(Equal([]int{5, 5, 5, 5, 5}))
	})

	It("satisfies Controller", func() {
		var c sim.Controller = game
		c.SetRunning(true)
		Expect(c.Running()).To(BeTrue())
	})
})

func mustBoard(w, h int) *life.Board {
	b, err := life.NewBoard(w, h)
	if err != nil {
		panic(err)
	}
	return b
}
