//go:build ebiten

package ebitenui

import (
	"context"
	"errors"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/san-kum/golife/internal/config"
	"github.com/san-kum/golife/internal/life"
	"github.com/san-kum/golife/internal/sim"
)

func TestUpdateStopsWhenContextDone(t *testing.T) {
	b, err := life.NewBoard(5, 5)
	if err != nil {
		t.Fatal(err)
	}
	g := New(sim.NewGame(b, life.Conway), config.DefaultConfig())

	ctx, cancel := context.WithCancel(context.Background())
	g.ctx = ctx
	cancel()

	if err := g.Update(); !errors.Is(err, ebiten.Termination) {
		t.Errorf("Update after cancel = %v, want ebiten.Termination", err)
	}
}
