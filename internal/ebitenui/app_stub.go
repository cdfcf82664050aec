//go:build !ebiten

package ebitenui

import (
	"context"
	"errors"

	"github.com/san-kum/golife/internal/config"
	"github.com/san-kum/golife/internal/sim"
)

const Available = false

var ErrUnavailable = errors.New("ebitenui: build with -tags ebiten")

// Run reports that the ebiten frontend is not compiled in.
func Run(context.Context, *sim.Game, *config.Config) error {
	return ErrUnavailable
}
