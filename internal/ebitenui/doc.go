// Package ebitenui is the ebiten frontend. It is only compiled with the
// ebiten build tag; without it Run returns ErrUnavailable.
package ebitenui
