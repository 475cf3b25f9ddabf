// Package hud draws text and overlays shared by the game screens.
package hud

import (
	"bytes"
	"fmt"
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
)

// Font sizes in pixels.
const (
	TitleSize = 28
	BodySize  = 16
	SmallSize = 12
)

// Colors for rendering
var (
	ColorBackground = color.RGBA{26, 26, 46, 255}
	ColorText       = color.RGBA{230, 230, 230, 255}
	ColorDim        = color.RGBA{140, 140, 160, 255}
	ColorHighlight  = color.RGBA{255, 215, 0, 255}
	ColorDanger     = color.RGBA{200, 50, 50, 255}
)

var (
	loadOnce   sync.Once
	regularSrc *text.GoTextFaceSource
	boldSrc    *text.GoTextFaceSource
)

func sources() (*text.GoTextFaceSource, *text.GoTextFaceSource) {
	loadOnce.Do(func() {
		var err error
		regularSrc, err = text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			panic(fmt.Sprintf("failed to load regular font: %v", err))
		}
		boldSrc, err = text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
		if err != nil {
			panic(fmt.Sprintf("failed to load bold font: %v", err))
		}
	})
	return regularSrc, boldSrc
}

// Face returns a font face of the given size.
func Face(size float64, bold bool) text.Face {
	regular, b := sources()
	src := regular
	if bold {
		src = b
	}
	return &text.GoTextFace{Source: src, Size: size}
}

// Draw writes s with its top-left corner at (x, y).
func Draw(screen *ebiten.Image, s string, x, y, size float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, Face(size, false), op)
}

// Centered writes s horizontally centred on the screen at height y.
func Centered(screen *ebiten.Image, s string, y, size float64, bold bool, clr color.Color) {
	face := Face(size, bold)
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}

// Title draws a screen title near the top.
func Title(screen *ebiten.Image, s string) {
	Centered(screen, s, float64(screen.Bounds().Dy())/5, TitleSize, true, ColorText)
}

// Hint draws a help line along the bottom edge.
func Hint(screen *ebiten.Image, s string) {
	Centered(screen, s, float64(screen.Bounds().Dy())-2*SmallSize, SmallSize, false, ColorDim)
}

// Overlay darkens the whole screen.
func Overlay(screen *ebiten.Image, alpha uint8) {
	b := screen.Bounds()
	vector.DrawFilledRect(screen, 0, 0, float32(b.Dx()), float32(b.Dy()), color.RGBA{0, 0, 0, alpha}, false)
}

// VerticalList draws items one per line starting at y, marking the selected one.
func VerticalList(screen *ebiten.Image, items []string, selected int, y float64) {
	for i, item := range items {
		clr := color.Color(ColorText)
		label := item
		if i == selected {
			clr = ColorHighlight
			label = "> " + item + " <"
		}
		Centered(screen, label, y+float64(i)*BodySize*1.75, BodySize, false, clr)
	}
}

// HorizontalList draws items on one centred row, marking the selected one.
func HorizontalList(screen *ebiten.Image, items []string, selected int, y float64) {
	n := len(items)
	if n == 0 {
		return
	}
	w := float64(screen.Bounds().Dx())
	step := w / float64(n+1)
	face := Face(BodySize, false)
	for i, item := range items {
		clr := color.Color(ColorText)
		label := item
		if i == selected {
			clr = ColorHighlight
			label = "[" + item + "]"
		}
		op := &text.DrawOptions{}
		op.GeoM.Translate(step*float64(i+1), y)
		op.ColorScale.ScaleWithColor(clr)
		op.PrimaryAlign = text.AlignCenter
		text.Draw(screen, label, face, op)
	}
}
