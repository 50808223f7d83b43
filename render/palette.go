package render

import (
	"image"
	"image/color"
	"math/rand"

	"golang.org/x/image/vector"
)

// Palette picks a body segment color. Cosmetic only: it never sees game
// state, so it cannot change how a game plays out.
type Palette interface {
	Segment() color.Color
}

// RandomPalette gives every body segment a fresh random color per repaint.
type RandomPalette struct {
	rnd *rand.Rand
}

func NewRandomPalette(rnd *rand.Rand) *RandomPalette {
	return &RandomPalette{rnd: rnd}
}

func (p *RandomPalette) Segment() color.Color {
	return color.RGBA{
		R: uint8(p.rnd.Intn(255)),
		G: uint8(p.rnd.Intn(255)),
		B: uint8(p.rnd.Intn(255)),
		A: 0xff,
	}
}

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847

// Disc rasterizes an anti-aliased filled circle inscribed in a
// diameter×diameter square.
func Disc(diameter int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, diameter, diameter))
	r := float32(diameter) / 2
	k := r * kappa

	z := vector.NewRasterizer(diameter, diameter)
	z.MoveTo(r, 0)
	z.CubeTo(r+k, 0, 2*r, r-k, 2*r, r)
	z.CubeTo(2*r, r+k, r+k, 2*r, r, 2*r)
	z.CubeTo(r-k, 2*r, 0, r+k, 0, r)
	z.CubeTo(0, r-k, r-k, 0, r, 0)
	z.ClosePath()
	z.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	return img
}
