// Package render turns model frames into draw instructions. It knows colors
// and layout but nothing about the window library that executes them.
package render

import (
	"fmt"
	"image/color"

	"github.com/zucenko/snake/model"
	"golang.org/x/image/colornames"
)

type OpKind int

const (
	LINE OpKind = iota + 1
	RECT
	DISC
	TEXT
)

func (k OpKind) Name() string {
	switch k {
	case LINE:
		return "LINE"
	case RECT:
		return "RECT"
	case DISC:
		return "DISC"
	case TEXT:
		return "TEXT"
	default:
		return fmt.Sprintf("N/A(%d)", k)
	}
}

type Align int

const (
	ALIGN_LEFT Align = iota
	ALIGN_CENTER
)

// Op is one draw instruction. For TEXT, X/Y is the baseline origin, or the
// baseline centre when Align is ALIGN_CENTER. Size is the font size.
type Op struct {
	Kind          OpKind
	X, Y          int
	X2, Y2        int
	Width, Height int
	Size          float64
	Color         color.Color
	Text          string
	Align         Align
}

type Scene struct {
	Background color.Color
	Ops        []Op
}

const (
	ScoreSize    = 20
	GameOverSize = 75
	scoreY       = 24
)

// Painter builds scenes. Palette only picks body colors.
type Painter struct {
	Palette Palette
}

func NewPainter(p Palette) *Painter {
	return &Painter{Palette: p}
}

func (p *Painter) Scene(f model.Frame) Scene {
	if f.Over() {
		return p.gameOver(f)
	}
	ops := make([]Op, 0, len(f.Grid)+len(f.Body)+3)
	for _, l := range f.Grid {
		ops = append(ops, Op{Kind: LINE, X: l.X1, Y: l.Y1, X2: l.X2, Y2: l.Y2, Color: colornames.Gray})
	}
	ops = append(ops, Op{Kind: DISC, X: f.Food.X, Y: f.Food.Y, Width: f.Unit, Height: f.Unit, Color: colornames.Red})
	ops = append(ops, Op{Kind: RECT, X: f.Head.X, Y: f.Head.Y, Width: f.Unit, Height: f.Unit, Color: colornames.White})
	for _, s := range f.Body {
		ops = append(ops, Op{Kind: RECT, X: s.X, Y: s.Y, Width: f.Unit, Height: f.Unit, Color: p.Palette.Segment()})
	}
	ops = append(ops, scoreLabel(f, colornames.White))
	return Scene{Background: colornames.Black, Ops: ops}
}

func (p *Painter) gameOver(f model.Frame) Scene {
	return Scene{
		Background: colornames.White,
		Ops: []Op{
			{
				Kind:  TEXT,
				X:     f.Width / 2,
				Y:     f.Height / 2,
				Size:  GameOverSize,
				Color: colornames.Black,
				Text:  "Game Over",
				Align: ALIGN_CENTER,
			},
			scoreLabel(f, colornames.Black),
		},
	}
}

func scoreLabel(f model.Frame, c color.Color) Op {
	return Op{
		Kind:  TEXT,
		X:     f.Width / 2,
		Y:     scoreY,
		Size:  ScoreSize,
		Color: c,
		Text:  ScoreText(f.Score),
		Align: ALIGN_CENTER,
	}
}

func ScoreText(score int) string {
	return fmt.Sprintf("Score: %d", score)
}
