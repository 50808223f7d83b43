package main

import (
	"context"
	"image/color"
	"math/rand"
	"time"

	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten"
	"github.com/hajimehoshi/ebiten/ebitenutil"
	"github.com/hajimehoshi/ebiten/inpututil"
	"github.com/hajimehoshi/ebiten/text"
	log "github.com/sirupsen/logrus"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/snake/model"
	"github.com/zucenko/snake/render"
	"github.com/zucenko/snake/server"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

const tps = 60

// ordered, so two keys pressed in the same frame apply in a fixed order
var keyBindings = []struct {
	key ebiten.Key
	sym rune
}{
	{ebiten.KeyW, 'w'},
	{ebiten.KeyA, 'a'},
	{ebiten.KeyS, 's'},
	{ebiten.KeyD, 'd'},
}

type Game struct {
	Loop    *model.Loop
	Painter *render.Painter
	Keys    model.Controls
	Overlay Animations

	font         *truetype.Font
	faces        map[float64]font.Face
	discs        map[color.Color]*ebiten.Image
	overShown    bool
	overlayAlpha float64
	shownScore   int
}

func NewGame(seed int64, tt *truetype.Font) *Game {
	return &Game{
		Loop:    model.NewLoop(model.NewGame(rand.New(rand.NewSource(seed))), model.Delay),
		Painter: render.NewPainter(render.NewRandomPalette(rand.New(rand.NewSource(seed + 1)))),
		Keys:    model.WASD,
		font:    tt,
		faces:   make(map[float64]font.Face),
		discs:   make(map[color.Color]*ebiten.Image),
	}
}

func (g *Game) update(screen *ebiten.Image) error {
	for _, b := range keyBindings {
		if inpututil.IsKeyJustPressed(b.key) {
			g.Keys.OnKey(g.Loop.Game, b.sym)
		}
	}

	g.Loop.Step(time.Second / tps)
	if g.Loop.Stopped() && !g.overShown {
		g.startGameOver()
	}
	g.Overlay.Update(float32(1) / tps)

	if ebiten.IsDrawingSkipped() {
		return nil
	}
	return g.draw(screen)
}

// startGameOver fades the game over screen in, then counts the score up.
func (g *Game) startGameOver() {
	g.overShown = true
	final := g.Loop.Game.Score

	fade := Animate(0, 1, .6, ease.OutQuad, func(v float32) {
		g.overlayAlpha = float64(v)
	})
	fade.Then(Animate(0, float32(final), .8, ease.Linear, func(v float32) {
		g.shownScore = int(v)
	})).OnFinish(func() {
		g.shownScore = final
		log.Infof("Game over, final score %d", final)
	})
	g.Overlay.Start(fade)
}

func (g *Game) draw(screen *ebiten.Image) error {
	f := g.Loop.Game.Frame()
	alpha := 1.0
	if f.Over() {
		f.Score = g.shownScore
		alpha = g.overlayAlpha
	}
	scene := g.Painter.Scene(f)

	if err := screen.Fill(scene.Background); err != nil {
		return err
	}
	for _, op := range scene.Ops {
		switch op.Kind {
		case render.LINE:
			ebitenutil.DrawLine(screen, float64(op.X), float64(op.Y), float64(op.X2), float64(op.Y2), op.Color)
		case render.RECT:
			ebitenutil.DrawRect(screen, float64(op.X), float64(op.Y), float64(op.Width), float64(op.Height), op.Color)
		case render.DISC:
			if err := g.drawDisc(screen, op); err != nil {
				return err
			}
		case render.TEXT:
			g.drawText(screen, op, alpha)
		}
	}
	return nil
}

func (g *Game) drawDisc(screen *ebiten.Image, op render.Op) error {
	img, found := g.discs[op.Color]
	if !found {
		var err error
		img, err = ebiten.NewImageFromImage(render.Disc(op.Width, op.Color), ebiten.FilterDefault)
		if err != nil {
			return err
		}
		g.discs[op.Color] = img
	}
	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(op.X), float64(op.Y))
	return screen.DrawImage(img, opts)
}

func (g *Game) drawText(screen *ebiten.Image, op render.Op, alpha float64) {
	face := g.face(op.Size)
	x := op.X
	if op.Align == render.ALIGN_CENTER {
		x -= font.MeasureString(face, op.Text).Ceil() / 2
	}
	text.Draw(screen, op.Text, face, x, op.Y, fade(op.Color, alpha))
}

func (g *Game) face(size float64) font.Face {
	if face, found := g.faces[size]; found {
		return face
	}
	const dpi = 72
	face := truetype.NewFace(g.font, &truetype.Options{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	g.faces[size] = face
	return face
}

func fade(c color.Color, alpha float64) color.Color {
	r, g, b, a := c.RGBA()
	return color.RGBA64{
		R: uint16(float64(r) * alpha),
		G: uint16(float64(g) * alpha),
		B: uint16(float64(b) * alpha),
		A: uint16(float64(a) * alpha),
	}
}

func main() {
	cfg := LoadConfig()
	log.SetLevel(cfg.LogLevel)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	// no fallback for a missing font, same as a missing asset
	tt, err := truetype.Parse(goregular.TTF)
	if err != nil {
		log.Fatal(err)
	}
	game := NewGame(cfg.Seed, tt)
	log.Infof("Starting snake seed:%d tick:%v", cfg.Seed, model.Delay)

	if cfg.Spectate.Enabled() {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		spectators := server.NewGameServer(cfg.Spectate)
		game.Loop.OnTick = func(f model.Frame) {
			spectators.Publish(f)
		}
		go func() {
			if err := spectators.ListenAndServe(ctx); err != nil {
				log.Errorf("%v", err)
			}
		}()
	}

	if err := ebiten.Run(game.update, model.ScreenWidth, model.ScreenHeight, 1, "Snake Game"); err != nil {
		log.Fatal(err)
	}
}
