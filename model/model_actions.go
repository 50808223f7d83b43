package model

import (
	"math/rand"

	log "github.com/sirupsen/logrus"
)

// NewGame starts a run with every segment stacked on the origin, heading right.
func NewGame(rnd *rand.Rand) *Game {
	g := &Game{
		State:     RUNNING,
		Direction: RIGHT,
		BodyParts: InitialBodyParts,
		rnd:       rnd,
	}
	g.Food = g.newFood()
	return g
}

// Advance runs a single tick and reports whether the game is still running.
// It does nothing once the game is over.
func (g *Game) Advance() bool {
	if g.State != RUNNING {
		return false
	}
	g.move()
	g.checkFood()
	g.checkCollision()
	g.Ticks++
	if g.State == OVER {
		log.Infof("Game.Advance GAME OVER tick:%d score:%d length:%d head:%v",
			g.Ticks, g.Score, g.BodyParts, g.Body[0])
	}
	return g.State == RUNNING
}

// Turn changes direction unless d would reverse the snake onto its neck.
func (g *Game) Turn(d Direction) bool {
	if !d.valid() || d == g.Direction.Opposite() {
		return false
	}
	g.Direction = d
	return true
}

func (g *Game) Head() Point {
	return g.Body[0]
}

// Segments copies the live body, head first.
func (g *Game) Segments() []Point {
	s := make([]Point, g.BodyParts)
	copy(s, g.Body[:g.BodyParts])
	return s
}

func (g *Game) move() {
	// slot BodyParts keeps the old tail; it becomes the tail when food is eaten
	for i := lastSlot(g.BodyParts); i > 0; i-- {
		g.Body[i] = g.Body[i-1]
	}
	dx, dy := g.Direction.Delta()
	g.Body[0].X += dx
	g.Body[0].Y += dy
}

func (g *Game) checkFood() {
	if g.Body[0] != g.Food {
		return
	}
	g.Score++
	if g.BodyParts < GameUnits {
		g.BodyParts++
	}
	g.Food = g.newFood()
	log.Debugf("Game.checkFood score:%d length:%d food:%v", g.Score, g.BodyParts, g.Food)
}

func (g *Game) checkCollision() {
	head := g.Body[0]
	// right after growing, slot BodyParts was not shifted this tick and
	// still holds its previous value, the origin if it was never used
	for i := lastSlot(g.BodyParts); i > 0; i-- {
		if head == g.Body[i] {
			g.State = OVER
			return
		}
	}
	// strict comparison: the head may sit exactly on the far edge
	if head.X > ScreenWidth || head.X < 0 || head.Y > ScreenHeight || head.Y < 0 {
		g.State = OVER
	}
}

// food may land on the snake, it is not re-rolled
func (g *Game) newFood() Point {
	return Point{
		X: g.rnd.Intn(ScreenWidth/UnitSize) * UnitSize,
		Y: g.rnd.Intn(ScreenHeight/UnitSize) * UnitSize,
	}
}

func lastSlot(bodyParts int) int {
	if bodyParts > GameUnits-1 {
		return GameUnits - 1
	}
	return bodyParts
}
