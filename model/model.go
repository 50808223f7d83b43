package model

import (
	"fmt"
	"math/rand"
	"time"
)

const (
	ScreenWidth      = 600
	ScreenHeight     = 600
	UnitSize         = 25
	GameUnits        = (ScreenWidth * ScreenHeight) / (UnitSize * UnitSize)
	InitialBodyParts = 6
	Delay            = 120 * time.Millisecond
)

type Point struct {
	X, Y int
}

type Direction int

const (
	UP Direction = iota + 1
	DOWN
	LEFT
	RIGHT
)

func (d Direction) Name() string {
	switch d {
	case UP:
		return "UP"
	case DOWN:
		return "DOWN"
	case LEFT:
		return "LEFT"
	case RIGHT:
		return "RIGHT"
	default:
		return fmt.Sprintf("N/A(%d)", d)
	}
}

func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	case RIGHT:
		return LEFT
	default:
		return d
	}
}

// Delta is the head movement for one tick, in abstract units.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case UP:
		return 0, -UnitSize
	case DOWN:
		return 0, UnitSize
	case LEFT:
		return -UnitSize, 0
	case RIGHT:
		return UnitSize, 0
	default:
		return 0, 0
	}
}

func (d Direction) valid() bool {
	return d >= UP && d <= RIGHT
}

type RunState int

const (
	RUNNING RunState = iota + 1
	OVER
)

func (s RunState) Name() string {
	switch s {
	case RUNNING:
		return "RUNNING"
	case OVER:
		return "OVER"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

// Game is the whole mutable state of one run. Body is sized to the grid, so
// BodyParts can never exceed the number of cells.
type Game struct {
	State     RunState
	Direction Direction
	Body      [GameUnits]Point
	BodyParts int
	Food      Point
	Score     int
	Ticks     int
	rnd       *rand.Rand
}
