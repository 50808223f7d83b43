package model

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// Loop is the fixed-rate timer around Game.Advance. It is driven by whoever
// owns the event loop, so Step and the key handler never run concurrently.
type Loop struct {
	Game     *Game
	Interval time.Duration
	OnTick   func(Frame)
	elapsed  time.Duration
	stopped  bool
}

func NewLoop(g *Game, interval time.Duration) *Loop {
	if interval <= 0 {
		interval = Delay
	}
	return &Loop{Game: g, Interval: interval}
}

// Step feeds dt of wall time into the loop and returns how many ticks ran.
// The loop stops on the tick that ends the game.
func (l *Loop) Step(dt time.Duration) int {
	if l.stopped {
		return 0
	}
	l.elapsed += dt
	ticks := 0
	for l.elapsed >= l.Interval {
		l.elapsed -= l.Interval
		running := l.Game.Advance()
		ticks++
		log.Debugf("Loop.Step tick:%d", l.Game.Ticks)
		if l.OnTick != nil {
			l.OnTick(l.Game.Frame())
		}
		if !running {
			l.stopped = true
			l.elapsed = 0
			break
		}
	}
	return ticks
}

func (l *Loop) Stopped() bool {
	return l.stopped
}
