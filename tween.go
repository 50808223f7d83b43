package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Animation drives one value from a gween tween and may hand over to a
// follow-up once it is done.
type Animation struct {
	tween    *gween.Tween
	apply    func(float32)
	finished []func()
	then     *Animation
}

func Animate(from, to, seconds float32, easing ease.TweenFunc, apply func(float32)) *Animation {
	return &Animation{
		tween: gween.New(from, to, seconds, easing),
		apply: apply,
	}
}

// OnFinish runs f after the last value has been applied.
func (a *Animation) OnFinish(f func()) *Animation {
	a.finished = append(a.finished, f)
	return a
}

// Then starts next once a is finished and returns next for further chaining.
func (a *Animation) Then(next *Animation) *Animation {
	a.then = next
	return next
}

// step advances a by dt and reports whether it is finished.
func (a *Animation) step(dt float32) bool {
	v, done := a.tween.Update(dt)
	if a.apply != nil {
		a.apply(v)
	}
	if done {
		for _, f := range a.finished {
			f()
		}
	}
	return done
}

// Animations are the ones currently playing, in start order.
type Animations []*Animation

func (as *Animations) Start(a *Animation) {
	*as = append(*as, a)
}

// Update steps every playing animation. A successor starts on the next
// Update, so its first value is applied a frame after its predecessor's last.
func (as *Animations) Update(dt float32) {
	playing := (*as)[:0]
	var started []*Animation
	for _, a := range *as {
		if !a.step(dt) {
			playing = append(playing, a)
		} else if a.then != nil {
			started = append(started, a.then)
		}
	}
	*as = append(playing, started...)
}
