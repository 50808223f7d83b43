package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tanema/gween/ease"
	"github.com/zucenko/snake/model"
)

const frameTime = float32(1) / tps

func runAll(t *testing.T, as *Animations) int {
	t.Helper()
	frames := 0
	for len(*as) > 0 {
		as.Update(frameTime)
		frames++
		require.Less(t, frames, 10*tps, "animations never finish")
	}
	return frames
}

func TestAnimationRunsToItsEndValue(t *testing.T) {
	var got []float32
	finished := 0
	var as Animations
	as.Start(Animate(0, 10, .5, ease.Linear, func(v float32) {
		got = append(got, v)
	}).OnFinish(func() {
		finished++
	}))

	runAll(t, &as)

	require.NotEmpty(t, got)
	assert.Equal(t, float32(10), got[len(got)-1])
	for i := 1; i < len(got); i++ {
		assert.GreaterOrEqual(t, got[i], got[i-1])
	}
	assert.Equal(t, 1, finished)
}

func TestThenStartsAfterItsPredecessor(t *testing.T) {
	var order []string
	first := Animate(0, 1, .1, ease.Linear, func(float32) {
		order = append(order, "first")
	})
	first.Then(Animate(0, 1, .1, ease.Linear, func(float32) {
		order = append(order, "second")
	})).OnFinish(func() {
		order = append(order, "done")
	})
	var as Animations
	as.Start(first)

	runAll(t, &as)

	require.NotEmpty(t, order)
	assert.Equal(t, "first", order[0])
	assert.Equal(t, "done", order[len(order)-1])
	seenSecond := false
	for _, o := range order {
		if o == "second" {
			seenSecond = true
		}
		if seenSecond {
			assert.NotEqual(t, "first", o)
		}
	}
	assert.True(t, seenSecond)
}

func TestGameOverFadesInThenCountsScore(t *testing.T) {
	g := NewGame(1, nil)
	g.Loop.Game.Score = 7
	g.Loop.Game.State = model.OVER

	g.startGameOver()
	assert.True(t, g.overShown)
	require.Len(t, g.Overlay, 1)

	for len(g.Overlay) == 1 && g.shownScore == 0 {
		g.Overlay.Update(frameTime)
		assert.LessOrEqual(t, g.overlayAlpha, 1.0)
	}
	assert.Equal(t, 1.0, g.overlayAlpha, "fade is done before the count starts")

	runAll(t, &g.Overlay)

	assert.Equal(t, 1.0, g.overlayAlpha)
	assert.Equal(t, 7, g.shownScore)
}
