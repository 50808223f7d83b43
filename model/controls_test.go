package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWASD(t *testing.T) {
	g := newTestGame(t)

	assert.False(t, WASD.OnKey(g, 'a'), "reverse of RIGHT")
	assert.Equal(t, RIGHT, g.Direction)

	assert.True(t, WASD.OnKey(g, 's'))
	assert.Equal(t, DOWN, g.Direction)

	assert.True(t, WASD.OnKey(g, 'A'), "upper case maps like lower case")
	assert.Equal(t, LEFT, g.Direction)

	assert.True(t, WASD.OnKey(g, 'w'))
	assert.Equal(t, UP, g.Direction)
}

func TestUnboundKeysDoNothing(t *testing.T) {
	g := newTestGame(t)
	for _, k := range []rune{'q', 'x', ' ', '\n', 'k'} {
		assert.False(t, WASD.OnKey(g, k))
	}
	assert.Equal(t, RIGHT, g.Direction)
}

func TestLastKeyBeforeTickWins(t *testing.T) {
	g := newTestGame(t)
	stack(g, Point{X: 300, Y: 300})

	require.True(t, WASD.OnKey(g, 'w'))
	require.True(t, WASD.OnKey(g, 'a'))
	require.True(t, g.Advance())

	assert.Equal(t, Point{X: 275, Y: 300}, g.Head())
}

func TestCustomControls(t *testing.T) {
	arrows := Controls{'i': UP, 'j': LEFT, 'k': DOWN, 'l': RIGHT}
	g := newTestGame(t)

	assert.False(t, arrows.OnKey(g, 'w'))
	assert.True(t, arrows.OnKey(g, 'k'))
	assert.Equal(t, DOWN, g.Direction)
}
