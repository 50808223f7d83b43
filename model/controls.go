package model

import "unicode"

// Controls maps a key symbol to the direction it requests.
type Controls map[rune]Direction

var WASD = Controls{
	'w': UP,
	'a': LEFT,
	's': DOWN,
	'd': RIGHT,
}

// OnKey applies the key's direction to g. Unknown keys and reversals are
// ignored; the last accepted key before a tick is the one that counts.
func (c Controls) OnKey(g *Game, key rune) bool {
	d, found := c[unicode.ToLower(key)]
	if !found {
		return false
	}
	return g.Turn(d)
}
