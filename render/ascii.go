package render

import (
	"strings"

	"github.com/zucenko/snake/model"
)

const (
	glyphEmpty = '.'
	glyphFood  = '*'
	glyphBody  = 'o'
	glyphHead  = '@'
)

// ASCII draws f as text, one rune per cell. It has one extra row and column
// because the head may legally rest on the far edge.
func ASCII(f model.Frame) string {
	if f.Unit <= 0 {
		return ""
	}
	cols := f.Width/f.Unit + 1
	rows := f.Height/f.Unit + 1
	board := make([][]rune, rows)
	for r := range board {
		board[r] = []rune(strings.Repeat(string(glyphEmpty), cols))
	}
	put := func(p model.Point, g rune) {
		c, r := p.X/f.Unit, p.Y/f.Unit
		if p.X < 0 || p.Y < 0 || c >= cols || r >= rows {
			return
		}
		board[r][c] = g
	}
	put(f.Food, glyphFood)
	for _, s := range f.Body {
		put(s, glyphBody)
	}
	put(f.Head, glyphHead)

	var sb strings.Builder
	for _, line := range board {
		sb.WriteString(string(line))
		sb.WriteByte('\n')
	}
	sb.WriteString(ScoreText(f.Score))
	if f.Over() {
		sb.WriteString("  GAME OVER")
	}
	sb.WriteByte('\n')
	return sb.String()
}
