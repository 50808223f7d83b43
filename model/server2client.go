package model

// Line is one grid line, in abstract units.
type Line struct {
	X1, Y1, X2, Y2 int
}

// Frame is everything a painter or a spectator needs for one repaint.
type Frame struct {
	Tick          int
	Width, Height int
	Unit          int
	Grid          []Line
	Food          Point
	Head          Point
	Body          []Point
	Score         int
	BodyParts     int
	State         RunState
}

func (f Frame) Over() bool {
	return f.State == OVER
}

// GridLines depends only on the field constants.
func GridLines() []Line {
	lines := make([]Line, 0, 2*(ScreenHeight/UnitSize+1))
	for i := 0; i <= ScreenHeight/UnitSize; i++ {
		lines = append(lines,
			Line{X1: i * UnitSize, Y1: 0, X2: i * UnitSize, Y2: ScreenHeight},
			Line{X1: 0, Y1: i * UnitSize, X2: ScreenWidth, Y2: i * UnitSize})
	}
	return lines
}

// Frame reads the current state without touching it.
func (g *Game) Frame() Frame {
	segments := g.Segments()
	return Frame{
		Tick:      g.Ticks,
		Width:     ScreenWidth,
		Height:    ScreenHeight,
		Unit:      UnitSize,
		Grid:      GridLines(),
		Food:      g.Food,
		Head:      segments[0],
		Body:      segments[1:],
		Score:     g.Score,
		BodyParts: g.BodyParts,
		State:     g.State,
	}
}
