package world

import "time"

type Direction int8

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// Player is the movable avatar on a scene. Speed is in units per
// second of logical time; one Move call advances the position by one
// input step.
type Player struct {
	Pos    Point
	Speed  float64
	bounds Rect
}

// MoveStep is the logical duration one directional key press stands
// for. Movement input is discrete key events, not held-key state.
const MoveStep = 100 * time.Millisecond

func NewPlayer(start Point, speed float64, bounds Rect) *Player {
	p := &Player{Pos: start, Speed: speed, bounds: bounds}
	p.clamp()
	return p
}

// Move steps the player in the given direction for duration d of
// logical time, clamped to the world bounds.
func (p *Player) Move(dir Direction, d time.Duration) {
	step := p.Speed * d.Seconds()
	switch dir {
	case DirUp:
		p.Pos.Y -= step
	case DirDown:
		p.Pos.Y += step
	case DirLeft:
		p.Pos.X -= step
	case DirRight:
		p.Pos.X += step
	}
	p.clamp()
}

func (p *Player) clamp() {
	if p.Pos.X < p.bounds.X {
		p.Pos.X = p.bounds.X
	}
	if p.Pos.X > p.bounds.X+p.bounds.W {
		p.Pos.X = p.bounds.X + p.bounds.W
	}
	if p.Pos.Y < p.bounds.Y {
		p.Pos.Y = p.bounds.Y
	}
	if p.Pos.Y > p.bounds.Y+p.bounds.H {
		p.Pos.Y = p.bounds.Y + p.bounds.H
	}
}
