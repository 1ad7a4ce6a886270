package component

import "github.com/lixenwraith/gridsnake/core"

// PositionComponent holds the current grid cell and the cell occupied before the last move
type PositionComponent struct {
	X, Y         int
	PrevX, PrevY int
}

// NewPosition places an entity with previous position equal to current
func NewPosition(x, y int) PositionComponent {
	return PositionComponent{X: x, Y: y, PrevX: x, PrevY: y}
}

func (p *PositionComponent) Point() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}

func (p *PositionComponent) Prev() core.Point {
	return core.Point{X: p.PrevX, Y: p.PrevY}
}

// MoveTo records the current cell as previous and moves to pt
func (p *PositionComponent) MoveTo(pt core.Point) {
	p.PrevX, p.PrevY = p.X, p.Y
	p.X, p.Y = pt.X, pt.Y
}
