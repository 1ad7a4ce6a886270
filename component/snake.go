package component

import "github.com/lixenwraith/gridsnake/core"

// Segment is one tail cell; PrevX/PrevY feed render interpolation
type Segment struct {
	X, Y         int
	PrevX, PrevY int
}

func (s Segment) Point() core.Point {
	return core.Point{X: s.X, Y: s.Y}
}

// SnakeBodyComponent holds the tail ordered head-adjacent first
// Invariant after every movement step: len(Segments) == max(0, Size-1)
type SnakeBodyComponent struct {
	Segments      []Segment
	Size          int // Total length including head
	GrowthPending int // Growth applied by collisions not yet reflected in Segments
	Alive         bool
}

// ExpectedSegments is the tail length implied by Size
func (b *SnakeBodyComponent) ExpectedSegments() int {
	return max(0, b.Size-1)
}

// Occupies reports whether any tail segment sits on pt
func (b *SnakeBodyComponent) Occupies(pt core.Point) bool {
	for _, seg := range b.Segments {
		if seg.X == pt.X && seg.Y == pt.Y {
			return true
		}
	}
	return false
}
