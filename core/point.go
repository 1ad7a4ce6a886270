package core

import "fmt"

// Point represents a 2D grid coordinate
type Point struct {
	X, Y int
}

// Add returns the point one step along direction d
func (p Point) Add(d Direction) Point {
	return Point{X: p.X + d.DX, Y: p.Y + d.DY}
}

// Wrap folds the point onto a width x height torus
func (p Point) Wrap(width, height int) Point {
	return Point{X: mod(p.X, width), Y: mod(p.Y, height)}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

func mod(v, n int) int {
	if n <= 0 {
		return v
	}
	r := v % n
	if r < 0 {
		r += n
	}
	return r
}

// Direction is a unit step on the grid; (0,0) means stationary
type Direction struct {
	DX, DY int
}

var (
	DirNone  = Direction{0, 0}
	DirUp    = Direction{0, -1}
	DirDown  = Direction{0, 1}
	DirLeft  = Direction{-1, 0}
	DirRight = Direction{1, 0}
)

// IsZero reports a stationary direction
func (d Direction) IsZero() bool {
	return d.DX == 0 && d.DY == 0
}

// IsValid reports whether d is one of the four cardinal unit steps
func (d Direction) IsValid() bool {
	ax, ay := abs(d.DX), abs(d.DY)
	return ax+ay == 1
}

// Opposite returns the reversed direction
func (d Direction) Opposite() Direction {
	return Direction{-d.DX, -d.DY}
}

// Reverses reports whether d is the exact opposite of other
// A zero direction never reverses anything
func (d Direction) Reverses(other Direction) bool {
	if d.IsZero() || other.IsZero() {
		return false
	}
	return d == other.Opposite()
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirNone:
		return "none"
	}
	return fmt.Sprintf("(%d, %d)", d.DX, d.DY)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
