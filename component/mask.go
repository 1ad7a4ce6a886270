package component

// Mask is a bitset of component kinds carried by an entity
type Mask uint32

const (
	MaskPosition Mask = 1 << iota
	MaskVelocity
	MaskSnakeBody
	MaskEdible
	MaskRenderable
	MaskPalette
	MaskInterpolation
	MaskObstacle
	MaskInputBuffer
	MaskHunger
)

// Has reports whether every bit of other is set in m
func (m Mask) Has(other Mask) bool {
	return m&other == other
}

var maskNames = []string{
	"position", "velocity", "snake_body", "edible", "renderable",
	"palette", "interpolation", "obstacle", "input_buffer", "hunger",
}

// Names lists the component names in bit order
func (m Mask) Names() []string {
	var out []string
	for i, name := range maskNames {
		if m&(1<<i) != 0 {
			out = append(out, name)
		}
	}
	return out
}
