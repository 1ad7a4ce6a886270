package component

// WrapAxis flags the axes on which the last move wrapped around the board
type WrapAxis uint8

const (
	WrapNone WrapAxis = 0
	WrapX    WrapAxis = 1 << 0
	WrapY    WrapAxis = 1 << 1
	WrapBoth          = WrapX | WrapY
)

func (w WrapAxis) String() string {
	switch w {
	case WrapNone:
		return "none"
	case WrapX:
		return "x"
	case WrapY:
		return "y"
	case WrapBoth:
		return "both"
	}
	return "invalid"
}

// InterpolationComponent carries the fraction of the current move interval elapsed
// Written by the interpolation system, read by renderers
type InterpolationComponent struct {
	Alpha     float64 // [0,1]
	Wrap      WrapAxis
	ElapsedMs float64 // Time since last grid step
}
