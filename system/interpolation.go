package system

import (
	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/parameter"
)

// Interpolate derives render progress between two grid cells
// alpha = clamp(elapsed / (1000/speed), 0, 1); an axis is flagged as wrapped when the
// cell jump is within one cell of the full span and the board wraps
func Interpolate(prev, cur core.Point, elapsedMs, speed float64, width, height int, wrapMode bool) (float64, component.WrapAxis) {
	if speed <= 0 || prev == cur {
		return 0, component.WrapNone
	}

	interval := 1000.0 / speed
	alpha := clamp01(elapsedMs / interval)

	wrap := component.WrapNone
	if wrapMode {
		if jumpsSpan(prev.X, cur.X, width) {
			wrap |= component.WrapX
		}
		if jumpsSpan(prev.Y, cur.Y, height) {
			wrap |= component.WrapY
		}
	}
	return alpha, wrap
}

// DrawPosition returns the pixel position for an entity moving prev -> cur
// Wrapped axes advance from prev in the direction of travel instead of lerping across the board;
// the result may lie one cell outside the board and is folded by the renderer
func DrawPosition(prev, cur core.Point, alpha float64, cellSize int, wrap component.WrapAxis) (float64, float64) {
	cs := float64(cellSize)
	x := axisPosition(prev.X, cur.X, alpha, cs, wrap&component.WrapX != 0)
	y := axisPosition(prev.Y, cur.Y, alpha, cs, wrap&component.WrapY != 0)
	return x, y
}

func axisPosition(prev, cur int, alpha, cs float64, wrapped bool) float64 {
	p := float64(prev) * cs
	if !wrapped {
		return p + float64(cur-prev)*cs*alpha
	}
	// A wrap jumps against the direction of travel
	dir := 1.0
	if cur > prev {
		dir = -1.0
	}
	return p + dir*cs*alpha
}

func jumpsSpan(prev, cur, span int) bool {
	d := abs(prev - cur)
	return d > 1 && abs(d-span) <= 1
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// InterpolationSystem publishes alpha and wrap flags for renderers
// It reads gameplay state only and keeps running while paused
type InterpolationSystem struct {
	world *engine.World
}

func NewInterpolationSystem(world *engine.World) *InterpolationSystem {
	return &InterpolationSystem{world: world}
}

func (s *InterpolationSystem) Name() string {
	return "interpolation"
}

func (s *InterpolationSystem) Priority() int {
	return parameter.PriorityInterpolation
}

func (s *InterpolationSystem) Update() {
	w := s.world
	for _, id := range w.Registry.Snakes() {
		snake, _ := w.Registry.Snake(id)
		interp := &snake.Interpolation
		if !snake.Body.Alive {
			interp.Alpha = 1
			continue
		}
		interp.Alpha, interp.Wrap = Interpolate(
			snake.Position.Prev(), snake.Position.Point(),
			interp.ElapsedMs, snake.Velocity.Speed,
			w.Board.Width(), w.Board.Height(), w.Rules.WrapMode(),
		)
	}
}

// SegmentWrap flags wrapped axes for one tail segment
func SegmentWrap(seg component.Segment, width, height int, wrapMode bool) component.WrapAxis {
	if !wrapMode {
		return component.WrapNone
	}
	wrap := component.WrapNone
	if jumpsSpan(seg.PrevX, seg.X, width) {
		wrap |= component.WrapX
	}
	if jumpsSpan(seg.PrevY, seg.Y, height) {
		wrap |= component.WrapY
	}
	return wrap
}
