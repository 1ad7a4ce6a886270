package system

import (
	"sync/atomic"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/parameter"
)

// MovementSystem advances snakes one cell per move interval
// The per-snake timer lives in InterpolationComponent.ElapsedMs and resets to zero on each step
type MovementSystem struct {
	world *engine.World

	statSteps *atomic.Int64
}

func NewMovementSystem(world *engine.World) *MovementSystem {
	return &MovementSystem{
		world:     world,
		statSteps: world.Resources.Status.Ints.Get("movement.steps"),
	}
}

func (s *MovementSystem) Name() string {
	return "movement"
}

func (s *MovementSystem) Priority() int {
	return parameter.PriorityMovement
}

func (s *MovementSystem) Pausable() bool {
	return true
}

func (s *MovementSystem) Update() {
	dt := s.world.DeltaMs
	for _, id := range s.world.Registry.Snakes() {
		snake, _ := s.world.Registry.Snake(id)
		if !snake.Body.Alive {
			continue
		}

		interval := snake.Velocity.MoveIntervalMs()
		if interval <= 0 {
			continue
		}

		snake.Interpolation.ElapsedMs += dt
		if snake.Interpolation.ElapsedMs < interval {
			continue
		}
		snake.Interpolation.ElapsedMs = 0

		s.applyBufferedDirection(snake)
		if snake.Velocity.Direction().IsZero() {
			continue
		}
		s.step(snake)
		s.statSteps.Add(1)
	}
}

// applyBufferedDirection consumes queued requests until one is legal against the current heading
func (s *MovementSystem) applyBufferedDirection(snake *engine.Snake) {
	current := snake.Velocity.Direction()
	for {
		d, ok := snake.Input.Pop()
		if !ok {
			return
		}
		if !d.IsValid() || d.Reverses(current) {
			continue
		}
		snake.Velocity.SetDirection(d)
		return
	}
}

func (s *MovementSystem) step(snake *engine.Snake) {
	oldHead := snake.Head()
	body := &snake.Body

	// Cell freed by the tail, where grown segments appear
	vacated := oldHead
	if n := len(body.Segments); n > 0 {
		vacated = body.Segments[n-1].Point()
	}

	// Shift tail to head so no position is overwritten before it is read
	for i := len(body.Segments) - 1; i >= 0; i-- {
		seg := &body.Segments[i]
		seg.PrevX, seg.PrevY = seg.X, seg.Y
		if i == 0 {
			seg.X, seg.Y = oldHead.X, oldHead.Y
		} else {
			seg.X, seg.Y = body.Segments[i-1].X, body.Segments[i-1].Y
		}
	}

	want := body.ExpectedSegments()
	if len(body.Segments) > want {
		body.Segments = body.Segments[:want]
	}
	added := 0
	for len(body.Segments) < want {
		body.Segments = append(body.Segments, component.Segment{
			X: vacated.X, Y: vacated.Y,
			PrevX: vacated.X, PrevY: vacated.Y,
		})
		added++
	}
	body.GrowthPending = max(0, body.GrowthPending-added)

	next := oldHead.Add(snake.Velocity.Direction())
	if s.world.Rules.WrapMode() {
		next = next.Wrap(s.world.Board.Width(), s.world.Board.Height())
	}
	snake.Position.MoveTo(next)

	snake.Interpolation.Alpha = 0
	snake.Interpolation.Wrap = component.WrapNone
}

// Step forces one grid step regardless of the timer
func (s *MovementSystem) Step(id core.Entity) bool {
	snake, ok := s.world.Registry.Snake(id)
	if !ok || !snake.Body.Alive {
		return false
	}
	s.applyBufferedDirection(snake)
	if snake.Velocity.Direction().IsZero() {
		return false
	}
	snake.Interpolation.ElapsedMs = 0
	s.step(snake)
	s.statSteps.Add(1)
	return true
}
