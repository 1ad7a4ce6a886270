package system

import (
	"sync/atomic"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/status"
)

// LifecycleSystem applies collision and starvation outcomes to snakes and round state
type LifecycleSystem struct {
	world *engine.World

	statLength *atomic.Int64
	statSpeed  *status.AtomicFloat
	statOver   *atomic.Bool
}

func NewLifecycleSystem(world *engine.World) *LifecycleSystem {
	return &LifecycleSystem{
		world:      world,
		statLength: world.Resources.Status.Ints.Get("snake.length"),
		statSpeed:  world.Resources.Status.Floats.Get("snake.speed"),
		statOver:   world.Resources.Status.Bools.Get("game.over"),
	}
}

func (s *LifecycleSystem) Name() string {
	return "lifecycle"
}

func (s *LifecycleSystem) Priority() int {
	return parameter.PriorityLifecycle
}

func (s *LifecycleSystem) EventTypes() []event.EventType {
	return []event.EventType{
		event.EventFoodEaten,
		event.EventSnakeDied,
		event.EventGameReset,
	}
}

func (s *LifecycleSystem) HandleEvent(ev event.GameEvent) {
	switch ev.Type {
	case event.EventFoodEaten:
		if p, ok := ev.Payload.(*event.FoodEatenPayload); ok {
			s.grow(p)
		}
	case event.EventSnakeDied:
		if p, ok := ev.Payload.(*event.SnakeDiedPayload); ok {
			s.kill(p)
		}
	case event.EventGameReset:
		s.statOver.Store(false)
	}
}

func (s *LifecycleSystem) grow(p *event.FoodEatenPayload) {
	snake, ok := s.world.Registry.Snake(p.Snake)
	if !ok || !snake.Body.Alive {
		return
	}
	snake.Body.Size += p.Edible.Growth
	snake.Body.GrowthPending += p.Edible.Growth
	snake.Velocity.Speed = p.NewSpeed
	if snake.Hunger != nil {
		snake.Hunger.Reset()
	}
	s.statLength.Store(int64(snake.Body.Size))
	s.statSpeed.Store(snake.Velocity.Speed)
}

func (s *LifecycleSystem) kill(p *event.SnakeDiedPayload) {
	snake, ok := s.world.Registry.Snake(p.Snake)
	if !ok || !snake.Body.Alive {
		return
	}
	snake.Body.Alive = false
	snake.Input.Clear()
	snake.Interpolation.Alpha = 1
	snake.Renderable.Color = core.MustHex(parameter.ColorDeadHead)

	state := &s.world.Resources.State
	state.DeathCause = p.Cause
	if s.livingSnakes() == 0 {
		state.GameOver = true
		s.statOver.Store(true)
	}
	s.world.Logger().Printf("snake %d died: %s at %v", p.Snake, p.Cause, p.Position)
}

func (s *LifecycleSystem) livingSnakes() int {
	n := 0
	for _, id := range s.world.Registry.Snakes() {
		if snake, _ := s.world.Registry.Snake(id); snake.Body.Alive {
			n++
		}
	}
	return n
}

func (s *LifecycleSystem) Update() {}
