package system

import (
	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/status"
)

// HungerSystem counts down the starvation timer of snakes carrying HungerComponent
// Budget is parameter.HungerBudget / speed seconds, so faster snakes must eat sooner
type HungerSystem struct {
	world *engine.World

	statRatio *status.AtomicFloat
}

func NewHungerSystem(world *engine.World) *HungerSystem {
	return &HungerSystem{
		world:     world,
		statRatio: world.Resources.Status.Floats.Get("hunger.ratio"),
	}
}

func (s *HungerSystem) Name() string {
	return "hunger"
}

func (s *HungerSystem) Priority() int {
	return parameter.PriorityHunger
}

func (s *HungerSystem) Pausable() bool {
	return true
}

func (s *HungerSystem) Update() {
	ids := s.world.Registry.Query().
		OfKind(engine.KindSnake).
		With(component.MaskHunger).
		Execute()

	for _, id := range ids {
		snake, _ := s.world.Registry.Snake(id)
		if !snake.Body.Alive || s.world.HasFatalOutcome(id) {
			continue
		}
		h := snake.Hunger
		if h.MaxMs <= 0 {
			continue
		}
		if snake.Velocity.Speed > 0 {
			h.MaxMs = parameter.HungerBudget / snake.Velocity.Speed * 1000
		}
		h.RemainingMs = min(h.RemainingMs, h.MaxMs)
		// Lifecycle refills the timer when the eat event dispatches at the end of the tick
		if s.world.AteThisTick(id) {
			s.statRatio.Store(1)
			continue
		}
		h.RemainingMs -= s.world.DeltaMs
		if h.RemainingMs <= 0 {
			h.RemainingMs = 0
			s.world.RecordOutcome(event.Died(id, snake.Head(), event.CauseStarvation))
		}
		s.statRatio.Store(h.Ratio())
	}
}
