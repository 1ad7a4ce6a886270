package system

import (
	"sync/atomic"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
)

// InputSystem moves steering requests into each snake's input buffer
// Invalid, repeated and reversing requests are dropped here
type InputSystem struct {
	world *engine.World

	statAccepted *atomic.Int64
	statRejected *atomic.Int64
}

func NewInputSystem(world *engine.World) *InputSystem {
	return &InputSystem{
		world:        world,
		statAccepted: world.Resources.Status.Ints.Get("input.accepted"),
		statRejected: world.Resources.Status.Ints.Get("input.rejected"),
	}
}

func (s *InputSystem) Name() string {
	return "input"
}

func (s *InputSystem) Priority() int {
	return parameter.PriorityInput
}

func (s *InputSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventDirectionRequest}
}

func (s *InputSystem) HandleEvent(ev event.GameEvent) {
	payload, ok := ev.Payload.(*event.DirectionRequestPayload)
	if !ok {
		return
	}
	if payload.Snake != 0 {
		s.Request(payload.Snake, payload.Direction)
		return
	}
	for _, id := range s.world.Registry.Snakes() {
		s.Request(id, payload.Direction)
	}
}

// Request buffers d for snake id; returns false when rejected
func (s *InputSystem) Request(id core.Entity, d core.Direction) bool {
	snake, ok := s.world.Registry.Snake(id)
	if !ok || !snake.Body.Alive {
		s.statRejected.Add(1)
		return false
	}
	if !snake.Input.Push(d, snake.Velocity.Direction()) {
		s.statRejected.Add(1)
		return false
	}
	s.statAccepted.Add(1)
	return true
}

func (s *InputSystem) Update() {}
