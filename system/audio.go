package system

import (
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
)

// AudioSystem turns gameplay events into sound effect ids on the world audio queue
type AudioSystem struct {
	world *engine.World
}

func NewAudioSystem(world *engine.World) *AudioSystem {
	return &AudioSystem{world: world}
}

func (s *AudioSystem) Name() string {
	return "audio"
}

func (s *AudioSystem) Priority() int {
	return parameter.PriorityAudio
}

func (s *AudioSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventFoodEaten, event.EventSnakeDied}
}

func (s *AudioSystem) HandleEvent(ev event.GameEvent) {
	if !s.world.Rules.SoundEffects {
		return
	}
	switch ev.Type {
	case event.EventFoodEaten:
		s.world.Resources.Audio.Push(parameter.SoundEat)
	case event.EventSnakeDied:
		s.world.Resources.Audio.Push(parameter.SoundDeath)
	}
}

func (s *AudioSystem) Update() {}
