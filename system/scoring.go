package system

import (
	"sync/atomic"

	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
)

// ScoringSystem adds food points to the round score and tracks the high score
// The high score survives EventGameReset; only the current score is zeroed
type ScoringSystem struct {
	world *engine.World

	statScore *atomic.Int64
	statHigh  *atomic.Int64
}

func NewScoringSystem(world *engine.World) *ScoringSystem {
	return &ScoringSystem{
		world:     world,
		statScore: world.Resources.Status.Ints.Get("score.current"),
		statHigh:  world.Resources.Status.Ints.Get("score.high"),
	}
}

func (s *ScoringSystem) Name() string {
	return "scoring"
}

func (s *ScoringSystem) Priority() int {
	return parameter.PriorityScoring
}

func (s *ScoringSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventFoodEaten, event.EventGameReset}
}

func (s *ScoringSystem) HandleEvent(ev event.GameEvent) {
	state := &s.world.Resources.State
	switch ev.Type {
	case event.EventFoodEaten:
		p, ok := ev.Payload.(*event.FoodEatenPayload)
		if !ok {
			return
		}
		s.Add(p.Edible.Points)
	case event.EventGameReset:
		state.Score = 0
		s.statScore.Store(0)
	}
}

// Add credits points and raises the high score when exceeded
func (s *ScoringSystem) Add(points int) {
	state := &s.world.Resources.State
	state.Score += points
	if state.Score > state.HighScore {
		state.HighScore = state.Score
	}
	s.statScore.Store(int64(state.Score))
	s.statHigh.Store(int64(state.HighScore))
}

func (s *ScoringSystem) Update() {}
