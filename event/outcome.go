package event

import (
	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
)

// OutcomeKind discriminates collision results
type OutcomeKind uint8

const (
	OutcomeNone OutcomeKind = iota
	OutcomeFoodEaten
	OutcomeDied
)

func (k OutcomeKind) String() string {
	switch k {
	case OutcomeNone:
		return "none"
	case OutcomeFoodEaten:
		return "food_eaten"
	case OutcomeDied:
		return "died"
	}
	return "unknown"
}

// Outcome is the per-snake collision result; fields beyond Kind are set per variant
type Outcome struct {
	Kind     OutcomeKind
	Snake    core.Entity
	Position core.Point

	// OutcomeFoodEaten
	Food     core.Entity
	Edible   component.EdibleComponent
	NewSpeed float64

	// OutcomeDied
	Cause DeathCause
}

// NoOutcome is the zero collision result
func NoOutcome(snake core.Entity) Outcome {
	return Outcome{Kind: OutcomeNone, Snake: snake}
}

func FoodEaten(snake, food core.Entity, pos core.Point, edible component.EdibleComponent, newSpeed float64) Outcome {
	return Outcome{
		Kind:     OutcomeFoodEaten,
		Snake:    snake,
		Food:     food,
		Position: pos,
		Edible:   edible,
		NewSpeed: newSpeed,
	}
}

func Died(snake core.Entity, pos core.Point, cause DeathCause) Outcome {
	return Outcome{Kind: OutcomeDied, Snake: snake, Position: pos, Cause: cause}
}

// Fatal reports whether the outcome ends the snake
func (o Outcome) Fatal() bool {
	return o.Kind == OutcomeDied
}

// Event converts the outcome into the event dispatched to handlers
// Returns false for OutcomeNone
func (o Outcome) Event() (GameEvent, bool) {
	switch o.Kind {
	case OutcomeFoodEaten:
		return GameEvent{Type: EventFoodEaten, Payload: &FoodEatenPayload{
			Snake:    o.Snake,
			Food:     o.Food,
			Position: o.Position,
			Edible:   o.Edible,
			NewSpeed: o.NewSpeed,
		}}, true
	case OutcomeDied:
		return GameEvent{Type: EventSnakeDied, Payload: &SnakeDiedPayload{
			Snake:    o.Snake,
			Cause:    o.Cause,
			Position: o.Position,
		}}, true
	}
	return GameEvent{}, false
}
