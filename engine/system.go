package engine

import "github.com/lixenwraith/gridsnake/event"

// System is one stage of the fixed-step tick
type System interface {
	Name() string
	Priority() int // Lower values run first
	Update()
}

// Pausable marks systems the scheduler skips while the game is paused
type Pausable interface {
	Pausable() bool
}

// EventHandler processes specific event types
type EventHandler interface {
	// HandleEvent processes a single event
	// Called synchronously during the dispatch phase
	HandleEvent(ev event.GameEvent)

	// EventTypes returns the event types this handler processes
	EventTypes() []event.EventType
}

// IsPausable reports whether s opts into pause skipping
func IsPausable(s System) bool {
	p, ok := s.(Pausable)
	return ok && p.Pausable()
}
