package event

import "github.com/lixenwraith/gridsnake/parameter"

// EventQueue is a FIFO of game events owned by the tick goroutine
// Not safe for concurrent producers; hosts hand input to the tick goroutine over channels
type EventQueue struct {
	events []GameEvent
}

func NewEventQueue() *EventQueue {
	return &EventQueue{events: make([]GameEvent, 0, parameter.EventQueueSize)}
}

// Push appends an event
func (eq *EventQueue) Push(ev GameEvent) {
	eq.events = append(eq.events, ev)
}

// Consume returns all pending events in FIFO order and empties the queue
func (eq *EventQueue) Consume() []GameEvent {
	if len(eq.events) == 0 {
		return nil
	}
	out := eq.events
	eq.events = make([]GameEvent, 0, max(parameter.EventQueueSize, len(out)))
	return out
}

// Len returns pending event count
func (eq *EventQueue) Len() int {
	return len(eq.events)
}

// Clear drops pending events
func (eq *EventQueue) Clear() {
	eq.events = eq.events[:0]
}
