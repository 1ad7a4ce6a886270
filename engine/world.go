package engine

import (
	"log"
	"sort"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
)

// World owns the board, the entity registry and the per-tick context
// It is driven by a single goroutine; nothing here is synchronized
type World struct {
	Board     *Board
	Registry  *Registry
	Resources *Resources
	Rules     Rules

	// DeltaMs is the elapsed time of the tick being processed
	DeltaMs float64

	// Render centering offsets in pixels
	OffsetX, OffsetY int

	events   *event.EventQueue
	router   *EventRouter
	systems  []System
	outcomes []event.Outcome
	logger   *log.Logger
}

// NewWorld creates an empty world over board
func NewWorld(board *Board, rules Rules) *World {
	q := event.NewEventQueue()
	return &World{
		Board:     board,
		Registry:  NewRegistry(),
		Resources: newResources(rules),
		Rules:     rules,
		events:    q,
		router:    NewEventRouter(q),
		logger:    log.Default(),
	}
}

// ReplaceBoard swaps in a new board wholesale
// Entities are kept; callers regenerate them when dimensions change, as Game.Reconfigure does
func (w *World) ReplaceBoard(b *Board) {
	w.Board = b
}

// CenterIn computes render offsets that center the board in a viewW x viewH pixel view
func (w *World) CenterIn(viewW, viewH int) {
	cs := w.Board.CellSize()
	w.OffsetX = max(0, (viewW-w.Board.Width()*cs)/2)
	w.OffsetY = max(0, (viewH-w.Board.Height()*cs)/2)
}

func (w *World) Logger() *log.Logger {
	return w.logger
}

// SetLogger replaces the world logger; nil restores log.Default()
func (w *World) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.Default()
	}
	w.logger = l
}

// AddSystem adds a system and keeps the list sorted by priority
// Systems implementing EventHandler are registered with the router
func (w *World) AddSystem(s System) {
	w.systems = append(w.systems, s)
	sort.SliceStable(w.systems, func(i, j int) bool {
		return w.systems[i].Priority() < w.systems[j].Priority()
	})
	if h, ok := s.(EventHandler); ok {
		w.router.Register(h)
	}
}

// Systems returns a copy of registered systems in execution order
func (w *World) Systems() []System {
	out := make([]System, len(w.systems))
	copy(out, w.systems)
	return out
}

// System finds a registered system by name
func (w *World) System(name string) (System, bool) {
	for _, s := range w.systems {
		if s.Name() == name {
			return s, true
		}
	}
	return nil, false
}

// PushEvent queues an event for the next dispatch phase
func (w *World) PushEvent(t event.EventType, payload any) {
	w.events.Push(event.GameEvent{Type: t, Payload: payload})
}

// RecordOutcome stores a collision result for the current tick and queues its event
func (w *World) RecordOutcome(o event.Outcome) {
	w.outcomes = append(w.outcomes, o)
	if ev, ok := o.Event(); ok {
		w.events.Push(ev)
	}
}

// HasFatalOutcome reports whether snake id already died this tick
func (w *World) HasFatalOutcome(id core.Entity) bool {
	for _, o := range w.outcomes {
		if o.Snake == id && o.Fatal() {
			return true
		}
	}
	return false
}

// AteThisTick reports whether snake id already ate this tick
func (w *World) AteThisTick(id core.Entity) bool {
	for _, o := range w.outcomes {
		if o.Snake == id && o.Kind == event.OutcomeFoodEaten {
			return true
		}
	}
	return false
}

// PendingEvents returns the number of undispatched events
func (w *World) PendingEvents() int {
	return w.events.Len()
}

// DispatchEvents routes queued events to handlers immediately
func (w *World) DispatchEvents() int {
	return w.router.DispatchAll(parameter.EventDispatchRounds)
}
