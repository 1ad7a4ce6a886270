package parameter

import "time"

// Game Loop Timing
const (
	// TickInterval is the fixed simulation step driven by hosts (~60 Hz)
	TickInterval = 16 * time.Millisecond

	// MaxTickDeltaMs caps a single step after host stalls (debugger, suspend)
	MaxTickDeltaMs = 250.0
)

// ECS Limits
const (
	// EventQueueSize is the soft capacity hint for the per-tick event queue
	EventQueueSize = 64

	// EventDispatchRounds bounds handler-emitted event cascades per tick
	EventDispatchRounds = 4
)
