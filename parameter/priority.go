package parameter

// System Execution Priorities (lower runs first)
const (
	PriorityInput         = 10
	PriorityMovement      = 20
	PriorityCollision     = 30 // After movement, sees the new head cell
	PriorityLifecycle     = 35 // Event-driven, applies collision outcomes
	PriorityScoring       = 36
	PriorityHunger        = 40
	PrioritySpawn         = 50 // After collision removed eaten food
	PriorityObstacle      = 60
	PriorityBoardSync     = 80 // After all entity mutation
	PriorityInterpolation = 90
	PriorityAudio         = 95
	PriorityValidation    = 1000 // After all others, read-only checks
)
