package event

// EventType represents the type of game event
type EventType int

const (
	// EventFoodEaten reports a snake head entering a food cell
	// Trigger: CollisionSystem
	// Consumer: LifecycleSystem, ScoringSystem, AudioSystem | Payload: *FoodEatenPayload
	EventFoodEaten EventType = iota

	// EventSnakeDied reports a fatal collision or starvation
	// Trigger: CollisionSystem, HungerSystem
	// Consumer: LifecycleSystem, AudioSystem | Payload: *SnakeDiedPayload
	EventSnakeDied

	// EventFoodSpawned reports a new food entity
	// Trigger: SpawnSystem
	// Consumer: hosts (telemetry) | Payload: *FoodSpawnedPayload
	EventFoodSpawned

	// EventObstaclesRequest asks for a fresh obstacle field
	// Trigger: Game.Reset
	// Consumer: ObstacleSystem | Payload: *ObstaclesRequestPayload
	EventObstaclesRequest

	// EventObstaclesPlaced reports a completed placement
	// Trigger: ObstacleSystem
	// Consumer: ValidationSystem, hosts | Payload: *ObstaclesPlacedPayload
	EventObstaclesPlaced

	// EventDirectionRequest carries a player steering request
	// Trigger: Game.SetDirection, server sessions
	// Consumer: InputSystem | Payload: *DirectionRequestPayload
	EventDirectionRequest

	// EventGameReset signals systems to drop per-round state
	// Trigger: Game.Reset
	// Consumer: LifecycleSystem, ScoringSystem | Payload: nil
	EventGameReset
)

var typeNames = map[EventType]string{
	EventFoodEaten:        "food_eaten",
	EventSnakeDied:        "snake_died",
	EventFoodSpawned:      "food_spawned",
	EventObstaclesRequest: "obstacles_request",
	EventObstaclesPlaced:  "obstacles_placed",
	EventDirectionRequest: "direction_request",
	EventGameReset:        "game_reset",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "unknown"
}

// GameEvent is a typed event with an optional payload
type GameEvent struct {
	Type    EventType
	Payload any
}
