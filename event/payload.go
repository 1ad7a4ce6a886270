package event

import (
	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/parameter"
)

// DeathCause names what killed a snake
type DeathCause string

const (
	CauseWall       DeathCause = "wall"
	CauseSelfBite   DeathCause = "self_bite"
	CauseObstacle   DeathCause = "obstacle"
	CauseStarvation DeathCause = "starvation"
)

// FoodEatenPayload is emitted once per eaten food; the food entity is already removed
type FoodEatenPayload struct {
	Snake    core.Entity
	Food     core.Entity
	Position core.Point
	Edible   component.EdibleComponent
	NewSpeed float64
}

// SnakeDiedPayload carries the fatal cause and the head cell at death
type SnakeDiedPayload struct {
	Snake    core.Entity
	Cause    DeathCause
	Position core.Point
}

// FoodSpawnedPayload identifies a freshly placed food
type FoodSpawnedPayload struct {
	Food     core.Entity
	Position core.Point
	Kind     component.FruitKind
}

// ObstaclesRequestPayload asks for placement around Start
// Count < 0 derives the count from Difficulty
type ObstaclesRequestPayload struct {
	Difficulty parameter.Difficulty
	Count      int
	Start      core.Point
}

// ObstaclesPlacedPayload reports how many obstacles were requested and placed
type ObstaclesPlacedPayload struct {
	Requested int
	Placed    int
}

// DirectionRequestPayload steers one snake; Snake 0 targets every snake
type DirectionRequestPayload struct {
	Snake     core.Entity
	Direction core.Direction
}
