package system

import (
	"sync/atomic"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
)

// CollisionSystem resolves the head cell of every living snake
// Check order: wall, self-bite, obstacle, food; the first fatal match ends the check
type CollisionSystem struct {
	world *engine.World

	statEaten  *atomic.Int64
	statDeaths *atomic.Int64
}

func NewCollisionSystem(world *engine.World) *CollisionSystem {
	return &CollisionSystem{
		world:      world,
		statEaten:  world.Resources.Status.Ints.Get("collision.eaten"),
		statDeaths: world.Resources.Status.Ints.Get("collision.deaths"),
	}
}

func (s *CollisionSystem) Name() string {
	return "collision"
}

func (s *CollisionSystem) Priority() int {
	return parameter.PriorityCollision
}

func (s *CollisionSystem) Pausable() bool {
	return true
}

func (s *CollisionSystem) Update() {
	for _, id := range s.world.Registry.Snakes() {
		snake, _ := s.world.Registry.Snake(id)
		if !snake.Body.Alive {
			continue
		}

		o := s.Detect(id, snake)
		switch o.Kind {
		case event.OutcomeNone:
			continue
		case event.OutcomeFoodEaten:
			s.world.Registry.Remove(o.Food)
			s.statEaten.Add(1)
		case event.OutcomeDied:
			s.statDeaths.Add(1)
		}
		s.world.RecordOutcome(o)
	}
}

// Detect classifies the snake's current head cell without mutating the world
func (s *CollisionSystem) Detect(id core.Entity, snake *engine.Snake) event.Outcome {
	w := s.world
	head := snake.Head()

	if !w.Rules.WrapMode() && !w.Board.InBounds(head.X, head.Y) {
		return event.Died(id, head, event.CauseWall)
	}

	if snake.Body.Occupies(head) {
		return event.Died(id, head, event.CauseSelfBite)
	}

	for _, oid := range w.Registry.Obstacles() {
		obstacle, _ := w.Registry.Obstacle(oid)
		if obstacle.Position.Point() == head {
			return event.Died(id, head, event.CauseObstacle)
		}
	}

	for _, fid := range w.Registry.Foods() {
		food, _ := w.Registry.Food(fid)
		if food.Position.Point() != head {
			continue
		}
		newSpeed := NextSpeed(snake.Velocity.Speed, food.Edible.SpeedMultiplier, w.Rules.MaxSpeed)
		return event.FoodEaten(id, fid, head, food.Edible, newSpeed)
	}

	return event.NoOutcome(id)
}

// NextSpeed applies a fruit multiplier capped at maxSpeed and floored at parameter.SpeedFloor
func NextSpeed(current, multiplier, maxSpeed float64) float64 {
	if multiplier <= 0 {
		multiplier = 1
	}
	next := current * multiplier
	if maxSpeed > 0 {
		next = min(next, maxSpeed)
	}
	if next < parameter.SpeedFloor && multiplier < 1 {
		next = min(parameter.SpeedFloor, current)
	}
	return next
}
