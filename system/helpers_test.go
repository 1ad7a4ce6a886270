package system

import (
	"io"
	"log"
	"testing"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
)

func newTestWorld(t *testing.T, width, height int) *engine.World {
	t.Helper()
	b, err := engine.NewBoard(width, height, 10)
	if err != nil {
		t.Fatalf("NewBoard failed: %v", err)
	}
	w := engine.NewWorld(b, engine.DefaultRules(width, height))
	w.SetLogger(log.New(io.Discard, "", 0))
	return w
}

func addSnake(t *testing.T, w *engine.World, head core.Point, dir core.Direction, speed float64, segments ...core.Point) (core.Entity, *engine.Snake) {
	t.Helper()
	s := &engine.Snake{
		Position: component.NewPosition(head.X, head.Y),
		Velocity: component.VelocityComponent{DX: dir.DX, DY: dir.DY, Speed: speed},
		Body: component.SnakeBodyComponent{
			Size:  len(segments) + 1,
			Alive: true,
		},
	}
	for _, p := range segments {
		s.Body.Segments = append(s.Body.Segments, component.Segment{X: p.X, Y: p.Y, PrevX: p.X, PrevY: p.Y})
	}
	return w.Registry.Add(s), s
}

func addFood(w *engine.World, p core.Point, growth int, mult float64) core.Entity {
	return w.Registry.Add(&engine.Food{
		Position: component.NewPosition(p.X, p.Y),
		Edible:   component.EdibleComponent{Points: 10, Growth: growth, SpeedMultiplier: mult},
	})
}

func addObstacle(w *engine.World, p core.Point) core.Entity {
	return w.Registry.Add(&engine.Obstacle{Position: component.NewPosition(p.X, p.Y)})
}

// addGameplay registers the systems a host game uses, minus random ones
func addGameplay(w *engine.World) {
	w.AddSystem(NewInputSystem(w))
	w.AddSystem(NewMovementSystem(w))
	w.AddSystem(NewCollisionSystem(w))
	w.AddSystem(NewLifecycleSystem(w))
	w.AddSystem(NewScoringSystem(w))
	w.AddSystem(NewAudioSystem(w))
	w.AddSystem(NewBoardSyncSystem(w))
	w.AddSystem(NewInterpolationSystem(w))
}
