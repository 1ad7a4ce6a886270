package system

import (
	"math/rand"
	"testing"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
)

func TestObstacleMediumScenario(t *testing.T) {
	w := newTestWorld(t, 20, 20)
	s := NewObstacleSystem(w, rand.New(rand.NewSource(42)), DefaultObstacleConfig())

	ids := s.GenerateByDifficulty(parameter.DifficultyMedium, core.Point{X: 0, Y: 0})
	if len(ids) != 24 {
		t.Fatalf("Expected 24 obstacles, got %d", len(ids))
	}
	if got := FloodFill(20, 20, BlockedGrid(w), core.Point{X: 0, Y: 0}); got != 376 {
		t.Errorf("Expected flood fill to visit 376 cells, got %d", got)
	}
}

func TestObstacleConnectivityAcrossSeeds(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		w := newTestWorld(t, 16, 16)
		start := core.Point{X: 8, Y: 8}
		s := NewObstacleSystem(w, rand.New(rand.NewSource(seed)), DefaultObstacleConfig())
		ids := s.GenerateByDifficulty(parameter.DifficultyImpossible, start)

		total := w.Board.TotalCells()
		if got := FloodFill(16, 16, BlockedGrid(w), start); got != total-len(ids) {
			t.Errorf("Seed %d: expected %d reachable cells, got %d", seed, total-len(ids), got)
		}
		assertNoTraps(t, w, seed)
		assertSafeZone(t, w, start, seed)
	}
}

func assertNoTraps(t *testing.T, w *engine.World, seed int64) {
	t.Helper()
	b := w.Board
	blocked := BlockedGrid(w)
	isBlocked := func(p core.Point) bool {
		return !b.InBounds(p.X, p.Y) || blocked[p.Y*b.Width()+p.X]
	}
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			p := core.Point{X: x, Y: y}
			if isBlocked(p) {
				continue
			}
			sides := 0
			for _, d := range neighbors {
				if isBlocked(p.Add(d)) {
					sides++
				}
			}
			if sides >= parameter.ObstacleTrapSides {
				t.Errorf("Seed %d: free cell %v has %d blocked sides", seed, p, sides)
			}
		}
	}
}

func assertSafeZone(t *testing.T, w *engine.World, start core.Point, seed int64) {
	t.Helper()
	for _, id := range w.Registry.Obstacles() {
		o, _ := w.Registry.Obstacle(id)
		dx, dy := abs(o.Position.X-start.X), abs(o.Position.Y-start.Y)
		if dx < parameter.ObstacleSafeZoneWidth && dy < parameter.ObstacleSafeZoneHeight {
			t.Errorf("Seed %d: obstacle %v inside safe zone", seed, o.Position.Point())
		}
	}
}

func TestObstacleDeterministic(t *testing.T) {
	place := func() []core.Point {
		w := newTestWorld(t, 20, 20)
		s := NewObstacleSystem(w, rand.New(rand.NewSource(7)), DefaultObstacleConfig())
		return s.Place(30, core.Point{X: 10, Y: 10})
	}
	a, b := place(), place()
	if len(a) != len(b) {
		t.Fatalf("Expected equal lengths, got %d and %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Expected identical placement at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestObstacleZeroCount(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	s := NewObstacleSystem(w, rand.New(rand.NewSource(1)), DefaultObstacleConfig())
	if ids := s.GenerateByDifficulty(parameter.DifficultyNone, core.Point{X: 5, Y: 5}); len(ids) != 0 {
		t.Errorf("Expected no obstacles, got %d", len(ids))
	}
}

func TestObstacleImpossiblePlacementIsEmpty(t *testing.T) {
	w := newTestWorld(t, 2, 1)
	cfg := ObstacleConfig{MaxRetries: 5, SafeZoneWidth: 1, SafeZoneHeight: 1}
	s := NewObstacleSystem(w, rand.New(rand.NewSource(1)), cfg)

	if ids := s.Generate(1, core.Point{X: 0, Y: 0}); len(ids) != 0 {
		t.Errorf("Expected empty placement, got %d", len(ids))
	}
	if w.Registry.Count() != 0 {
		t.Errorf("Expected no entities created, got %d", w.Registry.Count())
	}
}

func TestObstacleReducedCount(t *testing.T) {
	w := newTestWorld(t, 5, 5)
	cfg := ObstacleConfig{MaxRetries: 3, SafeZoneWidth: 1, SafeZoneHeight: 1}
	s := NewObstacleSystem(w, rand.New(rand.NewSource(3)), cfg)

	start := core.Point{X: 2, Y: 2}
	ids := s.Generate(20, start)
	if len(ids) == 0 || len(ids) >= 20 {
		t.Fatalf("Expected a reduced non-empty placement, got %d", len(ids))
	}
	if got := FloodFill(5, 5, BlockedGrid(w), start); got != 25-len(ids) {
		t.Errorf("Expected %d reachable, got %d", 25-len(ids), got)
	}
}

func TestObstacleAvoidsOccupiedCells(t *testing.T) {
	w := newTestWorld(t, 12, 12)
	food := core.Point{X: 11, Y: 11}
	addFood(w, food, 1, 1.1)
	s := NewObstacleSystem(w, rand.New(rand.NewSource(9)), DefaultObstacleConfig())
	s.Generate(20, core.Point{X: 0, Y: 0})

	for _, id := range w.Registry.Obstacles() {
		o, _ := w.Registry.Obstacle(id)
		if o.Position.Point() == food {
			t.Errorf("Expected no obstacle on food cell %v", food)
		}
	}
}

func TestObstacleRequestEventReplacesField(t *testing.T) {
	w := newTestWorld(t, 20, 20)
	s := NewObstacleSystem(w, rand.New(rand.NewSource(5)), DefaultObstacleConfig())
	w.AddSystem(s)
	start := core.Point{X: 10, Y: 10}

	w.PushEvent(event.EventObstaclesRequest, &event.ObstaclesRequestPayload{Difficulty: parameter.DifficultyHard, Count: -1, Start: start})
	w.Update(16)
	if got := w.Registry.CountByKind(engine.KindObstacle); got != 40 {
		t.Fatalf("Expected 40 obstacles for Hard, got %d", got)
	}

	w.PushEvent(event.EventObstaclesRequest, &event.ObstaclesRequestPayload{Difficulty: parameter.DifficultyEasy, Count: -1, Start: start})
	w.Update(16)
	if got := w.Registry.CountByKind(engine.KindObstacle); got != 16 {
		t.Errorf("Expected previous field replaced by 16, got %d", got)
	}
}
