package snapshot

import (
	"io"
	"log"
	"reflect"
	"testing"

	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/game"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/settings"
)

func newGame(t *testing.T) *game.Game {
	t.Helper()
	s := settings.Default()
	s.Seed = 7
	s.NumberOfFood = 3
	s.ObstacleDifficulty = parameter.DifficultyEasy
	g, err := game.New(s, log.New(io.Discard, "", 0))
	if err != nil {
		t.Fatalf("game.New failed: %v", err)
	}
	return g
}

func TestCaptureMirrorsWorld(t *testing.T) {
	g := newGame(t)
	// Heading right keeps the snake inside the obstacle-free band around the start
	for i := 0; i < 3; i++ {
		g.Tick(250)
	}
	w := g.World()
	entities := w.Registry.Count()

	s := Capture(w)
	if w.Registry.Count() != entities {
		t.Errorf("Expected capture not to mutate the registry")
	}
	if s.Width != 16 || s.Height != 16 || len(s.Tiles) != 256 {
		t.Errorf("Expected 16x16 grid, got %dx%d with %d tiles", s.Width, s.Height, len(s.Tiles))
	}
	if s.Tick != w.Resources.State.Tick {
		t.Errorf("Expected tick %d, got %d", w.Resources.State.Tick, s.Tick)
	}
	if len(s.Snakes) != 1 || len(s.Foods) != 3 {
		t.Fatalf("Expected 1 snake and 3 food, got %d and %d", len(s.Snakes), len(s.Foods))
	}
	if len(s.Obstacles) != w.Registry.CountByKind(engine.KindObstacle) {
		t.Errorf("Expected %d obstacles, got %d", w.Registry.CountByKind(engine.KindObstacle), len(s.Obstacles))
	}

	head := g.Snake().Head()
	sn := s.Snakes[0]
	if sn.Head != (Cell{X: head.X, Y: head.Y}) || !sn.Alive {
		t.Errorf("Expected live head at %v, got %+v", head, sn.Head)
	}
	if s.Tile(head.X, head.Y) != engine.TileSnakeHead {
		t.Errorf("Expected head tile, got %v", s.Tile(head.X, head.Y))
	}
	if s.Tile(-1, 0) != engine.TileEmpty {
		t.Errorf("Expected empty off the board")
	}
}

func TestEncodeDecode(t *testing.T) {
	g := newGame(t)
	g.Tick(250)
	s := Capture(g.World())

	data, err := Encode(s)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !reflect.DeepEqual(s, back) {
		t.Errorf("Expected decoded snapshot to match, got %+v", back)
	}

	if _, err := Decode([]byte{0xc1}); err == nil {
		t.Errorf("Expected error on garbage input")
	}
}
