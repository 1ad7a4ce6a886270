package system

import (
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/parameter"
)

// BoardSyncSystem rebuilds the tile grid from entities once per tick
// Off-board cells (a head past an electric wall) are skipped
type BoardSyncSystem struct {
	world   *engine.World
	updates []engine.TileUpdate
}

func NewBoardSyncSystem(world *engine.World) *BoardSyncSystem {
	return &BoardSyncSystem{world: world}
}

func (s *BoardSyncSystem) Name() string {
	return "board"
}

func (s *BoardSyncSystem) Priority() int {
	return parameter.PriorityBoardSync
}

func (s *BoardSyncSystem) Update() {
	w := s.world
	b := w.Board
	reg := w.Registry
	s.updates = s.updates[:0]

	add := func(x, y int, t engine.Tile) {
		if b.InBounds(x, y) {
			s.updates = append(s.updates, engine.TileUpdate{X: x, Y: y, Tile: t})
		}
	}

	for _, id := range reg.Obstacles() {
		o, _ := reg.Obstacle(id)
		add(o.Position.X, o.Position.Y, engine.TileObstacle)
	}
	for _, id := range reg.Foods() {
		f, _ := reg.Food(id)
		add(f.Position.X, f.Position.Y, engine.TileFood)
	}
	for _, id := range reg.Snakes() {
		snake, _ := reg.Snake(id)
		for _, seg := range snake.Body.Segments {
			add(seg.X, seg.Y, engine.TileSnakeBody)
		}
		add(snake.Position.X, snake.Position.Y, engine.TileSnakeHead)
	}

	b.Clear(engine.TileEmpty)
	if err := b.SetTiles(s.updates); err != nil {
		w.Logger().Printf("board sync: %v", err)
	}
}
