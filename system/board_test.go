package system

import (
	"testing"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
)

func TestBoardSyncTiles(t *testing.T) {
	w := newTestWorld(t, 6, 6)
	addSnake(t, w, core.Point{X: 3, Y: 3}, core.DirRight, 4, core.Point{X: 2, Y: 3}, core.Point{X: 1, Y: 3})
	addFood(w, core.Point{X: 5, Y: 5}, 1, 1.1)
	addObstacle(w, core.Point{X: 0, Y: 0})
	w.AddSystem(NewBoardSyncSystem(w))
	w.Update(16)

	cases := map[core.Point]engine.Tile{
		{X: 3, Y: 3}: engine.TileSnakeHead,
		{X: 2, Y: 3}: engine.TileSnakeBody,
		{X: 1, Y: 3}: engine.TileSnakeBody,
		{X: 5, Y: 5}: engine.TileFood,
		{X: 0, Y: 0}: engine.TileObstacle,
		{X: 4, Y: 4}: engine.TileEmpty,
	}
	for p, want := range cases {
		if got, _ := w.Board.Tile(p.X, p.Y); got != want {
			t.Errorf("Expected %v at %v, got %v", want, p, got)
		}
	}
}

func TestBoardSyncSkipsOffBoardHead(t *testing.T) {
	w := newTestWorld(t, 4, 4)
	addSnake(t, w, core.Point{X: 4, Y: 1}, core.DirRight, 4, core.Point{X: 3, Y: 1})
	w.AddSystem(NewBoardSyncSystem(w))
	w.Update(16)
	if got, _ := w.Board.Tile(3, 1); got != engine.TileSnakeBody {
		t.Errorf("Expected body at (3, 1), got %v", got)
	}
	if got := w.Board.Count(engine.TileSnakeHead); got != 0 {
		t.Errorf("Expected no head tile, got %d", got)
	}
}
