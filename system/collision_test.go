package system

import (
	"math"
	"testing"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
)

func TestCollisionOrderWallFirst(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	head := core.Point{X: -1, Y: 4}
	id, snake := addSnake(t, w, head, core.DirLeft, 5, core.Point{X: 0, Y: 4}, head)
	addObstacle(w, head)
	foodID := addFood(w, head, 1, 1.1)

	c := NewCollisionSystem(w)
	o := c.Detect(id, snake)
	if o.Kind != event.OutcomeDied || o.Cause != event.CauseWall {
		t.Fatalf("Expected wall death, got %v %s", o.Kind, o.Cause)
	}

	w.AddSystem(c)
	w.AddSystem(NewLifecycleSystem(w))
	out := w.Update(16)
	if len(out) != 1 || out[0].Cause != event.CauseWall {
		t.Fatalf("Expected only the wall outcome, got %+v", out)
	}
	if !w.Registry.Has(foodID) {
		t.Errorf("Expected food untouched after fatal collision")
	}
	if snake.Body.Alive {
		t.Errorf("Expected snake dead")
	}
	if !w.Resources.State.GameOver || w.Resources.State.DeathCause != event.CauseWall {
		t.Errorf("Expected game over by wall, got %+v", w.Resources.State)
	}
}

func TestCollisionSelfBiteBeforeObstacle(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	head := core.Point{X: 4, Y: 4}
	id, snake := addSnake(t, w, head, core.DirUp, 5, core.Point{X: 4, Y: 5}, head)
	addObstacle(w, head)

	o := NewCollisionSystem(w).Detect(id, snake)
	if o.Cause != event.CauseSelfBite {
		t.Errorf("Expected self_bite, got %s", o.Cause)
	}
}

func TestCollisionObstacleBeforeFood(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	head := core.Point{X: 4, Y: 4}
	id, snake := addSnake(t, w, head, core.DirUp, 5)
	addFood(w, head, 1, 1.1)
	addObstacle(w, head)

	o := NewCollisionSystem(w).Detect(id, snake)
	if o.Cause != event.CauseObstacle {
		t.Errorf("Expected obstacle, got %v %s", o.Kind, o.Cause)
	}
}

func TestWrapModeHasNoWallDeath(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	w.Rules.ElectricWalls = false
	id, snake := addSnake(t, w, core.Point{X: -1, Y: 0}, core.DirLeft, 5)
	if o := NewCollisionSystem(w).Detect(id, snake); o.Kind != event.OutcomeNone {
		t.Errorf("Expected no collision in wrap mode, got %v", o.Kind)
	}
}

func TestFoodEatenAppliesGrowthAndSpeed(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	_, snake := addSnake(t, w, core.Point{X: 4, Y: 4}, core.DirRight, 10, core.Point{X: 3, Y: 4})
	foodID := addFood(w, core.Point{X: 5, Y: 4}, 1, 1.1)
	addGameplay(w)

	oldSize := snake.Body.Size
	out := w.Update(100)

	if len(out) != 1 || out[0].Kind != event.OutcomeFoodEaten || out[0].Food != foodID {
		t.Fatalf("Expected food eaten outcome for %d, got %+v", foodID, out)
	}
	if w.Registry.Has(foodID) {
		t.Errorf("Expected food removed from registry")
	}
	if snake.Body.Size != oldSize+1 {
		t.Errorf("Expected size %d, got %d", oldSize+1, snake.Body.Size)
	}
	if want := math.Min(10*1.1, w.Rules.MaxSpeed); math.Abs(snake.Velocity.Speed-want) > 1e-9 {
		t.Errorf("Expected speed %v, got %v", want, snake.Velocity.Speed)
	}
	if w.Resources.State.Score != 10 {
		t.Errorf("Expected score 10, got %d", w.Resources.State.Score)
	}
	if got := w.Resources.Audio.Drain(); len(got) != 1 || got[0] != parameter.SoundEat {
		t.Errorf("Expected eat sound queued, got %v", got)
	}
}

func TestFoodSpeedCappedAtMax(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	w.Rules.MaxSpeed = 10.5
	id, snake := addSnake(t, w, core.Point{X: 4, Y: 4}, core.DirRight, 10)
	addFood(w, core.Point{X: 4, Y: 4}, 1, 1.1)

	o := NewCollisionSystem(w).Detect(id, snake)
	if o.NewSpeed != 10.5 {
		t.Errorf("Expected speed capped at 10.5, got %v", o.NewSpeed)
	}
}

func TestFirstFoodByIDWins(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	_, snake := addSnake(t, w, core.Point{X: 2, Y: 2}, core.DirRight, 5)
	first := addFood(w, core.Point{X: 2, Y: 2}, 1, 1.1)
	second := addFood(w, core.Point{X: 2, Y: 2}, 3, 1.1)
	w.AddSystem(NewCollisionSystem(w))
	w.AddSystem(NewLifecycleSystem(w))

	out := w.Update(16)
	if len(out) != 1 || out[0].Food != first {
		t.Fatalf("Expected single outcome for food %d, got %+v", first, out)
	}
	if !w.Registry.Has(second) {
		t.Errorf("Expected second food to remain")
	}
	if snake.Body.Size != 2 {
		t.Errorf("Expected growth of 1 only, got size %d", snake.Body.Size)
	}
}

func TestNextSpeed(t *testing.T) {
	cases := []struct {
		cur, mult, maxSpeed, want float64
	}{
		{4, 1.1, 20, 4.4},
		{19, 1.1, 20, 20},
		{5, 0.8, 20, 4},
		{1.1, 0.8, 20, 1},
		{1, 0.8, 20, 1},
	}
	for _, c := range cases {
		if got := NextSpeed(c.cur, c.mult, c.maxSpeed); math.Abs(got-c.want) > 1e-9 {
			t.Errorf("NextSpeed(%v, %v, %v): expected %v, got %v", c.cur, c.mult, c.maxSpeed, c.want, got)
		}
	}
}
