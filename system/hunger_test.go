package system

import (
	"testing"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
)

func TestHungerStarves(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	_, snake := addSnake(t, w, core.Point{X: 5, Y: 5}, core.DirNone, 10)
	snake.Hunger = &component.HungerComponent{RemainingMs: 10000, MaxMs: 10000}
	w.AddSystem(NewHungerSystem(w))
	w.AddSystem(NewLifecycleSystem(w))
	w.AddSystem(NewAudioSystem(w))

	// 50 / 10 cells per second = 5 seconds of budget
	w.Update(4000)
	if !snake.Body.Alive {
		t.Fatalf("Expected alive after 4s")
	}
	if snake.Hunger.MaxMs != 5000 {
		t.Errorf("Expected max 5000ms at speed 10, got %v", snake.Hunger.MaxMs)
	}

	out := w.Update(1500)
	if len(out) != 1 || out[0].Cause != event.CauseStarvation {
		t.Fatalf("Expected starvation outcome, got %+v", out)
	}
	if snake.Body.Alive || w.Resources.State.DeathCause != event.CauseStarvation {
		t.Errorf("Expected snake dead by starvation")
	}
	if got := w.Resources.Audio.Drain(); len(got) != 1 || got[0] != parameter.SoundDeath {
		t.Errorf("Expected one death sound, got %v", got)
	}

	if out := w.Update(1000); len(out) != 0 {
		t.Errorf("Expected no repeated death, got %+v", out)
	}
}

func TestEatingResetsHunger(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	_, snake := addSnake(t, w, core.Point{X: 5, Y: 5}, core.DirNone, 10)
	snake.Hunger = &component.HungerComponent{RemainingMs: 1000, MaxMs: 5000}
	addFood(w, core.Point{X: 5, Y: 5}, 1, 1.0)
	w.AddSystem(NewCollisionSystem(w))
	w.AddSystem(NewLifecycleSystem(w))

	w.Update(16)
	if snake.Hunger.RemainingMs != snake.Hunger.MaxMs {
		t.Errorf("Expected hunger reset to %v, got %v", snake.Hunger.MaxMs, snake.Hunger.RemainingMs)
	}
}

func TestEatOnLastHungerTickSurvives(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	_, snake := addSnake(t, w, core.Point{X: 5, Y: 5}, core.DirRight, 10)
	snake.Hunger = &component.HungerComponent{RemainingMs: 50, MaxMs: 5000}
	addFood(w, core.Point{X: 6, Y: 5}, 1, 1.0)
	addGameplay(w)
	w.AddSystem(NewHungerSystem(w))

	out := w.Update(100)
	if len(out) != 1 || out[0].Kind != event.OutcomeFoodEaten {
		t.Fatalf("Expected only a food outcome, got %+v", out)
	}
	if !snake.Body.Alive {
		t.Errorf("Expected snake alive after eating on its last hungry tick")
	}
	if snake.Hunger.RemainingMs != snake.Hunger.MaxMs {
		t.Errorf("Expected hunger refilled to %v, got %v", snake.Hunger.MaxMs, snake.Hunger.RemainingMs)
	}
	if got := w.Resources.Audio.Drain(); len(got) != 1 || got[0] != parameter.SoundEat {
		t.Errorf("Expected only the eat sound, got %v", got)
	}
}
