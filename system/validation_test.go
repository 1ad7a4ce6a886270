package system

import (
	"testing"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/event"
)

func TestValidationCleanWorld(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	addSnake(t, w, core.Point{X: 5, Y: 5}, core.DirRight, 4, core.Point{X: 4, Y: 5})
	addFood(w, core.Point{X: 1, Y: 1}, 1, 1.1)

	v := NewValidationSystem(w, true)
	if rep := v.Validate(); !rep.OK() {
		t.Errorf("Expected clean report, got %v", rep.Anomalies)
	}
}

func TestValidationFindsAnomalies(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	w.Rules.FoodCount = 2
	addSnake(t, w, core.Point{X: 5, Y: 5}, core.DirRight, 4, core.Point{X: 10, Y: 5})
	addObstacle(w, core.Point{X: 5, Y: 5})
	addFood(w, core.Point{X: 5, Y: 5}, 1, 1.1)

	before := w.Registry.Count()
	v := NewValidationSystem(w, true)
	w.AddSystem(v)
	w.Update(16)

	kinds := make(map[AnomalyKind]int)
	for _, a := range v.Last().Anomalies {
		kinds[a.Kind]++
	}
	for _, k := range []AnomalyKind{AnomalyFoodCount, AnomalyOutOfBounds, AnomalySnakeOnObstacle, AnomalyOvercrowded} {
		if kinds[k] == 0 {
			t.Errorf("Expected %s anomaly, got %v", k, kinds)
		}
	}
	if w.Registry.Count() != before {
		t.Errorf("Expected validation not to mutate the registry")
	}
	if got := w.Resources.Status.Ints.Get("validation.anomalies").Load(); got != int64(len(v.Last().Anomalies)) {
		t.Errorf("Expected anomaly counter %d, got %d", len(v.Last().Anomalies), got)
	}
}

func TestValidationDisabled(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	w.Rules.FoodCount = 3
	v := NewValidationSystem(w, false)
	w.AddSystem(v)
	w.Update(16)
	if w.Resources.Status.Ints.Get("validation.runs").Load() != 0 {
		t.Errorf("Expected no runs while disabled")
	}
}

func TestValidationIgnoresDeadSnakeHead(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	_, snake := addSnake(t, w, core.Point{X: -1, Y: 5}, core.DirLeft, 4)
	snake.Body.Alive = false
	addFood(w, core.Point{X: 1, Y: 1}, 1, 1.1)

	if rep := NewValidationSystem(w, true).Validate(); !rep.OK() {
		t.Errorf("Expected dead snake exempt, got %v", rep.Anomalies)
	}
}

func TestValidationIgnoresSnakeDyingThisTick(t *testing.T) {
	w := newTestWorld(t, 10, 10)
	id, _ := addSnake(t, w, core.Point{X: 10, Y: 5}, core.DirRight, 4)
	addFood(w, core.Point{X: 1, Y: 1}, 1, 1.1)
	w.RecordOutcome(event.Died(id, core.Point{X: 10, Y: 5}, event.CauseWall))

	if rep := NewValidationSystem(w, true).Validate(); !rep.OK() {
		t.Errorf("Expected snake dying this tick exempt, got %v", rep.Anomalies)
	}
}
