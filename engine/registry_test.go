package engine

import (
	"testing"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
)

func newTestFood(x, y int) *Food {
	return &Food{
		Position: component.NewPosition(x, y),
		Edible:   component.EdibleComponent{Points: 10, Growth: 1, SpeedMultiplier: 1.1},
	}
}

func TestRegistryMonotonicIDs(t *testing.T) {
	r := NewRegistry()
	a := r.Add(&Snake{})
	b := r.Add(newTestFood(1, 1))
	if a != 1 || b != 2 {
		t.Errorf("Expected ids 1 and 2, got %d and %d", a, b)
	}

	r.Remove(b)
	c := r.Add(&Obstacle{})
	if c != 3 {
		t.Errorf("Expected removed id not to be reused, got %d", c)
	}

	r.Clear()
	if r.Count() != 0 {
		t.Errorf("Expected empty registry after clear, got %d", r.Count())
	}
	if id := r.Add(&Obstacle{}); id != 1 {
		t.Errorf("Expected counter reset to 1 after clear, got %d", id)
	}
}

func TestRegistryQueries(t *testing.T) {
	r := NewRegistry()
	snakeID := r.Add(&Snake{Hunger: &component.HungerComponent{MaxMs: 1000}})
	r.Add(newTestFood(1, 1))
	r.Add(newTestFood(2, 2))
	r.Add(&Obstacle{Position: component.NewPosition(3, 3)})

	if got := r.CountByKind(KindFood); got != 2 {
		t.Errorf("Expected 2 food, got %d", got)
	}
	if got := len(r.QueryByKind(KindObstacle)); got != 1 {
		t.Errorf("Expected 1 obstacle, got %d", got)
	}

	positioned := r.QueryByComponents(component.MaskPosition)
	if len(positioned) != 4 {
		t.Errorf("Expected 4 positioned entities, got %d", len(positioned))
	}

	velocity := r.QueryByComponents(component.MaskPosition | component.MaskVelocity)
	if len(velocity) != 1 {
		t.Fatalf("Expected only the snake to carry velocity, got %d", len(velocity))
	}
	if _, ok := velocity[snakeID]; !ok {
		t.Errorf("Expected snake %d in velocity query", snakeID)
	}

	hungry := r.Query().OfKind(KindSnake).With(component.MaskHunger).Execute()
	if len(hungry) != 1 || hungry[0] != snakeID {
		t.Errorf("Expected [%d], got %v", snakeID, hungry)
	}

	foods := QueryAs[*Food](r)
	if len(foods) != 2 {
		t.Errorf("Expected 2 typed foods, got %d", len(foods))
	}

	moving := QueryCapability[Moving](r)
	if len(moving) != 1 {
		t.Errorf("Expected 1 moving entity, got %d", len(moving))
	}
}

func TestRegistrySortedAccessors(t *testing.T) {
	r := NewRegistry()
	ids := make([]core.Entity, 0, 5)
	for i := 0; i < 5; i++ {
		ids = append(ids, r.Add(newTestFood(i, 0)))
	}
	got := r.Foods()
	for i := range ids {
		if got[i] != ids[i] {
			t.Fatalf("Expected ascending ids %v, got %v", ids, got)
		}
	}
	if _, ok := r.Snake(ids[0]); ok {
		t.Errorf("Expected food id not to resolve as snake")
	}
	if f, ok := r.Food(ids[2]); !ok || f.Position.X != 2 {
		t.Errorf("Expected food at x=2, got %v", f)
	}
}

func TestQueryBuilderPanicsAfterExecute(t *testing.T) {
	r := NewRegistry()
	q := r.Query().With(component.MaskPosition)
	q.Execute()
	defer func() {
		if recover() == nil {
			t.Errorf("Expected panic when modifying executed query")
		}
	}()
	q.With(component.MaskEdible)
}

func TestRegistryAddNil(t *testing.T) {
	r := NewRegistry()
	if id := r.Add(nil); id != 0 {
		t.Errorf("Expected null id for nil entity, got %d", id)
	}
	if r.Count() != 0 {
		t.Errorf("Expected nothing stored, got %d", r.Count())
	}
	if id := r.Add(newTestFood(0, 0)); id != 1 {
		t.Errorf("Expected first real id 1, got %d", id)
	}
}

func TestSortedIDs(t *testing.T) {
	r := NewRegistry()
	for i := 0; i < 6; i++ {
		r.Add(newTestFood(i, 0))
	}
	got := SortedIDs(QueryAs[*Food](r))
	if len(got) != 6 {
		t.Fatalf("Expected 6 ids, got %v", got)
	}
	for i, id := range got {
		if id != core.Entity(i+1) {
			t.Errorf("Expected ascending ids, got %v", got)
			break
		}
	}
}
