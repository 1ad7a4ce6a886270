package engine

import (
	"maps"
	"slices"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
)

// Registry owns all entities keyed by a monotonic id
// Ids start at 1 and are not reused until Clear
type Registry struct {
	nextID   core.Entity
	entities map[core.Entity]Entity
	byKind   [kindCount]map[core.Entity]struct{}
}

func NewRegistry() *Registry {
	r := &Registry{}
	r.Clear()
	return r
}

// Add inserts e and returns its id; a nil entity is not stored and yields the null id 0
func (r *Registry) Add(e Entity) core.Entity {
	if e == nil {
		return 0
	}
	id := r.nextID
	r.nextID++
	r.entities[id] = e
	r.byKind[e.Kind()][id] = struct{}{}
	return id
}

// Get looks up an entity by id
func (r *Registry) Get(id core.Entity) (Entity, bool) {
	e, ok := r.entities[id]
	return e, ok
}

func (r *Registry) Has(id core.Entity) bool {
	_, ok := r.entities[id]
	return ok
}

// Remove deletes id; returns false if absent
func (r *Registry) Remove(id core.Entity) bool {
	e, ok := r.entities[id]
	if !ok {
		return false
	}
	delete(r.entities, id)
	delete(r.byKind[e.Kind()], id)
	return true
}

// QueryByKind returns all entities of kind k
func (r *Registry) QueryByKind(k Kind) map[core.Entity]Entity {
	if k >= kindCount {
		return map[core.Entity]Entity{}
	}
	out := make(map[core.Entity]Entity, len(r.byKind[k]))
	for id := range r.byKind[k] {
		out[id] = r.entities[id]
	}
	return out
}

// QueryByComponents returns entities whose component set is a superset of mask
func (r *Registry) QueryByComponents(mask component.Mask) map[core.Entity]Entity {
	out := make(map[core.Entity]Entity)
	for id, e := range r.entities {
		if e.Components().Has(mask) {
			out[id] = e
		}
	}
	return out
}

// Count returns the total number of entities
func (r *Registry) Count() int {
	return len(r.entities)
}

// CountByKind returns the number of entities of kind k
func (r *Registry) CountByKind(k Kind) int {
	if k >= kindCount {
		return 0
	}
	return len(r.byKind[k])
}

// Clear removes all entities and resets the id counter
func (r *Registry) Clear() {
	r.nextID = 1
	r.entities = make(map[core.Entity]Entity)
	for i := range r.byKind {
		r.byKind[i] = make(map[core.Entity]struct{})
	}
}

// Snake returns the snake with id, if any
func (r *Registry) Snake(id core.Entity) (*Snake, bool) {
	s, ok := r.entities[id].(*Snake)
	return s, ok
}

// Food returns the food with id, if any
func (r *Registry) Food(id core.Entity) (*Food, bool) {
	f, ok := r.entities[id].(*Food)
	return f, ok
}

// Obstacle returns the obstacle with id, if any
func (r *Registry) Obstacle(id core.Entity) (*Obstacle, bool) {
	o, ok := r.entities[id].(*Obstacle)
	return o, ok
}

// Snakes returns snake ids in ascending order
func (r *Registry) Snakes() []core.Entity {
	return slices.Sorted(maps.Keys(r.byKind[KindSnake]))
}

// Foods returns food ids in ascending order
func (r *Registry) Foods() []core.Entity {
	return slices.Sorted(maps.Keys(r.byKind[KindFood]))
}

// Obstacles returns obstacle ids in ascending order
func (r *Registry) Obstacles() []core.Entity {
	return slices.Sorted(maps.Keys(r.byKind[KindObstacle]))
}

// QueryAs returns every entity of concrete type T, e.g. QueryAs[*Food]
func QueryAs[T Entity](r *Registry) map[core.Entity]T {
	out := make(map[core.Entity]T)
	for id, e := range r.entities {
		if v, ok := e.(T); ok {
			out[id] = v
		}
	}
	return out
}

// QueryCapability returns every entity implementing capability interface T, e.g. QueryCapability[Positioned]
func QueryCapability[T any](r *Registry) map[core.Entity]T {
	out := make(map[core.Entity]T)
	for id, e := range r.entities {
		if v, ok := any(e).(T); ok {
			out[id] = v
		}
	}
	return out
}

// SortedIDs returns map keys in ascending order for first-match-wins iteration
func SortedIDs[T any](m map[core.Entity]T) []core.Entity {
	return slices.Sorted(maps.Keys(m))
}
