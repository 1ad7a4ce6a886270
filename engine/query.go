package engine

import (
	"slices"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
)

// QueryBuilder provides a fluent filter over the registry.
// Kind narrows the scan to one variant index before component masks are checked.
//
// Example:
//
//	ids := registry.Query().
//	    OfKind(engine.KindSnake).
//	    With(component.MaskHunger).
//	    Execute()
type QueryBuilder struct {
	registry *Registry
	mask     component.Mask
	kind     Kind
	hasKind  bool
	executed bool
	results  []core.Entity
}

// Query creates a new QueryBuilder
func (r *Registry) Query() *QueryBuilder {
	return &QueryBuilder{registry: r}
}

// With adds components every result must carry
// Panics if called after Execute()
func (qb *QueryBuilder) With(mask component.Mask) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.mask |= mask
	return qb
}

// OfKind restricts results to one variant
func (qb *QueryBuilder) OfKind(k Kind) *QueryBuilder {
	if qb.executed {
		panic("query already executed - cannot modify after Execute()")
	}
	qb.kind = k
	qb.hasKind = true
	return qb
}

// Execute returns matching ids in ascending order
// Calling Execute() multiple times returns the cached result
func (qb *QueryBuilder) Execute() []core.Entity {
	if qb.executed {
		return qb.results
	}
	qb.executed = true

	r := qb.registry
	results := make([]core.Entity, 0)
	if qb.hasKind {
		if qb.kind >= kindCount {
			qb.results = results
			return results
		}
		for id := range r.byKind[qb.kind] {
			if r.entities[id].Components().Has(qb.mask) {
				results = append(results, id)
			}
		}
	} else {
		for id, e := range r.entities {
			if e.Components().Has(qb.mask) {
				results = append(results, id)
			}
		}
	}
	slices.Sort(results)
	qb.results = results
	return results
}
