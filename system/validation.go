package system

import (
	"fmt"
	"slices"
	"sync/atomic"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/parameter"
)

// AnomalyKind classifies a consistency violation
type AnomalyKind string

const (
	AnomalyFoodCount       AnomalyKind = "food_count"
	AnomalyOutOfBounds     AnomalyKind = "out_of_bounds"
	AnomalySnakeOnObstacle AnomalyKind = "snake_on_obstacle"
	AnomalyOvercrowded     AnomalyKind = "overcrowded"
)

// Anomaly is one finding of a validation pass
type Anomaly struct {
	Kind     AnomalyKind
	Entity   core.Entity
	Position core.Point
	Detail   string
}

func (a Anomaly) String() string {
	return fmt.Sprintf("%s entity=%d at %v: %s", a.Kind, a.Entity, a.Position, a.Detail)
}

// Report is the result of one validation pass
type Report struct {
	Tick      uint64
	Anomalies []Anomaly
}

func (r Report) OK() bool {
	return len(r.Anomalies) == 0
}

// ValidationSystem checks world consistency without mutating it
// Findings are logged and counted, never raised
type ValidationSystem struct {
	world   *engine.World
	enabled bool
	last    Report

	statRuns      *atomic.Int64
	statAnomalies *atomic.Int64
}

func NewValidationSystem(world *engine.World, enabled bool) *ValidationSystem {
	return &ValidationSystem{
		world:         world,
		enabled:       enabled,
		statRuns:      world.Resources.Status.Ints.Get("validation.runs"),
		statAnomalies: world.Resources.Status.Ints.Get("validation.anomalies"),
	}
}

func (s *ValidationSystem) Name() string {
	return "validation"
}

func (s *ValidationSystem) Priority() int {
	return parameter.PriorityValidation
}

func (s *ValidationSystem) SetEnabled(enabled bool) {
	s.enabled = enabled
}

// Last returns the most recent report
func (s *ValidationSystem) Last() Report {
	return s.last
}

func (s *ValidationSystem) Update() {
	if !s.enabled {
		return
	}
	s.last = s.Validate()
	s.statRuns.Add(1)
	if s.last.OK() {
		return
	}
	s.statAnomalies.Add(int64(len(s.last.Anomalies)))
	for _, a := range s.last.Anomalies {
		s.world.Logger().Printf("validation tick %d: %s", s.last.Tick, a)
	}
}

// Validate runs every check and returns the findings
// Dead snakes, including those that died earlier this tick, are exempt from bounds and overlap checks
// since their final head cell is the cause of death
func (s *ValidationSystem) Validate() Report {
	w := s.world
	reg := w.Registry
	rep := Report{Tick: w.Resources.State.Tick}

	if got, want := reg.CountByKind(engine.KindFood), w.Rules.FoodCount; got != want {
		rep.Anomalies = append(rep.Anomalies, Anomaly{
			Kind:   AnomalyFoodCount,
			Detail: fmt.Sprintf("have %d food, want %d", got, want),
		})
	}

	obstacles := make(map[core.Point]core.Entity)
	for _, id := range reg.Obstacles() {
		o, _ := reg.Obstacle(id)
		obstacles[o.Position.Point()] = id
	}

	occupancy := make(map[core.Point]int)
	positioned := engine.QueryCapability[engine.Positioned](reg)
	for _, id := range engine.SortedIDs(positioned) {
		e := positioned[id]
		if snake, ok := e.(*engine.Snake); ok {
			seen := make(map[core.Point]struct{})
			for _, p := range snake.Cells() {
				if _, dup := seen[p]; !dup {
					seen[p] = struct{}{}
					occupancy[p]++
				}
			}
			if snake.Body.Alive && !w.HasFatalOutcome(id) {
				rep.Anomalies = append(rep.Anomalies, s.checkSnake(id, snake, obstacles)...)
			}
			continue
		}
		occupancy[e.Pos().Point()]++
	}

	for _, p := range sortedPoints(occupancy) {
		if n := occupancy[p]; n > 2 {
			rep.Anomalies = append(rep.Anomalies, Anomaly{
				Kind:     AnomalyOvercrowded,
				Position: p,
				Detail:   fmt.Sprintf("%d entities share the cell", n),
			})
		}
	}
	return rep
}

func (s *ValidationSystem) checkSnake(id core.Entity, snake *engine.Snake, obstacles map[core.Point]core.Entity) []Anomaly {
	var out []Anomaly
	b := s.world.Board
	for i, p := range snake.Cells() {
		part := "head"
		if i > 0 {
			part = fmt.Sprintf("segment %d", i-1)
		}
		if !b.InBounds(p.X, p.Y) {
			out = append(out, Anomaly{
				Kind:     AnomalyOutOfBounds,
				Entity:   id,
				Position: p,
				Detail:   part + " outside board",
			})
		}
		if oid, hit := obstacles[p]; hit {
			out = append(out, Anomaly{
				Kind:     AnomalySnakeOnObstacle,
				Entity:   id,
				Position: p,
				Detail:   fmt.Sprintf("%s overlaps obstacle %d", part, oid),
			})
		}
	}
	return out
}

func sortedPoints(m map[core.Point]int) []core.Point {
	out := make([]core.Point, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	slices.SortFunc(out, func(a, b core.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})
	return out
}
