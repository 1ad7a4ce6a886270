package system

import (
	"math/rand"
	"sync/atomic"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/prefab"
)

// SpawnSystem keeps Rules.FoodCount food entities on the board
// Cells are sampled uniformly; a full board is a silent no-op
type SpawnSystem struct {
	world *engine.World
	rng   *rand.Rand

	statFood   *atomic.Int64
	statMisses *atomic.Int64
}

// NewSpawnSystem uses rng for every random choice; pass a seeded source for reproducible games
func NewSpawnSystem(world *engine.World, rng *rand.Rand) *SpawnSystem {
	return &SpawnSystem{
		world:      world,
		rng:        rng,
		statFood:   world.Resources.Status.Ints.Get("food.count"),
		statMisses: world.Resources.Status.Ints.Get("spawn.misses"),
	}
}

func (s *SpawnSystem) Name() string {
	return "spawn"
}

func (s *SpawnSystem) Priority() int {
	return parameter.PrioritySpawn
}

func (s *SpawnSystem) Pausable() bool {
	return true
}

func (s *SpawnSystem) Update() {
	for s.world.Registry.CountByKind(engine.KindFood) < s.world.Rules.FoodCount {
		if _, ok := s.SpawnOne(); !ok {
			break
		}
	}
	s.statFood.Store(int64(s.world.Registry.CountByKind(engine.KindFood)))
}

// SpawnOne places a single food; false when no free cell was found within the attempt budget
func (s *SpawnSystem) SpawnOne() (core.Entity, bool) {
	p, ok := s.findFreeCell(s.occupied())
	if !ok {
		s.statMisses.Add(1)
		return 0, false
	}
	kind := s.pickFruit()
	id, err := prefab.CreateFood(s.world, p, kind)
	if err != nil {
		s.world.Logger().Printf("spawn: %v", err)
		return 0, false
	}
	s.world.PushEvent(event.EventFoodSpawned, &event.FoodSpawnedPayload{Food: id, Position: p, Kind: kind})
	return id, true
}

func (s *SpawnSystem) occupied() map[core.Point]struct{} {
	reg := s.world.Registry
	occ := make(map[core.Point]struct{})
	for _, id := range reg.Snakes() {
		snake, _ := reg.Snake(id)
		for _, p := range snake.Cells() {
			occ[p] = struct{}{}
		}
	}
	for _, id := range reg.Obstacles() {
		o, _ := reg.Obstacle(id)
		occ[o.Position.Point()] = struct{}{}
	}
	for _, id := range reg.Foods() {
		f, _ := reg.Food(id)
		occ[f.Position.Point()] = struct{}{}
	}
	return occ
}

func (s *SpawnSystem) findFreeCell(occ map[core.Point]struct{}) (core.Point, bool) {
	b := s.world.Board
	for i := 0; i < parameter.SpawnMaxAttempts; i++ {
		p := core.Point{X: s.rng.Intn(b.Width()), Y: s.rng.Intn(b.Height())}
		if _, taken := occ[p]; !taken {
			return p, true
		}
	}
	return core.Point{}, false
}

func (s *SpawnSystem) pickFruit() component.FruitKind {
	if !s.world.Rules.FruitVariety {
		return component.FruitApple
	}
	roll := s.rng.Intn(100)
	acc := 0
	for _, kind := range prefab.FruitKinds() {
		acc += prefab.FruitStats(kind).Weight
		if roll < acc {
			return kind
		}
	}
	return component.FruitApple
}
