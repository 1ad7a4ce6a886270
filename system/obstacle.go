package system

import (
	"math/rand"
	"sync/atomic"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/prefab"
)

// ObstacleConfig tunes placement
type ObstacleConfig struct {
	MaxRetries     int
	SafeZoneWidth  int // half-extent in cells around the start
	SafeZoneHeight int
}

func DefaultObstacleConfig() ObstacleConfig {
	return ObstacleConfig{
		MaxRetries:     parameter.ObstacleMaxRetries,
		SafeZoneWidth:  parameter.ObstacleSafeZoneWidth,
		SafeZoneHeight: parameter.ObstacleSafeZoneHeight,
	}
}

var neighbors = [4]core.Direction{core.DirUp, core.DirDown, core.DirLeft, core.DirRight}

// ObstacleSystem builds obstacle fields that leave every free cell reachable from the start
// Runs on demand via EventObstaclesRequest or direct Generate calls
type ObstacleSystem struct {
	world *engine.World
	rng   *rand.Rand
	cfg   ObstacleConfig

	statCount *atomic.Int64
}

func NewObstacleSystem(world *engine.World, rng *rand.Rand, cfg ObstacleConfig) *ObstacleSystem {
	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}
	return &ObstacleSystem{
		world:     world,
		rng:       rng,
		cfg:       cfg,
		statCount: world.Resources.Status.Ints.Get("obstacle.count"),
	}
}

func (s *ObstacleSystem) Name() string {
	return "obstacle"
}

func (s *ObstacleSystem) Priority() int {
	return parameter.PriorityObstacle
}

func (s *ObstacleSystem) Pausable() bool {
	return true
}

func (s *ObstacleSystem) EventTypes() []event.EventType {
	return []event.EventType{event.EventObstaclesRequest}
}

func (s *ObstacleSystem) HandleEvent(ev event.GameEvent) {
	p, ok := ev.Payload.(*event.ObstaclesRequestPayload)
	if !ok {
		return
	}
	s.ClearGenerated()
	count := p.Count
	if count < 0 {
		count = p.Difficulty.ObstacleCount(s.world.Board.TotalCells())
	}
	ids := s.Generate(count, p.Start)
	s.world.PushEvent(event.EventObstaclesPlaced, &event.ObstaclesPlacedPayload{Requested: count, Placed: len(ids)})
}

func (s *ObstacleSystem) Update() {}

// GenerateByDifficulty places difficulty.ObstacleCount(total cells) obstacles
func (s *ObstacleSystem) GenerateByDifficulty(d parameter.Difficulty, start core.Point) []core.Entity {
	return s.Generate(d.ObstacleCount(s.world.Board.TotalCells()), start)
}

// Generate places up to count obstacles and registers them
// Falls back to fewer obstacles when the full count cannot be verified; empty when none can
func (s *ObstacleSystem) Generate(count int, start core.Point) []core.Entity {
	cells := s.Place(count, start)
	ids := make([]core.Entity, 0, len(cells))
	for _, p := range cells {
		id, err := prefab.CreateObstacle(s.world, p, true)
		if err != nil {
			s.world.Logger().Printf("obstacle: %v", err)
			continue
		}
		ids = append(ids, id)
	}
	s.statCount.Store(int64(s.world.Registry.CountByKind(engine.KindObstacle)))
	return ids
}

// ClearGenerated removes obstacles created by the generator
func (s *ObstacleSystem) ClearGenerated() {
	reg := s.world.Registry
	for _, id := range reg.Obstacles() {
		if o, _ := reg.Obstacle(id); o.Tag.Generated {
			reg.Remove(id)
		}
	}
}

// Place computes a verified placement without touching the registry
func (s *ObstacleSystem) Place(count int, start core.Point) []core.Point {
	if count <= 0 {
		return nil
	}
	g := s.newGrid(start)
	if !g.inBounds(start) || g.blocked[g.index(start)] {
		s.world.Logger().Printf("obstacle: start %v is not a free cell", start)
		return nil
	}

	for attempt := 0; attempt < s.cfg.MaxRetries; attempt++ {
		if placed, ok := s.attempt(g, count, start); ok {
			return placed
		}
	}
	s.world.Logger().Printf("warning: could not place all %d obstacles after %d attempts", count, s.cfg.MaxRetries)

	for n := count - 1; n >= 1; n-- {
		if placed, ok := s.attempt(g, n, start); ok {
			s.world.Logger().Printf("warning: placed %d obstacles instead of %d", n, count)
			return placed
		}
	}
	return nil
}

// placementGrid is the static board state one placement works against
type placementGrid struct {
	width, height int
	blocked       []bool       // pre-existing obstacles
	existing      int          // count of pre-existing obstacles
	candidates    []core.Point // cells outside the safe zone and unoccupied
}

func (g *placementGrid) index(p core.Point) int {
	return p.Y*g.width + p.X
}

func (g *placementGrid) inBounds(p core.Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

func (s *ObstacleSystem) newGrid(start core.Point) *placementGrid {
	b := s.world.Board
	reg := s.world.Registry
	g := &placementGrid{
		width:   b.Width(),
		height:  b.Height(),
		blocked: make([]bool, b.TotalCells()),
	}

	occupied := make(map[core.Point]struct{})
	for _, id := range reg.Obstacles() {
		o, _ := reg.Obstacle(id)
		p := o.Position.Point()
		if g.inBounds(p) && !g.blocked[g.index(p)] {
			g.blocked[g.index(p)] = true
			g.existing++
		}
		occupied[p] = struct{}{}
	}
	for _, id := range reg.Snakes() {
		snake, _ := reg.Snake(id)
		for _, p := range snake.Cells() {
			occupied[p] = struct{}{}
		}
	}
	for _, id := range reg.Foods() {
		f, _ := reg.Food(id)
		occupied[f.Position.Point()] = struct{}{}
	}

	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if abs(x-start.X) < s.cfg.SafeZoneWidth && abs(y-start.Y) < s.cfg.SafeZoneHeight {
				continue
			}
			p := core.Point{X: x, Y: y}
			if _, taken := occupied[p]; taken {
				continue
			}
			g.candidates = append(g.candidates, p)
		}
	}
	return g
}

func (s *ObstacleSystem) attempt(g *placementGrid, count int, start core.Point) ([]core.Point, bool) {
	cands := make([]core.Point, len(g.candidates))
	copy(cands, g.candidates)
	s.rng.Shuffle(len(cands), func(i, j int) {
		cands[i], cands[j] = cands[j], cands[i]
	})

	blocked := make([]bool, len(g.blocked))
	copy(blocked, g.blocked)

	placed := make([]core.Point, 0, count)
	for _, c := range cands {
		if len(placed) == count {
			break
		}
		if g.wouldTrap(c, blocked) {
			continue
		}
		blocked[g.index(c)] = true
		placed = append(placed, c)
	}

	if len(placed) != count {
		return nil, false
	}
	want := g.width*g.height - g.existing - count
	if FloodFill(g.width, g.height, blocked, start) != want {
		return nil, false
	}
	return placed, true
}

// wouldTrap reports whether blocking c leaves a free neighbor with parameter.ObstacleTrapSides or more blocked sides
// Off-board sides count as blocked
func (g *placementGrid) wouldTrap(c core.Point, blocked []bool) bool {
	for _, d := range neighbors {
		n := c.Add(d)
		if !g.inBounds(n) || blocked[g.index(n)] {
			continue
		}
		sides := 0
		for _, e := range neighbors {
			m := n.Add(e)
			if m == c || !g.inBounds(m) || blocked[g.index(m)] {
				sides++
			}
		}
		if sides >= parameter.ObstacleTrapSides {
			return true
		}
	}
	return false
}

// FloodFill counts free cells 4-connected to start; blocked is row-major width x height
func FloodFill(width, height int, blocked []bool, start core.Point) int {
	if start.X < 0 || start.X >= width || start.Y < 0 || start.Y >= height {
		return 0
	}
	idx := func(p core.Point) int { return p.Y*width + p.X }
	if blocked[idx(start)] {
		return 0
	}

	visited := make([]bool, width*height)
	visited[idx(start)] = true
	queue := []core.Point{start}
	count := 0

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		count++

		for _, d := range neighbors {
			n := cur.Add(d)
			if n.X < 0 || n.X >= width || n.Y < 0 || n.Y >= height {
				continue
			}
			i := idx(n)
			if visited[i] || blocked[i] {
				continue
			}
			visited[i] = true
			queue = append(queue, n)
		}
	}
	return count
}

// BlockedGrid builds the FloodFill input from the world's obstacle entities
func BlockedGrid(world *engine.World) []bool {
	b := world.Board
	blocked := make([]bool, b.TotalCells())
	for _, id := range world.Registry.Obstacles() {
		o, _ := world.Registry.Obstacle(id)
		if b.InBounds(o.Position.X, o.Position.Y) {
			blocked[o.Position.Y*b.Width()+o.Position.X] = true
		}
	}
	return blocked
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
