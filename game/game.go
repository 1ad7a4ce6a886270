// Package game assembles a World from settings and drives it tick by tick
package game

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/prefab"
	"github.com/lixenwraith/gridsnake/settings"
	"github.com/lixenwraith/gridsnake/system"
)

// Game owns one World and the single-player snake in it
// Not safe for concurrent use; hosts funnel input to the tick goroutine
type Game struct {
	settings settings.Settings
	seed     int64
	rng      *rand.Rand
	logger   *log.Logger

	world *engine.World
	snake core.Entity

	input      *system.InputSystem
	spawn      *system.SpawnSystem
	obstacles  *system.ObstacleSystem
	board      *system.BoardSyncSystem
	validation *system.ValidationSystem
}

// New builds a ready-to-tick game; a zero settings seed is replaced by the clock
func New(s settings.Settings, logger *log.Logger) (*Game, error) {
	if err := s.Check(); err != nil {
		return nil, err
	}
	s.Normalize()
	if logger == nil {
		logger = log.Default()
	}

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		settings: s,
		seed:     seed,
		rng:      rand.New(rand.NewSource(seed)),
		logger:   logger,
	}
	if err := g.build(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) build() error {
	n := g.settings.CellsPerSide
	board, err := engine.NewBoard(n, n, parameter.CellSizeDefault)
	if err != nil {
		return fmt.Errorf("game board: %w", err)
	}

	w := engine.NewWorld(board, g.settings.Rules())
	w.SetLogger(g.logger)

	g.input = system.NewInputSystem(w)
	g.spawn = system.NewSpawnSystem(w, g.rng)
	g.obstacles = system.NewObstacleSystem(w, g.rng, system.DefaultObstacleConfig())
	g.board = system.NewBoardSyncSystem(w)
	g.validation = system.NewValidationSystem(w, g.settings.Validate)

	w.AddSystem(g.input)
	w.AddSystem(system.NewMovementSystem(w))
	w.AddSystem(system.NewCollisionSystem(w))
	w.AddSystem(system.NewLifecycleSystem(w))
	w.AddSystem(system.NewScoringSystem(w))
	w.AddSystem(system.NewHungerSystem(w))
	w.AddSystem(g.spawn)
	w.AddSystem(g.obstacles)
	w.AddSystem(g.board)
	w.AddSystem(system.NewInterpolationSystem(w))
	w.AddSystem(system.NewAudioSystem(w))
	w.AddSystem(g.validation)

	g.world = w
	if err := g.populate(); err != nil {
		return err
	}
	g.obstacles.GenerateByDifficulty(w.Rules.Difficulty, w.Rules.Start)
	g.settle()
	return nil
}

// populate creates the player snake
func (g *Game) populate() error {
	id, err := prefab.CreateSnake(g.world, prefab.DefaultSnakeOptions(g.world))
	if err != nil {
		return fmt.Errorf("game snake: %w", err)
	}
	g.snake = id
	return nil
}

// settle fills food and tiles so the first frame is complete before any tick
func (g *Game) settle() {
	g.world.DispatchEvents()
	g.spawn.Update()
	g.board.Update()
}

// Tick advances the world by dtMs, clamped to parameter.MaxTickDeltaMs
func (g *Game) Tick(dtMs float64) []event.Outcome {
	dtMs = max(0, min(dtMs, parameter.MaxTickDeltaMs))
	return g.world.Update(dtMs)
}

// SetDirection queues a steering request for the player snake
func (g *Game) SetDirection(d core.Direction) bool {
	return g.input.Request(g.snake, d)
}

// TogglePause flips the pause flag and returns the new value
func (g *Game) TogglePause() bool {
	paused := !g.world.Paused()
	g.world.SetPaused(paused)
	return paused
}

// Reset starts a new round on the same board; the high score is kept
func (g *Game) Reset() error {
	w := g.world
	w.Registry.Clear()
	w.Resources.State = engine.GameState{HighScore: w.Resources.State.HighScore}
	w.Resources.Audio.Drain()

	if err := g.populate(); err != nil {
		return err
	}
	w.PushEvent(event.EventGameReset, nil)
	w.PushEvent(event.EventObstaclesRequest, &event.ObstaclesRequestPayload{
		Difficulty: w.Rules.Difficulty,
		Count:      -1,
		Start:      w.Rules.Start,
	})
	g.settle()
	g.logger.Printf("game reset: high score %d", w.Resources.State.HighScore)
	return nil
}

// Reconfigure swaps in a board sized for s and starts a new round under its rules; the high score is kept
func (g *Game) Reconfigure(s settings.Settings) error {
	if err := s.Check(); err != nil {
		return err
	}
	s.Normalize()
	n := s.CellsPerSide
	board, err := engine.NewBoard(n, n, parameter.CellSizeDefault)
	if err != nil {
		return fmt.Errorf("game board: %w", err)
	}

	g.settings = s
	w := g.world
	w.ReplaceBoard(board)
	w.Rules = s.Rules()
	w.Resources.Audio.MusicEnabled = w.Rules.Music
	g.validation.SetEnabled(s.Validate)
	return g.Reset()
}

func (g *Game) World() *engine.World {
	return g.world
}

// Snake returns the player snake
func (g *Game) Snake() *engine.Snake {
	s, _ := g.world.Registry.Snake(g.snake)
	return s
}

func (g *Game) SnakeID() core.Entity {
	return g.snake
}

func (g *Game) State() engine.GameState {
	return g.world.Resources.State
}

func (g *Game) Settings() settings.Settings {
	return g.settings
}

// Seed is the effective random seed, for replaying a game
func (g *Game) Seed() int64 {
	return g.seed
}

// Validation exposes the last consistency report
func (g *Game) Validation() system.Report {
	return g.validation.Last()
}
