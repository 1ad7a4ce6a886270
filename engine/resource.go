package engine

import (
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/event"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/status"
)

// Rules are the per-world gameplay settings fixed at construction or reset
type Rules struct {
	ElectricWalls bool // true: leaving the board kills; false: wrap around
	InitialSpeed  float64
	MaxSpeed      float64
	FoodCount     int
	FruitVariety  bool // weighted apple/grape/orange instead of apples only
	Difficulty    parameter.Difficulty
	Hunger        bool
	SoundEffects  bool
	Music         bool
	Palette       string
	Start         core.Point // snake spawn cell, also the obstacle safe zone center
}

// WrapMode reports whether heads wrap at the board edges
func (r Rules) WrapMode() bool {
	return !r.ElectricWalls
}

// DefaultRules matches the stock settings on a width x height board
func DefaultRules(width, height int) Rules {
	return Rules{
		ElectricWalls: true,
		InitialSpeed:  parameter.SpeedInitialDefault,
		MaxSpeed:      parameter.SpeedMaxDefault,
		FoodCount:     parameter.FoodCountDefault,
		Difficulty:    parameter.DifficultyNone,
		SoundEffects:  true,
		Music:         true,
		Palette:       parameter.PaletteDefault,
		Start:         core.Point{X: width / 2, Y: height / 2},
	}
}

// GameState is the round state read by hosts
type GameState struct {
	Paused     bool
	GameOver   bool
	DeathCause event.DeathCause
	Score      int
	HighScore  int
	Tick       uint64
}

// AudioQueue is the side channel from gameplay to the audio consumer
// The consumer must Drain it every frame
type AudioQueue struct {
	sounds       []string
	MusicEnabled bool
}

// Push appends a sound effect id
func (q *AudioQueue) Push(id string) {
	q.sounds = append(q.sounds, id)
}

// Drain returns queued ids and empties the queue
func (q *AudioQueue) Drain() []string {
	if len(q.sounds) == 0 {
		return nil
	}
	out := q.sounds
	q.sounds = nil
	return out
}

func (q *AudioQueue) Len() int {
	return len(q.sounds)
}

// Resources holds world-scoped singletons
type Resources struct {
	State  GameState
	Audio  AudioQueue
	Status *status.Registry
}

func newResources(rules Rules) *Resources {
	return &Resources{
		Audio:  AudioQueue{MusicEnabled: rules.Music},
		Status: status.NewRegistry(),
	}
}
