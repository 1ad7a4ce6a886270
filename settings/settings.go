// Package settings loads gameplay settings from defaults, a TOML file and GRIDSNAKE_* environment variables
package settings

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/parameter"
)

var (
	ErrInvalidBoard     = errors.New("invalid cells_per_side")
	ErrInvalidSpeed     = errors.New("invalid speed")
	ErrInvalidFoodCount = errors.New("invalid number_of_food")
	ErrInvalidPalette   = errors.New("unknown snake_palette")
)

// Settings is the user-facing configuration; field tags are the TOML keys
type Settings struct {
	CellsPerSide       int                  `toml:"cells_per_side"`
	InitialSpeed       float64              `toml:"initial_speed"`
	MaxSpeed           float64              `toml:"max_speed"`
	ObstacleDifficulty parameter.Difficulty `toml:"obstacle_difficulty"`
	NumberOfFood       int                  `toml:"number_of_food"`
	ElectricWalls      bool                 `toml:"electric_walls"`
	BackgroundMusic    bool                 `toml:"background_music"`
	SoundEffects       bool                 `toml:"sound_effects"`
	FruitVariety       bool                 `toml:"fruit_variety"`
	Hunger             bool                 `toml:"hunger"`
	Validate           bool                 `toml:"validate"`
	Seed               int64                `toml:"seed"` // 0 lets the host pick one
	SnakePalette       string               `toml:"snake_palette"`
}

// Default returns the stock settings
func Default() Settings {
	return Settings{
		CellsPerSide:       parameter.CellsPerSideDefault,
		InitialSpeed:       parameter.SpeedInitialDefault,
		MaxSpeed:           parameter.SpeedMaxDefault,
		ObstacleDifficulty: parameter.DifficultyNone,
		NumberOfFood:       parameter.FoodCountDefault,
		ElectricWalls:      true,
		BackgroundMusic:    true,
		SoundEffects:       true,
		SnakePalette:       parameter.PaletteDefault,
	}
}

// Load reads path over the defaults, applies environment overrides, then validates and normalizes
// An empty path skips the file
func Load(path string) (Settings, error) {
	s := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &s); err != nil {
			return s, fmt.Errorf("settings %s: %w", path, err)
		}
	}
	ApplyEnv(&s)
	if err := s.Check(); err != nil {
		return s, err
	}
	s.Normalize()
	return s, nil
}

// Parse decodes TOML text over the defaults without consulting the environment
func Parse(data string) (Settings, error) {
	s := Default()
	md, err := toml.Decode(data, &s)
	if err != nil {
		return s, fmt.Errorf("settings: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return s, fmt.Errorf("settings: unknown key %q", undecoded[0].String())
	}
	return s, nil
}

// Check rejects values normalization cannot repair
func (s Settings) Check() error {
	if s.CellsPerSide <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidBoard, s.CellsPerSide)
	}
	for _, v := range []float64{s.InitialSpeed, s.MaxSpeed} {
		if v <= 0 || math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: %v", ErrInvalidSpeed, v)
		}
	}
	if s.NumberOfFood < parameter.FoodCountMin {
		return fmt.Errorf("%w: %d", ErrInvalidFoodCount, s.NumberOfFood)
	}
	if s.SnakePalette != "" && parameter.PaletteByName(s.SnakePalette).Name != s.SnakePalette {
		return fmt.Errorf("%w: %q", ErrInvalidPalette, s.SnakePalette)
	}
	return nil
}

// Normalize clamps every field into its range and keeps initial speed below max speed
func (s *Settings) Normalize() {
	s.CellsPerSide = clampInt(s.CellsPerSide, parameter.CellsPerSideMin, parameter.CellsPerSideMax)
	s.MaxSpeed = clampFloat(s.MaxSpeed, parameter.SpeedMaxMin, parameter.SpeedMaxMax)
	s.InitialSpeed = clampFloat(s.InitialSpeed, parameter.SpeedInitialMin, parameter.SpeedInitialMax)
	if s.InitialSpeed >= s.MaxSpeed {
		s.InitialSpeed = max(parameter.SpeedInitialMin, s.MaxSpeed-parameter.SpeedInitialStep)
	}

	cells := s.CellsPerSide * s.CellsPerSide
	foodCap := max(parameter.FoodCountMin, min(int(float64(cells)*parameter.FoodCellShare), parameter.FoodCountMax))
	s.NumberOfFood = clampInt(s.NumberOfFood, parameter.FoodCountMin, foodCap)

	if s.ObstacleDifficulty < parameter.DifficultyNone || s.ObstacleDifficulty > parameter.DifficultyImpossible {
		s.ObstacleDifficulty = parameter.DifficultyNone
	}
	if s.SnakePalette == "" {
		s.SnakePalette = parameter.PaletteDefault
	}
}

// Rules converts settings into world rules for a square board
func (s Settings) Rules() engine.Rules {
	r := engine.DefaultRules(s.CellsPerSide, s.CellsPerSide)
	r.ElectricWalls = s.ElectricWalls
	r.InitialSpeed = s.InitialSpeed
	r.MaxSpeed = s.MaxSpeed
	r.FoodCount = s.NumberOfFood
	r.FruitVariety = s.FruitVariety
	r.Difficulty = s.ObstacleDifficulty
	r.Hunger = s.Hunger
	r.SoundEffects = s.SoundEffects
	r.Music = s.BackgroundMusic
	r.Palette = s.SnakePalette
	r.Start = core.Point{X: s.CellsPerSide / 2, Y: s.CellsPerSide / 2}
	return r
}

// Encode writes s as TOML, used to dump the effective configuration
func (s Settings) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(s)
}

func clampInt(v, lo, hi int) int {
	return max(lo, min(hi, v))
}

func clampFloat(v, lo, hi float64) float64 {
	return max(lo, min(hi, v))
}
