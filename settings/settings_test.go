package settings

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lixenwraith/gridsnake/parameter"
)

func TestDefaultIsValid(t *testing.T) {
	s := Default()
	if err := s.Check(); err != nil {
		t.Fatalf("Expected defaults to pass, got %v", err)
	}
	before := s
	s.Normalize()
	if s != before {
		t.Errorf("Expected defaults unchanged by Normalize, got %+v", s)
	}
}

func TestParseFile(t *testing.T) {
	s, err := Parse(`
cells_per_side = 30
initial_speed = 6.5
max_speed = 25.0
obstacle_difficulty = "hard"
number_of_food = 3
electric_walls = false
fruit_variety = true
seed = 42
snake_palette = "Ocean"
`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s.CellsPerSide != 30 || s.InitialSpeed != 6.5 || s.MaxSpeed != 25 {
		t.Errorf("Expected board/speed from file, got %+v", s)
	}
	if s.ObstacleDifficulty != parameter.DifficultyHard {
		t.Errorf("Expected Hard, got %v", s.ObstacleDifficulty)
	}
	if s.ElectricWalls || !s.FruitVariety || s.Seed != 42 || s.SnakePalette != "Ocean" {
		t.Errorf("Expected flags from file, got %+v", s)
	}
	// Keys absent from the file keep their defaults
	if !s.SoundEffects || !s.BackgroundMusic {
		t.Errorf("Expected audio defaults kept, got %+v", s)
	}
}

func TestParseRejects(t *testing.T) {
	if _, err := Parse(`obstacle_difficulty = "brutal"`); err == nil {
		t.Errorf("Expected error for unknown difficulty")
	}
	if _, err := Parse(`number_of_apples = 3`); err == nil || !strings.Contains(err.Error(), "number_of_apples") {
		t.Errorf("Expected unknown key error, got %v", err)
	}
}

func TestCheckSentinels(t *testing.T) {
	cases := []struct {
		mutate func(*Settings)
		want   error
	}{
		{func(s *Settings) { s.CellsPerSide = 0 }, ErrInvalidBoard},
		{func(s *Settings) { s.InitialSpeed = -1 }, ErrInvalidSpeed},
		{func(s *Settings) { s.MaxSpeed = 0 }, ErrInvalidSpeed},
		{func(s *Settings) { s.NumberOfFood = 0 }, ErrInvalidFoodCount},
		{func(s *Settings) { s.SnakePalette = "Plaid" }, ErrInvalidPalette},
	}
	for _, tc := range cases {
		s := Default()
		tc.mutate(&s)
		if err := s.Check(); !errors.Is(err, tc.want) {
			t.Errorf("Expected %v, got %v", tc.want, err)
		}
	}
}

func TestNormalize(t *testing.T) {
	s := Default()
	s.CellsPerSide = 500
	s.InitialSpeed = 30
	s.MaxSpeed = 10
	s.NumberOfFood = 100
	s.Normalize()

	if s.CellsPerSide != parameter.CellsPerSideMax {
		t.Errorf("Expected cells clamped to %d, got %d", parameter.CellsPerSideMax, s.CellsPerSide)
	}
	if s.InitialSpeed >= s.MaxSpeed {
		t.Errorf("Expected initial < max, got %v >= %v", s.InitialSpeed, s.MaxSpeed)
	}
	if s.InitialSpeed != 9.5 {
		t.Errorf("Expected initial one step below max, got %v", s.InitialSpeed)
	}
	if s.NumberOfFood != parameter.FoodCountMax {
		t.Errorf("Expected food capped at %d, got %d", parameter.FoodCountMax, s.NumberOfFood)
	}

	// 10x10 board: 15% of 100 cells
	s = Default()
	s.CellsPerSide = 10
	s.NumberOfFood = 25
	s.Normalize()
	if s.NumberOfFood != 15 {
		t.Errorf("Expected food capped at 15 on 10x10, got %d", s.NumberOfFood)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GRIDSNAKE_CELLS_PER_SIDE", "20")
	t.Setenv("GRIDSNAKE_MAX_SPEED", "30")
	t.Setenv("GRIDSNAKE_ELECTRIC_WALLS", "false")
	t.Setenv("GRIDSNAKE_OBSTACLE_DIFFICULTY", "Medium")
	t.Setenv("GRIDSNAKE_SEED", "7")
	t.Setenv("GRIDSNAKE_NUMBER_OF_FOOD", "not-a-number")

	path := filepath.Join(t.TempDir(), "gridsnake.toml")
	if err := os.WriteFile(path, []byte("cells_per_side = 12\nnumber_of_food = 2\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if s.CellsPerSide != 20 {
		t.Errorf("Expected env to win over file, got %d", s.CellsPerSide)
	}
	if s.NumberOfFood != 2 {
		t.Errorf("Expected unparsable env ignored, got %d", s.NumberOfFood)
	}
	if s.MaxSpeed != 30 || s.ElectricWalls || s.ObstacleDifficulty != parameter.DifficultyMedium || s.Seed != 7 {
		t.Errorf("Expected env overrides, got %+v", s)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestRulesAndEncode(t *testing.T) {
	s := Default()
	s.CellsPerSide = 21
	s.ElectricWalls = false
	r := s.Rules()
	if r.Start.X != 10 || r.Start.Y != 10 {
		t.Errorf("Expected start at center, got %v", r.Start)
	}
	if !r.WrapMode() || r.FoodCount != s.NumberOfFood || r.Palette != s.SnakePalette {
		t.Errorf("Expected rules mirror settings, got %+v", r)
	}

	var buf bytes.Buffer
	if err := s.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	back, err := Parse(buf.String())
	if err != nil {
		t.Fatalf("Parse of encoded settings failed: %v", err)
	}
	if back != s {
		t.Errorf("Expected encoded settings to parse back, got %+v", back)
	}
}
