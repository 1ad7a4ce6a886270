package settings

import (
	"os"
	"strconv"

	"github.com/lixenwraith/gridsnake/parameter"
)

// EnvPrefix is prepended to the upper-cased TOML key
const EnvPrefix = "GRIDSNAKE_"

// ApplyEnv overrides fields from GRIDSNAKE_* variables; unparsable values are ignored
func ApplyEnv(s *Settings) {
	s.CellsPerSide = getEnvInt("CELLS_PER_SIDE", s.CellsPerSide)
	s.InitialSpeed = getEnvFloat("INITIAL_SPEED", s.InitialSpeed)
	s.MaxSpeed = getEnvFloat("MAX_SPEED", s.MaxSpeed)
	s.NumberOfFood = getEnvInt("NUMBER_OF_FOOD", s.NumberOfFood)
	s.ElectricWalls = getEnvBool("ELECTRIC_WALLS", s.ElectricWalls)
	s.BackgroundMusic = getEnvBool("BACKGROUND_MUSIC", s.BackgroundMusic)
	s.SoundEffects = getEnvBool("SOUND_EFFECTS", s.SoundEffects)
	s.FruitVariety = getEnvBool("FRUIT_VARIETY", s.FruitVariety)
	s.Hunger = getEnvBool("HUNGER", s.Hunger)
	s.Validate = getEnvBool("VALIDATE", s.Validate)

	if v := os.Getenv(EnvPrefix + "OBSTACLE_DIFFICULTY"); v != "" {
		if d, ok := parameter.ParseDifficulty(v); ok {
			s.ObstacleDifficulty = d
		}
	}
	if v := os.Getenv(EnvPrefix + "SNAKE_PALETTE"); v != "" {
		s.SnakePalette = v
	}
	if v := os.Getenv(EnvPrefix + "SEED"); v != "" {
		if i, err := strconv.ParseInt(v, 10, 64); err == nil {
			s.Seed = i
		}
	}
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if v := os.Getenv(EnvPrefix + key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}
