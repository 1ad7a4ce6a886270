package parameter

import (
	"fmt"
	"strings"
)

// Obstacle generation
const (
	// ObstacleMaxRetries is the number of full-count placement attempts
	ObstacleMaxRetries = 100

	// Safe zone half-extents around the snake start: |x-sx| < W and |y-sy| < H
	ObstacleSafeZoneWidth  = 8
	ObstacleSafeZoneHeight = 2

	// ObstacleTrapSides is the blocked-side count that makes a free cell a trap
	ObstacleTrapSides = 3
)

// Difficulty selects the share of cells filled with obstacles
type Difficulty int

const (
	DifficultyNone Difficulty = iota
	DifficultyEasy
	DifficultyMedium
	DifficultyHard
	DifficultyImpossible
)

var difficultyNames = [...]string{"None", "Easy", "Medium", "Hard", "Impossible"}

var difficultyPercent = [...]float64{0.0, 0.04, 0.06, 0.10, 0.15}

func (d Difficulty) String() string {
	if d < 0 || int(d) >= len(difficultyNames) {
		return "Unknown"
	}
	return difficultyNames[d]
}

// Percent is the share of total cells to fill, zero for unknown values
func (d Difficulty) Percent() float64 {
	if d < 0 || int(d) >= len(difficultyPercent) {
		return 0
	}
	return difficultyPercent[d]
}

// ObstacleCount is int(total * percent)
func (d Difficulty) ObstacleCount(totalCells int) int {
	return int(float64(totalCells) * d.Percent())
}

// ParseDifficulty accepts the display names case-insensitively
func ParseDifficulty(s string) (Difficulty, bool) {
	for i, name := range difficultyNames {
		if strings.EqualFold(name, s) {
			return Difficulty(i), true
		}
	}
	return DifficultyNone, false
}

// Difficulties lists all levels in ascending order
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyNone, DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyImpossible}
}

// MarshalText lets settings files carry the display name
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Difficulty) UnmarshalText(b []byte) error {
	v, ok := ParseDifficulty(string(b))
	if !ok {
		return fmt.Errorf("unknown obstacle difficulty %q", string(b))
	}
	*d = v
	return nil
}
