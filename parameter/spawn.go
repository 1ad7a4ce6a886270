package parameter

// Food spawning
const (
	// SpawnMaxAttempts bounds random cell sampling per food
	SpawnMaxAttempts = 1000

	FoodCountDefault = 1
	FoodCountMin     = 1
	FoodCountMax     = 30

	// FoodCellShare caps food at this fraction of board cells
	FoodCellShare = 0.15
)

// Fruit describes an edible variant and its spawn weight out of 100
type Fruit struct {
	Name            string
	Points          int
	Growth          int
	SpeedMultiplier float64
	Color           string
	Weight          int
}

// Fruit table, indexed by component.FruitKind
var (
	FruitApple  = Fruit{Name: "apple", Points: 10, Growth: 1, SpeedMultiplier: 1.1, Color: "#aa0000", Weight: 65}
	FruitGrape  = Fruit{Name: "grape", Points: 10, Growth: 1, SpeedMultiplier: 0.8, Color: "#800080", Weight: 25}
	FruitOrange = Fruit{Name: "orange", Points: 20, Growth: 2, SpeedMultiplier: 1.1, Color: "#ff8c00", Weight: 10}
)
