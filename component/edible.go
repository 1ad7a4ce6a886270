package component

// FruitKind identifies an edible variant
type FruitKind uint8

const (
	FruitApple FruitKind = iota
	FruitGrape
	FruitOrange
)

func (k FruitKind) String() string {
	switch k {
	case FruitApple:
		return "apple"
	case FruitGrape:
		return "grape"
	case FruitOrange:
		return "orange"
	}
	return "unknown"
}

// EdibleComponent describes what eating a food grants
type EdibleComponent struct {
	Kind            FruitKind
	Points          int
	Growth          int
	SpeedMultiplier float64
}
