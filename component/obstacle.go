package component

// ObstacleComponent tags a static blocking cell
type ObstacleComponent struct {
	Generated bool // Placed by the obstacle generator rather than a fixed layout
}
