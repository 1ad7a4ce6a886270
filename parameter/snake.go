package parameter

// Snake speed in cells per second
const (
	SpeedInitialDefault = 4.0
	SpeedInitialMin     = 1.0
	SpeedInitialMax     = 40.0
	SpeedInitialStep    = 0.5

	SpeedMaxDefault = 20.0
	SpeedMaxMin     = 4.0
	SpeedMaxMax     = 60.0
	SpeedMaxStep    = 1.0

	// SpeedFloor is the lowest speed a slowing fruit can push the snake to
	SpeedFloor = 1.0
)

// Snake spawn state
const (
	SnakeInitialSize = 1
)

// Hunger: seconds until starvation is HungerBudget / speed
const (
	HungerBudget       = 50.0
	HungerDefaultMaxMs = 10000.0
)

// PaletteDefault names the palette used when settings name none or an unknown one
const PaletteDefault = "Classic Green"

// Palette is a named head/tail color pair
type Palette struct {
	Name string
	Head string
	Tail string
}

// SnakePalettes lists selectable snake colors, default first
var SnakePalettes = []Palette{
	{"Classic Green", "#00aa00", "#00ff00"},
	{"Fire", "#ff4500", "#ff6347"},
	{"Ocean", "#0066cc", "#00bfff"},
	{"Purple", "#8a2be2", "#da70d6"},
	{"Gold", "#ffd700", "#ffff00"},
	{"Pink", "#ff1493", "#ff69b4"},
	{"Cyan", "#00ced1", "#00ffff"},
	{"Orange", "#ff8c00", "#ffa500"},
	{"Red", "#dc143c", "#ff6b6b"},
	{"Forest", "#228b22", "#32cd32"},
}

// PaletteByName returns the named palette, falling back to the default
func PaletteByName(name string) Palette {
	for _, p := range SnakePalettes {
		if p.Name == name {
			return p
		}
	}
	return SnakePalettes[0]
}

// Colors for board elements
const (
	ColorDeadHead = "#4b0082"
	ColorObstacle = "#666666"
	ColorArena    = "#202020"
	ColorGrid     = "#3c3c3b"
	ColorScore    = "#ffffff"
	ColorMessage  = "#808080"
)
