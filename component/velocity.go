package component

import "github.com/lixenwraith/gridsnake/core"

// VelocityComponent is a per-move cell delta and a speed in cells per second
type VelocityComponent struct {
	DX, DY int
	Speed  float64
}

func (v *VelocityComponent) Direction() core.Direction {
	return core.Direction{DX: v.DX, DY: v.DY}
}

func (v *VelocityComponent) SetDirection(d core.Direction) {
	v.DX, v.DY = d.DX, d.DY
}

// MoveIntervalMs is the time between grid steps, zero when stationary
func (v *VelocityComponent) MoveIntervalMs() float64 {
	if v.Speed <= 0 {
		return 0
	}
	return 1000.0 / v.Speed
}
