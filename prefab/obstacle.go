package prefab

import (
	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/parameter"
)

// CreateObstacle registers a blocking cell at p; p must lie on the board
func CreateObstacle(w *engine.World, p core.Point, generated bool) (core.Entity, error) {
	if err := checkCell(w, p); err != nil {
		return 0, err
	}
	return w.Registry.Add(&engine.Obstacle{
		Position: component.NewPosition(p.X, p.Y),
		Tag:      component.ObstacleComponent{Generated: generated},
		Renderable: component.RenderableComponent{
			Glyph: '▓',
			Color: core.MustHex(parameter.ColorObstacle),
			Layer: 0,
		},
	}), nil
}
