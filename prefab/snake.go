package prefab

import (
	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/parameter"
)

// SnakeOptions configures a new snake
type SnakeOptions struct {
	Start     core.Point
	Direction core.Direction
	Speed     float64
	Size      int
	Palette   string
	Hunger    bool
}

// DefaultSnakeOptions starts a size-1 snake at the world start heading right
func DefaultSnakeOptions(w *engine.World) SnakeOptions {
	return SnakeOptions{
		Start:     w.Rules.Start,
		Direction: core.DirRight,
		Speed:     w.Rules.InitialSpeed,
		Size:      parameter.SnakeInitialSize,
		Palette:   w.Rules.Palette,
		Hunger:    w.Rules.Hunger,
	}
}

// CreateSnake registers a snake; the start cell must lie on the board
func CreateSnake(w *engine.World, opts SnakeOptions) (core.Entity, error) {
	if err := checkCell(w, opts.Start); err != nil {
		return 0, err
	}
	pal := parameter.PaletteByName(opts.Palette)
	head := core.MustHex(pal.Head)

	s := &engine.Snake{
		Position: component.NewPosition(opts.Start.X, opts.Start.Y),
		Velocity: component.VelocityComponent{DX: opts.Direction.DX, DY: opts.Direction.DY, Speed: opts.Speed},
		Body: component.SnakeBodyComponent{
			Size:  max(1, opts.Size),
			Alive: true,
		},
		Renderable: component.RenderableComponent{Glyph: '█', Color: head, Layer: 2},
		Palette: component.PaletteComponent{
			Name: pal.Name,
			Head: head,
			Tail: core.MustHex(pal.Tail),
		},
	}
	if opts.Hunger {
		s.Hunger = &component.HungerComponent{
			RemainingMs: parameter.HungerDefaultMaxMs,
			MaxMs:       parameter.HungerDefaultMaxMs,
		}
	}
	return w.Registry.Add(s), nil
}

func checkCell(w *engine.World, p core.Point) error {
	_, err := w.Board.Tile(p.X, p.Y)
	return err
}
