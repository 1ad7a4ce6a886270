package prefab

import (
	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/parameter"
)

var fruitTable = map[component.FruitKind]parameter.Fruit{
	component.FruitApple:  parameter.FruitApple,
	component.FruitGrape:  parameter.FruitGrape,
	component.FruitOrange: parameter.FruitOrange,
}

var fruitGlyphs = map[component.FruitKind]rune{
	component.FruitApple:  '●',
	component.FruitGrape:  '◆',
	component.FruitOrange: '◉',
}

// FruitKinds lists spawnable fruit in table order
func FruitKinds() []component.FruitKind {
	return []component.FruitKind{component.FruitApple, component.FruitGrape, component.FruitOrange}
}

// FruitStats returns the tuning row for kind
func FruitStats(kind component.FruitKind) parameter.Fruit {
	if f, ok := fruitTable[kind]; ok {
		return f
	}
	return parameter.FruitApple
}

// CreateFood registers a fruit of kind at p; p must lie on the board
func CreateFood(w *engine.World, p core.Point, kind component.FruitKind) (core.Entity, error) {
	if err := checkCell(w, p); err != nil {
		return 0, err
	}
	stats := FruitStats(kind)
	return w.Registry.Add(&engine.Food{
		Position: component.NewPosition(p.X, p.Y),
		Edible: component.EdibleComponent{
			Kind:            kind,
			Points:          stats.Points,
			Growth:          stats.Growth,
			SpeedMultiplier: stats.SpeedMultiplier,
		},
		Renderable: component.RenderableComponent{
			Glyph: fruitGlyphs[kind],
			Color: core.MustHex(stats.Color),
			Layer: 1,
		},
	}), nil
}

// CreateApple is CreateFood for the default fruit
func CreateApple(w *engine.World, p core.Point) (core.Entity, error) {
	return CreateFood(w, p, component.FruitApple)
}
