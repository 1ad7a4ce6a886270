package engine

import (
	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
)

// Kind identifies an entity variant
type Kind uint8

const (
	KindSnake Kind = iota
	KindFood
	KindObstacle
	kindCount
)

func (k Kind) String() string {
	switch k {
	case KindSnake:
		return "snake"
	case KindFood:
		return "food"
	case KindObstacle:
		return "obstacle"
	}
	return "unknown"
}

// Entity is the closed union of game objects; only *Snake, *Food and *Obstacle implement it
type Entity interface {
	Kind() Kind
	Components() component.Mask
	sealed()
}

// Positioned is implemented by every variant with a grid position
type Positioned interface {
	Entity
	Pos() *component.PositionComponent
}

// Moving is implemented by variants that carry velocity
type Moving interface {
	Positioned
	Vel() *component.VelocityComponent
}

// Drawable is implemented by variants with a render hint
type Drawable interface {
	Positioned
	Render() *component.RenderableComponent
}

// Snake is the player-controlled entity
type Snake struct {
	Position      component.PositionComponent
	Velocity      component.VelocityComponent
	Body          component.SnakeBodyComponent
	Input         component.InputBufferComponent
	Renderable    component.RenderableComponent
	Palette       component.PaletteComponent
	Interpolation component.InterpolationComponent
	Hunger        *component.HungerComponent // nil when starvation is off
}

func (*Snake) Kind() Kind { return KindSnake }
func (*Snake) sealed()    {}

func (s *Snake) Components() component.Mask {
	m := component.MaskPosition | component.MaskVelocity | component.MaskSnakeBody |
		component.MaskInputBuffer | component.MaskRenderable | component.MaskPalette |
		component.MaskInterpolation
	if s.Hunger != nil {
		m |= component.MaskHunger
	}
	return m
}

func (s *Snake) Pos() *component.PositionComponent      { return &s.Position }
func (s *Snake) Vel() *component.VelocityComponent      { return &s.Velocity }
func (s *Snake) Render() *component.RenderableComponent { return &s.Renderable }

// Head returns the current head cell
func (s *Snake) Head() core.Point {
	return s.Position.Point()
}

// Occupies reports whether the head or any segment sits on pt
func (s *Snake) Occupies(pt core.Point) bool {
	return s.Head() == pt || s.Body.Occupies(pt)
}

// Cells returns head then segments
func (s *Snake) Cells() []core.Point {
	out := make([]core.Point, 0, len(s.Body.Segments)+1)
	out = append(out, s.Head())
	for _, seg := range s.Body.Segments {
		out = append(out, seg.Point())
	}
	return out
}

// Food is an edible pickup
type Food struct {
	Position   component.PositionComponent
	Edible     component.EdibleComponent
	Renderable component.RenderableComponent
}

func (*Food) Kind() Kind { return KindFood }
func (*Food) sealed()    {}

func (*Food) Components() component.Mask {
	return component.MaskPosition | component.MaskEdible | component.MaskRenderable
}

func (f *Food) Pos() *component.PositionComponent      { return &f.Position }
func (f *Food) Render() *component.RenderableComponent { return &f.Renderable }

// Obstacle is a static blocking cell
type Obstacle struct {
	Position   component.PositionComponent
	Tag        component.ObstacleComponent
	Renderable component.RenderableComponent
}

func (*Obstacle) Kind() Kind { return KindObstacle }
func (*Obstacle) sealed()    {}

func (*Obstacle) Components() component.Mask {
	return component.MaskPosition | component.MaskObstacle | component.MaskRenderable
}

func (o *Obstacle) Pos() *component.PositionComponent      { return &o.Position }
func (o *Obstacle) Render() *component.RenderableComponent { return &o.Renderable }
