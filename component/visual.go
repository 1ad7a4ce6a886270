package component

import "github.com/lixenwraith/gridsnake/core"

// RenderableComponent is the draw hint consumed by renderers
type RenderableComponent struct {
	Glyph rune
	Color core.RGB
	Layer int // Higher draws on top
}

// PaletteComponent colors a snake, head to tail gradient
type PaletteComponent struct {
	Name string
	Head core.RGB
	Tail core.RGB
}

// SegmentColor returns the gradient color for segment index i of n (head is -1)
func (p *PaletteComponent) SegmentColor(i, n int) core.RGB {
	if i < 0 || n <= 0 {
		return p.Head
	}
	return p.Head.Lerp(p.Tail, float64(i+1)/float64(n))
}
