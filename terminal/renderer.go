package terminal

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/core"
	"github.com/lixenwraith/gridsnake/parameter"
	"github.com/lixenwraith/gridsnake/snapshot"
	"github.com/lixenwraith/gridsnake/system"
)

// CellColumns is the terminal width of one grid cell, keeping cells roughly square
const CellColumns = 2

// Renderer draws snapshots centered on a tcell screen
// Row 0 is the status line; the board sits below it inside a one-cell border
type Renderer struct {
	screen tcell.Screen
	colors map[string]tcell.Color

	originX, originY int
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen: screen,
		colors: make(map[string]tcell.Color),
	}
}

// color converts a hex string, caching the result; malformed input renders white
func (r *Renderer) color(hex string) tcell.Color {
	if c, ok := r.colors[hex]; ok {
		return c
	}
	rgb, err := core.ParseHex(hex)
	if err != nil {
		rgb = core.RGBWhite
	}
	c := tcell.NewRGBColor(int32(rgb.R), int32(rgb.G), int32(rgb.B))
	r.colors[hex] = c
	return c
}

// CellOrigin returns the screen position of grid cell (x, y) from the last Draw
func (r *Renderer) CellOrigin(x, y int) (int, int) {
	return r.originX + x*CellColumns, r.originY + y
}

// Draw renders s and shows the frame
func (r *Renderer) Draw(s *snapshot.Snapshot) {
	scr := r.screen
	scr.Clear()
	w, h := scr.Size()

	r.originX = max(1, (w-s.Width*CellColumns)/2)
	r.originY = max(2, (h-s.Height)/2)

	arena := tcell.StyleDefault.Background(r.color(parameter.ColorArena))
	r.drawBorder(s, arena)
	r.drawGrid(s, arena)

	for _, o := range s.Obstacles {
		r.fillCell(o.X, o.Y, '▓', arena.Foreground(r.color(parameter.ColorObstacle)))
	}
	for _, f := range s.Foods {
		r.fillCell(f.X, f.Y, f.Glyph, arena.Foreground(r.color(f.Color)))
	}
	for _, sn := range s.Snakes {
		r.drawSnake(s, sn, arena)
	}

	r.drawStatus(s, w)
	scr.Show()
}

func (r *Renderer) drawBorder(s *snapshot.Snapshot, arena tcell.Style) {
	style := arena.Foreground(r.color(parameter.ColorGrid))
	left, top := r.originX-1, r.originY-1
	right, bottom := r.originX+s.Width*CellColumns, r.originY+s.Height
	for x := left; x <= right; x++ {
		r.screen.SetContent(x, top, '─', nil, style)
		r.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := top; y <= bottom; y++ {
		r.screen.SetContent(left, y, '│', nil, style)
		r.screen.SetContent(right, y, '│', nil, style)
	}
	r.screen.SetContent(left, top, '┌', nil, style)
	r.screen.SetContent(right, top, '┐', nil, style)
	r.screen.SetContent(left, bottom, '└', nil, style)
	r.screen.SetContent(right, bottom, '┘', nil, style)
}

func (r *Renderer) drawGrid(s *snapshot.Snapshot, arena tcell.Style) {
	dot := arena.Foreground(r.color(parameter.ColorGrid))
	for y := 0; y < s.Height; y++ {
		for x := 0; x < s.Width; x++ {
			cx, cy := r.CellOrigin(x, y)
			r.screen.SetContent(cx, cy, '·', nil, dot)
			r.screen.SetContent(cx+1, cy, ' ', nil, arena)
		}
	}
}

// fillCell draws a glyph into both columns of a cell; narrow glyphs get a blank second column
func (r *Renderer) fillCell(x, y int, glyph rune, style tcell.Style) {
	cx, cy := r.CellOrigin(x, y)
	second := ' '
	if glyph == '█' || glyph == '▓' {
		second = glyph
	}
	r.screen.SetContent(cx, cy, glyph, nil, style)
	r.screen.SetContent(cx+1, cy, second, nil, style)
}

// drawSnake draws tail segments on their cells and the head at its interpolated position
// Two columns per cell give horizontal motion half-cell resolution
func (r *Renderer) drawSnake(s *snapshot.Snapshot, sn snapshot.Snake, arena tcell.Style) {
	for _, seg := range sn.Segments {
		r.fillCell(seg.X, seg.Y, '█', arena.Foreground(r.color(seg.Color)))
	}

	if sn.Head.X < 0 || sn.Head.Y < 0 || sn.Head.X >= s.Width || sn.Head.Y >= s.Height {
		return
	}
	head := arena.Foreground(r.color(sn.Color))
	if !sn.Alive {
		r.fillCell(sn.Head.X, sn.Head.Y, '█', head)
		return
	}

	prev := core.Point{X: sn.PrevHead.X, Y: sn.PrevHead.Y}
	cur := core.Point{X: sn.Head.X, Y: sn.Head.Y}
	px, py := system.DrawPosition(prev, cur, sn.Alpha, CellColumns, component.WrapAxis(sn.Wrap))

	span := s.Width * CellColumns
	col := fold(int(math.Round(px)), span)
	row := fold(int(math.Round(py/CellColumns)), s.Height)
	r.screen.SetContent(r.originX+col, r.originY+row, '█', nil, head)
	r.screen.SetContent(r.originX+fold(col+1, span), r.originY+row, '█', nil, head)
}

func fold(v, n int) int {
	return ((v % n) + n) % n
}

func (r *Renderer) drawStatus(s *snapshot.Snapshot, width int) {
	text := fmt.Sprintf(" Score: %d  High: %d  Food: %d", s.Score, s.HighScore, len(s.Foods))
	switch {
	case s.GameOver:
		text += fmt.Sprintf("  GAME OVER (%s)  r: restart  q: quit", s.Cause)
	case s.Paused:
		text += "  PAUSED"
	}
	style := tcell.StyleDefault.Foreground(r.color(parameter.ColorScore))
	r.drawText(0, 0, text, style, width)

	if s.GameOver {
		msg := "GAME OVER"
		x := r.originX + (s.Width*CellColumns-len(msg))/2
		y := r.originY + s.Height/2
		r.drawText(x, y, msg, style.Bold(true), width)
	}
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style, width int) {
	for i, ch := range []rune(text) {
		if x+i >= width {
			return
		}
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
