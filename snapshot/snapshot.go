// Package snapshot captures a read-only copy of a world for renderers and network clients
package snapshot

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/lixenwraith/gridsnake/component"
	"github.com/lixenwraith/gridsnake/engine"
	"github.com/lixenwraith/gridsnake/system"
)

// Cell is a grid coordinate
type Cell struct {
	X int `msgpack:"x"`
	Y int `msgpack:"y"`
}

// Segment is a tail cell with its previous position for interpolation
type Segment struct {
	X     int    `msgpack:"x"`
	Y     int    `msgpack:"y"`
	PX    int    `msgpack:"px"`
	PY    int    `msgpack:"py"`
	Wrap  uint8  `msgpack:"w,omitempty"`
	Color string `msgpack:"c"`
}

// Snake is the render state of one snake; segments run head to tail
type Snake struct {
	ID       uint64    `msgpack:"id"`
	Head     Cell      `msgpack:"h"`
	PrevHead Cell      `msgpack:"ph"`
	Segments []Segment `msgpack:"sg"`
	Size     int       `msgpack:"sz"`
	Alive    bool      `msgpack:"a"`
	Speed    float64   `msgpack:"sp"`
	Alpha    float64   `msgpack:"al"`
	Wrap     uint8     `msgpack:"w,omitempty"`
	Color    string    `msgpack:"c"`
	Hunger   float64   `msgpack:"hu,omitempty"` // remaining ratio, zero when hunger is off
}

// Food is one edible
type Food struct {
	ID    uint64 `msgpack:"id"`
	X     int    `msgpack:"x"`
	Y     int    `msgpack:"y"`
	Kind  string `msgpack:"k"`
	Glyph rune   `msgpack:"g"`
	Color string `msgpack:"c"`
}

// Snapshot is the full post-tick state
type Snapshot struct {
	Tick      uint64  `msgpack:"tk"`
	Width     int     `msgpack:"w"`
	Height    int     `msgpack:"h"`
	CellSize  int     `msgpack:"cs"`
	WrapMode  bool    `msgpack:"wm"`
	Paused    bool    `msgpack:"p"`
	GameOver  bool    `msgpack:"go"`
	Cause     string  `msgpack:"dc,omitempty"`
	Score     int     `msgpack:"sc"`
	HighScore int     `msgpack:"hs"`
	Tiles     []uint8 `msgpack:"tl"`
	Snakes    []Snake `msgpack:"sn"`
	Foods     []Food  `msgpack:"fd"`
	Obstacles []Cell  `msgpack:"ob"`

	// Sounds carries sfx ids drained by a host that forwards audio to a remote client
	Sounds []string `msgpack:"sfx,omitempty"`
}

// Capture copies everything a renderer needs out of w without mutating it
func Capture(w *engine.World) *Snapshot {
	b := w.Board
	reg := w.Registry
	st := w.Resources.State

	s := &Snapshot{
		Tick:      st.Tick,
		Width:     b.Width(),
		Height:    b.Height(),
		CellSize:  b.CellSize(),
		WrapMode:  w.Rules.WrapMode(),
		Paused:    st.Paused,
		GameOver:  st.GameOver,
		Cause:     string(st.DeathCause),
		Score:     st.Score,
		HighScore: st.HighScore,
	}

	tiles := b.Tiles()
	s.Tiles = make([]uint8, len(tiles))
	for i, t := range tiles {
		s.Tiles[i] = uint8(t)
	}

	for _, id := range reg.Snakes() {
		sn, _ := reg.Snake(id)
		s.Snakes = append(s.Snakes, captureSnake(w, uint64(id), sn))
	}
	for _, id := range reg.Foods() {
		f, _ := reg.Food(id)
		s.Foods = append(s.Foods, Food{
			ID:    uint64(id),
			X:     f.Position.X,
			Y:     f.Position.Y,
			Kind:  f.Edible.Kind.String(),
			Glyph: f.Renderable.Glyph,
			Color: f.Renderable.Color.Hex(),
		})
	}
	for _, id := range reg.Obstacles() {
		o, _ := reg.Obstacle(id)
		s.Obstacles = append(s.Obstacles, Cell{X: o.Position.X, Y: o.Position.Y})
	}
	return s
}

func captureSnake(w *engine.World, id uint64, sn *engine.Snake) Snake {
	out := Snake{
		ID:       id,
		Head:     Cell{X: sn.Position.X, Y: sn.Position.Y},
		PrevHead: Cell{X: sn.Position.PrevX, Y: sn.Position.PrevY},
		Size:     sn.Body.Size,
		Alive:    sn.Body.Alive,
		Speed:    sn.Velocity.Speed,
		Alpha:    sn.Interpolation.Alpha,
		Wrap:     uint8(sn.Interpolation.Wrap),
		Color:    sn.Renderable.Color.Hex(),
	}
	if sn.Hunger != nil {
		out.Hunger = sn.Hunger.Ratio()
	}

	n := len(sn.Body.Segments) + 1
	for i, seg := range sn.Body.Segments {
		out.Segments = append(out.Segments, Segment{
			X:     seg.X,
			Y:     seg.Y,
			PX:    seg.PrevX,
			PY:    seg.PrevY,
			Wrap:  uint8(system.SegmentWrap(seg, w.Board.Width(), w.Board.Height(), w.Rules.WrapMode())),
			Color: sn.Palette.SegmentColor(i+1, n).Hex(),
		})
	}
	return out
}

// Tile returns the tile at (x, y); off-board reads are empty
func (s *Snapshot) Tile(x, y int) engine.Tile {
	if x < 0 || y < 0 || x >= s.Width || y >= s.Height {
		return engine.TileEmpty
	}
	return engine.Tile(s.Tiles[y*s.Width+x])
}

// WrapAxis decodes the wrap flag
func (seg Segment) WrapAxis() component.WrapAxis {
	return component.WrapAxis(seg.Wrap)
}

// Encode serializes s for the wire
func Encode(s *Snapshot) ([]byte, error) {
	data, err := msgpack.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

// Decode is the inverse of Encode
func Decode(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &s, nil
}
