package engine

import (
	"errors"
	"fmt"
)

// Tile is the coarse per-cell classification handed to renderers
// Gameplay authority lives in the entity registry, not here
type Tile uint8

const (
	TileEmpty Tile = iota
	TileSnakeHead
	TileSnakeBody
	TileFood
	TileObstacle
	TileWall
)

func (t Tile) String() string {
	switch t {
	case TileEmpty:
		return "empty"
	case TileSnakeHead:
		return "snake_head"
	case TileSnakeBody:
		return "snake_body"
	case TileFood:
		return "food"
	case TileObstacle:
		return "obstacle"
	case TileWall:
		return "wall"
	}
	return "unknown"
}

// ErrInvalidDimensions is returned for boards smaller than 1x1 or with a non-positive cell size
var ErrInvalidDimensions = errors.New("invalid board dimensions")

// BoundsError reports an access outside the board
type BoundsError struct {
	X, Y          int
	Width, Height int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("position (%d, %d) is out of bounds for board of size (%d, %d)", e.X, e.Y, e.Width, e.Height)
}

// TileUpdate is one entry of a SetTiles batch
type TileUpdate struct {
	X, Y int
	Tile Tile
}

// Board is a fixed-size row-major tile grid
// Dimensions never change; a resized board is a new Board
type Board struct {
	width    int
	height   int
	cellSize int
	tiles    []Tile // index y*width + x
}

// NewBoard creates a width x height grid of TileEmpty
func NewBoard(width, height, cellSize int) (*Board, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("%w: %dx%d, minimum is 1x1", ErrInvalidDimensions, width, height)
	}
	if cellSize < 1 {
		return nil, fmt.Errorf("%w: cell size %d", ErrInvalidDimensions, cellSize)
	}
	return &Board{
		width:    width,
		height:   height,
		cellSize: cellSize,
		tiles:    make([]Tile, width*height),
	}, nil
}

func (b *Board) Width() int      { return b.width }
func (b *Board) Height() int     { return b.height }
func (b *Board) CellSize() int   { return b.cellSize }
func (b *Board) TotalCells() int { return b.width * b.height }
func (b *Board) IsSquare() bool  { return b.width == b.height }

// InBounds reports whether (x, y) addresses a cell
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

func (b *Board) check(x, y int) error {
	if !b.InBounds(x, y) {
		return &BoundsError{X: x, Y: y, Width: b.width, Height: b.height}
	}
	return nil
}

// Tile returns the tile at (x, y)
func (b *Board) Tile(x, y int) (Tile, error) {
	if err := b.check(x, y); err != nil {
		return TileEmpty, err
	}
	return b.tiles[y*b.width+x], nil
}

// SetTile writes the tile at (x, y)
func (b *Board) SetTile(x, y int, t Tile) error {
	if err := b.check(x, y); err != nil {
		return err
	}
	b.tiles[y*b.width+x] = t
	return nil
}

// SetTiles applies a batch after validating every position
// On error the board is unchanged
func (b *Board) SetTiles(updates []TileUpdate) error {
	for _, u := range updates {
		if err := b.check(u.X, u.Y); err != nil {
			return err
		}
	}
	for _, u := range updates {
		b.tiles[u.Y*b.width+u.X] = u.Tile
	}
	return nil
}

// Clear resets every cell to t
func (b *Board) Clear(t Tile) {
	for i := range b.tiles {
		b.tiles[i] = t
	}
}

// Row returns a copy of row y
func (b *Board) Row(y int) ([]Tile, error) {
	if err := b.check(0, y); err != nil {
		return nil, err
	}
	row := make([]Tile, b.width)
	copy(row, b.tiles[y*b.width:(y+1)*b.width])
	return row, nil
}

// Column returns a copy of column x
func (b *Board) Column(x int) ([]Tile, error) {
	if err := b.check(x, 0); err != nil {
		return nil, err
	}
	col := make([]Tile, b.height)
	for y := 0; y < b.height; y++ {
		col[y] = b.tiles[y*b.width+x]
	}
	return col, nil
}

// Tiles returns a copy of the whole grid in row-major order
func (b *Board) Tiles() []Tile {
	out := make([]Tile, len(b.tiles))
	copy(out, b.tiles)
	return out
}

// Count returns the number of cells holding t
func (b *Board) Count(t Tile) int {
	n := 0
	for _, v := range b.tiles {
		if v == t {
			n++
		}
	}
	return n
}
