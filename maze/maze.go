/*
Package maze provides tools for carving rectangular mazes on a doubled grid.

A maze of width x height cells is stored as a (2*height+1) x (2*width+1) grid
of bytes where every odd/odd position is a cell, every odd/even position is
a wall-slot between two cells and the outer ring is border. Carving uses a
randomized depth-first search ("recursive backtracker") and produces a perfect
maze. An optional pass opens extra walls at random to introduce loops.

The package also maps a finished grid to world-space wall rectangles, see
Emitter.
*/
package maze

import (
	"errors"
	"strings"
)

// Grid values.
const (
	Passage uint8 = 0
	Wall    uint8 = 1
)

var (
	ErrInvalidDimensions  = errors.New("maze dimensions must be positive")
	ErrPositionOutOfRange = errors.New("position out of range")
	ErrInvalidProbability = errors.New("deletion probability must be within [0, 1]")
	ErrInvalidWallSize    = errors.New("wall length and thickness must be positive")
	ErrNoOddInRange       = errors.New("range contains no odd value")
	ErrRangeTooWide       = errors.New("range is wider than the largest int")
	ErrTooManyCells       = errors.New("more cells requested than the maze holds")
)

// Cell is a logical maze cell.
type Cell struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// position returns the grid position of the cell.
func (c Cell) position() Position {
	return Position{X: 2*c.Col + 1, Y: 2*c.Row + 1}
}

// Maze is a rectangular maze on a doubled grid.
type Maze struct {
	width  int       // Number of cell columns.
	height int       // Number of cell rows.
	grid   [][]uint8 // grid[y][x], Wall or Passage.
}

// New allocates a maze of the given number of cells and carves it.
func New(width, height int, rng Source) (*Maze, error) {
	m, err := newBlank(width, height)
	if err != nil {
		return nil, err
	}

	m.carve(Position{X: 1, Y: 1}, rng)
	return m, nil
}

// Generate builds a maze and, in loopy mode, runs the random deletion pass.
func Generate(width, height int, opts Options, rng Source) (*Maze, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	m, err := New(width, height, rng)
	if err != nil {
		return nil, err
	}

	if opts.Loopy {
		if _, err := m.RemoveRandomWalls(opts.DeletionProbability, rng); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// newBlank returns an all-wall grid with every cell slot cleared.
func newBlank(width, height int) (*Maze, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	grid := make([][]uint8, 2*height+1)
	for y := range grid {
		grid[y] = make([]uint8, 2*width+1)
		for x := range grid[y] {
			grid[y][x] = Wall
		}
	}

	for y := 1; y < len(grid); y += 2 {
		for x := 1; x < len(grid[y]); x += 2 {
			grid[y][x] = Passage
		}
	}

	return &Maze{width: width, height: height, grid: grid}, nil
}

// Width returns the number of cell columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of cell rows.
func (m *Maze) Height() int { return m.height }

// GridWidth returns the number of grid columns, 2*Width()+1.
func (m *Maze) GridWidth() int { return 2*m.width + 1 }

// GridHeight returns the number of grid rows, 2*Height()+1.
func (m *Maze) GridHeight() int { return 2*m.height + 1 }

// At returns the grid value at (x, y) and whether the position is on the grid.
func (m *Maze) At(x, y int) (uint8, bool) {
	if !m.contains(Position{X: x, Y: y}) {
		return 0, false
	}
	return m.grid[y][x], true
}

// IsWall reports whether (x, y) is on the grid and holds a wall.
func (m *Maze) IsWall(x, y int) bool {
	v, ok := m.At(x, y)
	return ok && v == Wall
}

// Grid returns a copy of the grid, indexed [y][x].
func (m *Maze) Grid() [][]uint8 {
	out := make([][]uint8, len(m.grid))
	for y, row := range m.grid {
		out[y] = append([]uint8(nil), row...)
	}
	return out
}

// Clone returns a deep copy of the maze.
func (m *Maze) Clone() *Maze {
	return &Maze{width: m.width, height: m.height, grid: m.Grid()}
}

// InBound reports whether the cell lies inside the maze.
func (m *Maze) InBound(c Cell) bool {
	return c.Col >= 0 && c.Col < m.width && c.Row >= 0 && c.Row < m.height
}

// OpenWallSlots counts interior wall-slots that are passages.
func (m *Maze) OpenWallSlots() int {
	open := 0
	m.eachInteriorWallSlot(func(p Position) {
		if m.grid[p.Y][p.X] == Passage {
			open++
		}
	})
	return open
}

// contains reports whether p is a valid grid index.
func (m *Maze) contains(p Position) bool {
	return p.X >= 0 && p.Y >= 0 && p.Y < len(m.grid) && p.X < len(m.grid[p.Y])
}

// eachInteriorWallSlot calls fn for every wall-slot not on the border.
func (m *Maze) eachInteriorWallSlot(fn func(Position)) {
	for y := 1; y < len(m.grid)-1; y++ {
		// Wall-slots have exactly one odd coordinate.
		start := 1
		if y%2 == 1 {
			start = 2
		}
		for x := start; x < len(m.grid[y])-1; x += 2 {
			fn(Position{X: x, Y: y})
		}
	}
}

// String provides a textual representation of the grid, '#' for walls.
// Rows are printed from the highest Y down so that Up points up.
func (m *Maze) String() string {
	var b strings.Builder
	for y := len(m.grid) - 1; y >= 0; y-- {
		for _, v := range m.grid[y] {
			if v == Wall {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
