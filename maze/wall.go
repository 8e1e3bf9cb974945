package maze

import (
	"encoding/json"
	"fmt"
)

// Orientation tells which way a wall runs.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	default:
		panic(fmt.Sprintf("maze: unreachable orientation %d", int(o)))
	}
}

// MarshalJSON encodes the orientation by name.
func (o Orientation) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.String())
}

// Placement is one wall in maze-local world space.
// X and Y are the wall center; the maze center sits at the origin and Y grows
// toward the Up direction.
type Placement struct {
	X           float32     `json:"x"`
	Y           float32     `json:"y"`
	Width       float32     `json:"width"`
	Height      float32     `json:"height"`
	Orientation Orientation `json:"orientation"`
	Slot        Position    `json:"slot"` // Grid position of the wall-slot.
}

// Emitter converts a finished maze into wall placements.
type Emitter struct {
	Length    float32 // Length of one wall, equal to the width of one cell.
	Thickness float32 // Thickness of a wall.
}

// size returns the rectangle dimensions for a wall of the given orientation.
func (e Emitter) size(o Orientation) (float32, float32) {
	switch o {
	case Horizontal:
		return e.Length, e.Thickness
	case Vertical:
		return e.Thickness, e.Length
	default:
		panic(fmt.Sprintf("maze: unreachable orientation %d", int(o)))
	}
}

// center maps a grid position to maze-local coordinates.
// One grid step is half a wall length; subtracting half the grid extent puts
// the middle of the grid on the origin.
func (e Emitter) center(m *Maze, p Position) (float32, float32) {
	half := e.Length / 2
	x := float32(p.X-m.width) * half
	y := float32(p.Y-m.height) * half
	return x, y
}

// Emit calls fn for every standing wall, horizontal walls first.
// The maze is not modified.
func (e Emitter) Emit(m *Maze, fn func(Placement)) {
	// Horizontal wall-slots: even row, odd column.
	for y := 0; y < len(m.grid); y += 2 {
		for x := 1; x < len(m.grid[y]); x += 2 {
			if m.grid[y][x] == Wall {
				fn(e.placement(m, Position{X: x, Y: y}, Horizontal))
			}
		}
	}

	// Vertical wall-slots: odd row, even column.
	for y := 1; y < len(m.grid); y += 2 {
		for x := 0; x < len(m.grid[y]); x += 2 {
			if m.grid[y][x] == Wall {
				fn(e.placement(m, Position{X: x, Y: y}, Vertical))
			}
		}
	}
}

// Walls returns every standing wall as a slice.
func (e Emitter) Walls(m *Maze) []Placement {
	var walls []Placement
	e.Emit(m, func(p Placement) {
		walls = append(walls, p)
	})
	return walls
}

// CellCenter returns the maze-local position of the center of a cell.
func (e Emitter) CellCenter(m *Maze, c Cell) (float32, float32) {
	return e.center(m, c.position())
}

func (e Emitter) placement(m *Maze, slot Position, o Orientation) Placement {
	x, y := e.center(m, slot)
	w, h := e.size(o)
	return Placement{X: x, Y: y, Width: w, Height: h, Orientation: o, Slot: slot}
}
