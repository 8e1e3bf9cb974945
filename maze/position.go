package maze

// Direction is one of the four axis-aligned moves on the grid.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// directions lists every Direction in declaration order.
var directions = [4]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Unknown"
	}
}

// Position is a signed grid coordinate used while walking the grid.
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Step moves the position n grid units toward d.
// Moving below zero on either axis returns ErrPositionOutOfRange.
func (p Position) Step(d Direction, n int) (Position, error) {
	next := p
	switch d {
	case Up:
		next.Y += n
	case Down:
		if next.Y < n {
			return p, ErrPositionOutOfRange
		}
		next.Y -= n
	case Left:
		if next.X < n {
			return p, ErrPositionOutOfRange
		}
		next.X -= n
	case Right:
		next.X += n
	default:
		return p, ErrPositionOutOfRange
	}
	return next, nil
}
