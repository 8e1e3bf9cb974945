package maze

// frame is one level of the depth-first search.
type frame struct {
	pos  Position
	dirs [4]Direction
	next int // Index into dirs of the next candidate.
}

// newFrame shuffles the directions for a freshly entered cell.
func newFrame(pos Position, rng Source) frame {
	f := frame{pos: pos, dirs: directions}
	rng.Shuffle(len(f.dirs), func(i, j int) {
		f.dirs[i], f.dirs[j] = f.dirs[j], f.dirs[i]
	})
	return f
}

// carve runs the randomized depth-first search from start.
// The stack holds one frame per cell on the current path, in the same order
// a recursive implementation would keep them on the call stack.
func (m *Maze) carve(start Position, rng Source) {
	stack := []frame{newFrame(start, rng)}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		if top.next == len(top.dirs) {
			stack = stack[:len(stack)-1]
			continue
		}

		dir := top.dirs[top.next]
		top.next++

		next, err := top.pos.Step(dir, 2)
		if err != nil || !m.contains(next) || m.visited(next) {
			continue
		}

		wall, err := top.pos.Step(dir, 1)
		if err != nil {
			continue
		}
		m.grid[wall.Y][wall.X] = Passage

		stack = append(stack, newFrame(next, rng))
	}
}

// visited reports whether any wall-slot around the cell at p is open.
// A cell is only ever entered by opening one of its walls.
func (m *Maze) visited(p Position) bool {
	for _, d := range directions {
		slot, err := p.Step(d, 1)
		if err != nil || !m.contains(slot) {
			continue
		}
		if m.grid[slot.Y][slot.X] == Passage {
			return true
		}
	}
	return false
}

// RemoveRandomWalls opens every standing interior wall-slot independently
// with probability p and returns how many were opened. Border walls are
// never touched.
func (m *Maze) RemoveRandomWalls(p float64, rng Source) (int, error) {
	if p < 0 || p > 1 {
		return 0, ErrInvalidProbability
	}

	opened := 0
	m.eachInteriorWallSlot(func(slot Position) {
		if m.grid[slot.Y][slot.X] != Wall {
			return
		}
		if rng.Float64() < p {
			m.grid[slot.Y][slot.X] = Passage
			opened++
		}
	})
	return opened, nil
}
