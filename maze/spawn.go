package maze

// RandomCell picks a cell uniformly at random.
func (m *Maze) RandomCell(rng Source) Cell {
	return Cell{Col: rng.IntN(m.width), Row: rng.IntN(m.height)}
}

// RandomCells picks n distinct cells uniformly at random.
func (m *Maze) RandomCells(n int, rng Source) ([]Cell, error) {
	total := m.width * m.height
	if n > total {
		return nil, ErrTooManyCells
	}
	if n <= 0 {
		return nil, nil
	}

	// Partial Fisher-Yates over the cell indices.
	indices := make([]int, total)
	for i := range indices {
		indices[i] = i
	}
	cells := make([]Cell, n)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(total-i)
		indices[i], indices[j] = indices[j], indices[i]
		cells[i] = Cell{Col: indices[i] % m.width, Row: indices[i] / m.width}
	}
	return cells, nil
}
