package maze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPositionStep(t *testing.T) {
	p := Position{X: 1, Y: 1}

	next, err := p.Step(Up, 2)
	assert.NoError(t, err)
	assert.Equal(t, Position{X: 1, Y: 3}, next)

	next, err = p.Step(Right, 2)
	assert.NoError(t, err)
	assert.Equal(t, Position{X: 3, Y: 1}, next)

	next, err = p.Step(Left, 1)
	assert.NoError(t, err)
	assert.Equal(t, Position{X: 0, Y: 1}, next)

	_, err = p.Step(Left, 2)
	assert.ErrorIs(t, err, ErrPositionOutOfRange)
	_, err = p.Step(Down, 2)
	assert.ErrorIs(t, err, ErrPositionOutOfRange)
	_, err = p.Step(Direction(9), 1)
	assert.ErrorIs(t, err, ErrPositionOutOfRange)

	assert.Equal(t, "Down", Down.String())
	assert.Equal(t, "Unknown", Direction(9).String())
}
