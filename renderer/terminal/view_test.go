package terminal

import (
	"io"
	"testing"

	logger "github.com/beka-birhanu/tank-maze/infrastruture/log"
	"github.com/beka-birhanu/tank-maze/maze"
	"github.com/beka-birhanu/tank-maze/service"
	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestView(t *testing.T) (*View, tcell.SimulationScreen) {
	t.Helper()

	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(40, 20)
	t.Cleanup(s.Fini)

	l, err := logger.New("TEST", color.FgCyan, io.Discard)
	require.NoError(t, err)
	lb, err := service.NewLevelBuilder(maze.NewSource(1), l, &service.LevelOptions{MinSize: 1, MaxSize: 2, Spawns: 1, Maze: maze.DefaultOptions()})
	require.NoError(t, err)

	v, err := NewView(s, lb, l)
	require.NoError(t, err)
	return v, s
}

func TestViewDraw(t *testing.T) {
	v, s := newTestView(t)
	v.Draw()

	_, _, style, _ := s.GetContent(0, 0)
	assert.Equal(t, wallStyle, style)
	_, _, style, _ = s.GetContent(5, 2)
	assert.Equal(t, wallStyle, style)

	r, _, style, _ := s.GetContent(2, 1)
	assert.Equal(t, '1', r)
	assert.Equal(t, spawnStyle, style)

	_, _, style, _ = s.GetContent(3, 1)
	assert.Equal(t, floorStyle, style)
}

func TestViewHandleKey(t *testing.T) {
	v, _ := newTestView(t)
	first := v.level

	assert.True(t, v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'r', tcell.ModNone)))
	assert.NotEqual(t, first.ID, v.level.ID)

	assert.True(t, v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'l', tcell.ModNone)))
	assert.True(t, v.level.Loopy)

	assert.True(t, v.HandleKey(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))
	assert.False(t, v.HandleKey(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.False(t, v.HandleKey(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
}
