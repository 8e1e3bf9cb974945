// Package terminal draws generated levels on a tcell screen.
package terminal

import (
	"fmt"

	dmn "github.com/beka-birhanu/tank-maze/domain"
	"github.com/beka-birhanu/tank-maze/service/i"
	"github.com/gdamore/tcell/v2"
)

// Each grid position is drawn two columns wide to keep cells roughly square.
const cellWidth = 2

var (
	wallStyle   = tcell.StyleDefault.Background(tcell.ColorGray)
	floorStyle  = tcell.StyleDefault
	spawnStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// View shows one level on a terminal screen.
type View struct {
	screen       tcell.Screen
	levelBuilder i.LevelBuilder
	logger       i.Logger
	level        *dmn.Level
	loopy        bool
}

// NewView builds the first level. The screen must already be initialized.
func NewView(s tcell.Screen, lb i.LevelBuilder, logger i.Logger) (*View, error) {
	level, err := lb.Build(nil)
	if err != nil {
		return nil, err
	}

	return &View{
		screen:       s,
		levelBuilder: lb,
		logger:       logger,
		level:        level,
		loopy:        level.Loopy,
	}, nil
}

// Run draws and handles keys until q or Esc is pressed.
func (v *View) Run() {
	v.Draw()
	for {
		switch ev := v.screen.PollEvent().(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			v.Draw()
		case *tcell.EventKey:
			if !v.HandleKey(ev) {
				return
			}
			v.Draw()
		case nil:
			return
		}
	}
}

// HandleKey applies a key press and reports whether the view should keep running.
func (v *View) HandleKey(ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case 'r':
		v.rebuild()
	case 'l':
		v.loopy = !v.loopy
		v.rebuild()
	}
	return true
}

func (v *View) rebuild() {
	level, err := v.levelBuilder.BuildSized(v.level.Width, v.level.Height, &v.loopy)
	if err != nil {
		v.logger.Error(fmt.Sprintf("Rebuilding level: %v", err))
		return
	}
	v.level = level
}

// Draw renders the grid with the highest row at the top.
func (v *View) Draw() {
	v.screen.Clear()

	m := v.level.Maze
	top := m.GridHeight() - 1
	for y := 0; y < m.GridHeight(); y++ {
		for x := 0; x < m.GridWidth(); x++ {
			style := floorStyle
			if m.IsWall(x, y) {
				style = wallStyle
			}
			for dx := 0; dx < cellWidth; dx++ {
				v.screen.SetContent(x*cellWidth+dx, top-y, ' ', nil, style)
			}
		}
	}

	for n, s := range v.level.Spawns {
		x, y := 2*s.Cell.Col+1, 2*s.Cell.Row+1
		v.screen.SetContent(x*cellWidth, top-y, rune('1'+n%9), nil, spawnStyle)
	}

	mode := "perfect"
	if v.level.Loopy {
		mode = "loopy"
	}
	status := fmt.Sprintf("%dx%d %s  [r] regenerate  [l] toggle loops  [q] quit", v.level.Width, v.level.Height, mode)
	for n, r := range status {
		v.screen.SetContent(n, m.GridHeight()+1, r, nil, statusStyle)
	}

	v.screen.Show()
}
