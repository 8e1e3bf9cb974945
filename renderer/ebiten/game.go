// Package ebitenrender draws generated levels with ebiten.
package ebitenrender

import (
	"fmt"
	"image/color"

	dmn "github.com/beka-birhanu/tank-maze/domain"
	"github.com/beka-birhanu/tank-maze/service/i"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	backgroundColor = color.RGBA{230, 230, 230, 255}
	wallColor       = color.RGBA{102, 102, 102, 255}
	spawnColors     = []color.RGBA{
		{200, 60, 60, 255},
		{60, 90, 200, 255},
		{60, 160, 80, 255},
		{200, 160, 40, 255},
	}
)

const spawnRadius = 10

// Game shows one level at a time. R builds a new level, L toggles loopy mode.
type Game struct {
	levelBuilder i.LevelBuilder
	logger       i.Logger
	level        *dmn.Level
	loopy        bool
	screenWidth  int
	screenHeight int
}

// NewGame builds the first level and returns a Game ready for ebiten.RunGame.
func NewGame(lb i.LevelBuilder, logger i.Logger, screenWidth, screenHeight int) (*Game, error) {
	g := &Game{
		levelBuilder: lb,
		logger:       logger,
		screenWidth:  screenWidth,
		screenHeight: screenHeight,
	}

	level, err := lb.Build(nil)
	if err != nil {
		return nil, err
	}
	g.level = level
	g.loopy = level.Loopy
	return g, nil
}

// Update handles the regenerate and loopy toggle keys.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyL) {
		g.loopy = !g.loopy
		g.rebuild()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.rebuild()
	}
	return nil
}

// rebuild replaces the level, keeping its size.
func (g *Game) rebuild() {
	level, err := g.levelBuilder.BuildSized(g.level.Width, g.level.Height, &g.loopy)
	if err != nil {
		g.logger.Error(fmt.Sprintf("Rebuilding level: %v", err))
		return
	}
	g.level = level
}

// Draw renders walls and spawn points around the center of the screen.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	cx, cy := float32(g.screenWidth)/2, float32(g.screenHeight)/2
	for _, w := range g.level.Walls {
		x, y := toScreen(cx, cy, w.X, w.Y)
		vector.FillRect(screen, x-w.Width/2, y-w.Height/2, w.Width, w.Height, wallColor, false)
	}

	for n, s := range g.level.Spawns {
		x, y := toScreen(cx, cy, s.X, s.Y)
		vector.DrawFilledCircle(screen, x, y, spawnRadius, spawnColors[n%len(spawnColors)], true)
	}

	mode := "perfect"
	if g.level.Loopy {
		mode = "loopy"
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%dx%d %s  [R] regenerate  [L] toggle loops", g.level.Width, g.level.Height, mode), 10, 10)
}

// Layout keeps a fixed logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenWidth, g.screenHeight
}

// toScreen offsets a maze-local point by the screen center.
// Maze Y grows upward, screen Y grows downward.
func toScreen(cx, cy, x, y float32) (float32, float32) {
	return cx + x, cy - y
}
