package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/tank-maze/config"
	logger "github.com/beka-birhanu/tank-maze/infrastruture/log"
	ebitenrender "github.com/beka-birhanu/tank-maze/renderer/ebiten"
	"github.com/beka-birhanu/tank-maze/service"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	appLogger, err := logger.New("TANKS", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating app logger: %v\n", err)
		os.Exit(1)
	}

	levelBuilder, err := service.NewLevelBuilder(config.Envs.RandomSource(), appLogger, &service.LevelOptions{
		MinSize: config.Envs.MazeMinSize,
		MaxSize: config.Envs.MazeMaxSize,
		Spawns:  config.Envs.MazeSpawns,
		Maze:    config.Envs.MazeOptions(),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level builder: %v", err))
		os.Exit(1)
	}

	game, err := ebitenrender.NewGame(levelBuilder, appLogger, config.Envs.ScreenWidth, config.Envs.ScreenHeight)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Building first level: %v", err))
		os.Exit(1)
	}

	ebiten.SetWindowSize(config.Envs.ScreenWidth, config.Envs.ScreenHeight)
	ebiten.SetWindowTitle("Tank Maze")

	appLogger.Info("Starting game")
	if err := ebiten.RunGame(game); err != nil {
		appLogger.Error(fmt.Sprintf("Running game: %v", err))
		os.Exit(1)
	}
}
