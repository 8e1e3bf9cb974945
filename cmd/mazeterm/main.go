package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/tank-maze/config"
	logger "github.com/beka-birhanu/tank-maze/infrastruture/log"
	"github.com/beka-birhanu/tank-maze/renderer/terminal"
	"github.com/beka-birhanu/tank-maze/service"
	"github.com/gdamore/tcell/v2"
)

func main() {
	// The screen owns stdout, so logs go to stderr.
	appLogger, err := logger.New("MAZETERM", config.ColorGreen, os.Stderr)
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

	s, err := tcell.NewScreen()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating screen: %v", err))
		os.Exit(1)
	}
	if err := s.Init(); err != nil {
		appLogger.Error(fmt.Sprintf("Initializing screen: %v", err))
		os.Exit(1)
	}
	defer s.Fini()
	s.HideCursor()

	view, err := terminal.NewView(s, levelBuilder, appLogger)
	if err != nil {
		s.Fini()
		appLogger.Error(fmt.Sprintf("Building first level: %v", err))
		os.Exit(1)
	}
	view.Run()
}
