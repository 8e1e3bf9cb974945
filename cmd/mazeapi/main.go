package main

import (
	"fmt"
	"os"

	"github.com/beka-birhanu/tank-maze/api"
	api_i "github.com/beka-birhanu/tank-maze/api/i"
	mazeapi "github.com/beka-birhanu/tank-maze/api/maze"
	"github.com/beka-birhanu/tank-maze/config"
	logger "github.com/beka-birhanu/tank-maze/infrastruture/log"
	"github.com/beka-birhanu/tank-maze/service"
	"github.com/beka-birhanu/tank-maze/service/i"
)

// Global variables for dependencies
var (
	levelBuilder   i.LevelBuilder
	mazeController api_i.Controller
	router         *api.Router
	appLogger      i.Logger
)

func initLevelBuilder() {
	levelLogger, err := logger.New("LEVEL-BUILDER", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level builder logger: %v", err))
		os.Exit(1)
	}

	levelBuilder, err = service.NewLevelBuilder(config.Envs.RandomSource(), levelLogger, &service.LevelOptions{
		MinSize: config.Envs.MazeMinSize,
		MaxSize: config.Envs.MazeMaxSize,
		Spawns:  config.Envs.MazeSpawns,
		Maze:    config.Envs.MazeOptions(),
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating level builder: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Level builder initialized")
}

func initMazeController() {
	mazeController = mazeapi.NewMazeController(levelBuilder)
	appLogger.Info("Maze controller initialized")
}

func initRouter() {
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		GinMode:     config.Envs.GinMode,
		Controllers: []api_i.Controller{mazeController},
	})
	appLogger.Info("Router initialized")
}

func main() {
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Creating app logger: %v\n", err)
		os.Exit(1)
	}

	initLevelBuilder()
	initMazeController()
	initRouter()

	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
