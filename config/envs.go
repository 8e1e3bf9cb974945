package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP           string  // Host IP for the preview server
	RESTPort         int     // Port for the REST API
	GinMode          string  // Mode for the Gin framework (e.g., release, debug, test)
	MazeMinSize      int     // Smallest maze side, inclusive
	MazeMaxSize      int     // Largest maze side, exclusive
	MazeLoopy        bool    // Run the random wall deletion pass
	MazeDeletionProb float64 // Probability of deleting each interior wall in loopy mode
	WallLength       float64 // Length of one wall in world units
	WallThickness    float64 // Thickness of one wall in world units
	MazeSpawns       int     // Number of spawn cells picked per level
	MazeSeed         uint64  // Seed for the random source, 0 seeds from the clock
	ScreenWidth      int     // Preview window width
	ScreenHeight     int     // Preview window height
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:           getEnvWithDefault("HOST_IP", "localhost"),
		RESTPort:         getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:          getEnvWithDefault("GIN_MODE", "release"),
		MazeMinSize:      getEnvAsIntWithDefault("MAZE_MIN_SIZE", 5),
		MazeMaxSize:      getEnvAsIntWithDefault("MAZE_MAX_SIZE", 11),
		MazeLoopy:        getEnvAsBoolWithDefault("MAZE_LOOPY", false),
		MazeDeletionProb: getEnvAsFloatWithDefault("MAZE_DELETION_PROB", 0.3),
		WallLength:       getEnvAsFloatWithDefault("WALL_LENGTH", 50),
		WallThickness:    getEnvAsFloatWithDefault("WALL_THICKNESS", 5),
		MazeSpawns:       getEnvAsIntWithDefault("MAZE_SPAWNS", 2),
		MazeSeed:         getEnvAsUintWithDefault("MAZE_SEED", 0),
		ScreenWidth:      getEnvAsIntWithDefault("SCREEN_WIDTH", 1024),
		ScreenHeight:     getEnvAsIntWithDefault("SCREEN_HEIGHT", 768),
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable or logs a fatal error if it cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvAsUintWithDefault retrieves an unsigned integer environment variable or logs a fatal error if it cannot be parsed.
func getEnvAsUintWithDefault(key string, defaultValue uint64) uint64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseUint(valueStr, 10, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an unsigned integer: %v", key, err)
	}
	return value
}

// getEnvAsFloatWithDefault retrieves a float environment variable or logs a fatal error if it cannot be parsed.
func getEnvAsFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a number: %v", key, err)
	}
	return value
}

// getEnvAsBoolWithDefault retrieves a boolean environment variable or logs a fatal error if it cannot be parsed.
func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be a boolean: %v", key, err)
	}
	return value
}
