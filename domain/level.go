// Package domain holds the entities shared between the level service and its consumers.
package domain

import (
	"github.com/beka-birhanu/tank-maze/maze"
	"github.com/google/uuid"
)

// Spawn is a cell where an entity may be placed, with its maze-local center.
type Spawn struct {
	Cell maze.Cell `json:"cell"`
	X    float32   `json:"x"`
	Y    float32   `json:"y"`
}

// Level is one generated maze ready to be placed into a scene.
// Wall and spawn coordinates are relative to the maze center; the consumer
// adds its own origin.
type Level struct {
	ID     uuid.UUID        `json:"id"`
	Width  int              `json:"width"`  // Width in cells
	Height int              `json:"height"` // Height in cells
	Loopy  bool             `json:"loopy"`
	Walls  []maze.Placement `json:"walls"`
	Spawns []Spawn          `json:"spawns"`
	Maze   *maze.Maze       `json:"-"`
}
