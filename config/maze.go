package config

import "github.com/beka-birhanu/tank-maze/maze"

// MazeOptions returns the maze generation options described by the config.
func (c Config) MazeOptions() maze.Options {
	return maze.Options{
		Loopy:               c.MazeLoopy,
		DeletionProbability: c.MazeDeletionProb,
		WallLength:          float32(c.WallLength),
		WallThickness:       float32(c.WallThickness),
	}
}

// RandomSource returns a seeded source when MAZE_SEED is set, a clock seeded one otherwise.
func (c Config) RandomSource() maze.Source {
	if c.MazeSeed != 0 {
		return maze.NewSource(c.MazeSeed)
	}
	return maze.NewRandomSource()
}
