package i

import dmn "github.com/beka-birhanu/tank-maze/domain"

// LevelBuilder generates playable maze levels.
type LevelBuilder interface {
	// Build generates a level with randomly sampled odd dimensions.
	// A nil loopy uses the configured mode.
	Build(loopy *bool) (*dmn.Level, error)

	// BuildSized generates a level with the given number of cells.
	// A nil loopy uses the configured mode.
	BuildSized(width, height int, loopy *bool) (*dmn.Level, error)
}
