package service

import (
	"errors"
	"fmt"
	"sync"

	dmn "github.com/beka-birhanu/tank-maze/domain"
	"github.com/beka-birhanu/tank-maze/maze"
	"github.com/beka-birhanu/tank-maze/service/i"
	"github.com/google/uuid"
)

const (
	// Maze sides are sampled from [defaultMinSize, defaultMaxSize).
	defaultMinSize = 5
	defaultMaxSize = 11
	defaultSpawns  = 2
)

var (
	ErrInvalidSizeRange = errors.New("maximum maze size must exceed the minimum")
	ErrNilSource        = errors.New("random source is nil")
	ErrNilLogger        = errors.New("logger is nil")
)

// LevelOptions configures level generation.
type LevelOptions struct {
	MinSize int          // Smallest maze side, inclusive.
	MaxSize int          // Largest maze side, exclusive.
	Spawns  int          // Spawn cells picked per level, capped at the cell count.
	Maze    maze.Options // Generation and wall geometry options.
}

// LevelBuilder samples maze sizes, generates mazes and turns them into levels.
// It is safe for concurrent use.
type LevelBuilder struct {
	rng    maze.Source
	logger i.Logger
	opts   *LevelOptions
	sync.Mutex
}

// NewLevelBuilder creates a LevelBuilder. Missing options fall back to defaults.
func NewLevelBuilder(rng maze.Source, logger i.Logger, opts *LevelOptions) (*LevelBuilder, error) {
	if rng == nil {
		return nil, ErrNilSource
	}

	if logger == nil {
		return nil, ErrNilLogger
	}

	if opts == nil {
		opts = &LevelOptions{
			MinSize: defaultMinSize,
			MaxSize: defaultMaxSize,
			Spawns:  defaultSpawns,
			Maze:    maze.DefaultOptions(),
		}
	}

	if opts.MinSize <= 0 {
		opts.MinSize = defaultMinSize
	}

	if opts.MaxSize <= 0 {
		opts.MaxSize = defaultMaxSize
	}

	if opts.MaxSize <= opts.MinSize {
		return nil, ErrInvalidSizeRange
	}

	if opts.Spawns < 0 {
		opts.Spawns = defaultSpawns
	}

	if err := opts.Maze.Validate(); err != nil {
		return nil, err
	}

	return &LevelBuilder{
		rng:    rng,
		logger: logger,
		opts:   opts,
	}, nil
}

// Build generates a level with odd width and height sampled from the configured range.
// A nil loopy falls back to the configured mode.
func (lb *LevelBuilder) Build(loopy *bool) (*dmn.Level, error) {
	lb.Lock()
	defer lb.Unlock()

	width, err := maze.RandOddBetween(lb.rng, lb.opts.MinSize, lb.opts.MaxSize)
	if err != nil {
		lb.logger.Error(fmt.Sprintf("Sampling maze width: %s", err))
		return nil, fmt.Errorf("sampling maze width: %w", err)
	}

	height, err := maze.RandOddBetween(lb.rng, lb.opts.MinSize, lb.opts.MaxSize)
	if err != nil {
		lb.logger.Error(fmt.Sprintf("Sampling maze height: %s", err))
		return nil, fmt.Errorf("sampling maze height: %w", err)
	}

	return lb.build(width, height, lb.loopy(loopy))
}

// BuildSized generates a level with the given dimensions.
// A nil loopy falls back to the configured mode.
func (lb *LevelBuilder) BuildSized(width, height int, loopy *bool) (*dmn.Level, error) {
	lb.Lock()
	defer lb.Unlock()

	return lb.build(width, height, lb.loopy(loopy))
}

// loopy resolves a per-call override against the configured mode.
func (lb *LevelBuilder) loopy(override *bool) bool {
	if override != nil {
		return *override
	}
	return lb.opts.Maze.Loopy
}

func (lb *LevelBuilder) build(width, height int, loopy bool) (*dmn.Level, error) {
	opts := lb.opts.Maze
	opts.Loopy = loopy

	m, err := maze.Generate(width, height, opts, lb.rng)
	if err != nil {
		lb.logger.Warning(fmt.Sprintf("Generating %dx%d maze: %s", width, height, err))
		return nil, fmt.Errorf("generating maze: %w", err)
	}

	emitter := opts.Emitter()
	cells, err := m.RandomCells(min(lb.opts.Spawns, width*height), lb.rng)
	if err != nil {
		return nil, fmt.Errorf("picking spawn cells: %w", err)
	}

	spawns := make([]dmn.Spawn, 0, len(cells))
	for _, c := range cells {
		x, y := emitter.CellCenter(m, c)
		spawns = append(spawns, dmn.Spawn{Cell: c, X: x, Y: y})
	}

	level := &dmn.Level{
		ID:     uuid.New(),
		Width:  width,
		Height: height,
		Loopy:  loopy,
		Walls:  emitter.Walls(m),
		Spawns: spawns,
		Maze:   m,
	}

	lb.logger.Info(fmt.Sprintf("Level generated: ID=%s Size=%dx%d Loopy=%t Walls=%d", level.ID, width, height, loopy, len(level.Walls)))
	return level, nil
}
