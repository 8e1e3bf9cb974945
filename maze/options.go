package maze

const (
	defaultDeletionProbability = 0.3
	defaultWallLength          = 50
	defaultWallThickness       = 5
)

// Options configures maze generation and wall geometry.
type Options struct {
	Loopy               bool    // Loopy enables the random wall deletion pass.
	DeletionProbability float64 // Probability of opening each standing interior wall in loopy mode.
	WallLength          float32 // Length of one wall, equal to the width of one cell.
	WallThickness       float32 // Thickness of a wall.
}

// DefaultOptions returns a perfect-maze configuration with the stock wall size.
func DefaultOptions() Options {
	return Options{
		Loopy:               false,
		DeletionProbability: defaultDeletionProbability,
		WallLength:          defaultWallLength,
		WallThickness:       defaultWallThickness,
	}
}

// Validate checks the probability and wall size.
func (o Options) Validate() error {
	if o.DeletionProbability < 0 || o.DeletionProbability > 1 {
		return ErrInvalidProbability
	}
	if o.WallLength <= 0 || o.WallThickness <= 0 {
		return ErrInvalidWallSize
	}
	return nil
}

// Emitter returns an Emitter using the configured wall size.
func (o Options) Emitter() Emitter {
	return Emitter{Length: o.WallLength, Thickness: o.WallThickness}
}
