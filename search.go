package gridkit

// Cost is the set of cell types a grid search can read as traversal costs.
type Cost interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Heuristic estimates the remaining cost from node to goal.
type Heuristic func(node Coord, goal Coord) float64

// Result contains the outcome of a search.
// Path runs from the goal back to the start.
type Result struct {
	Path          []Coord
	TotalCost     float64
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	// Heuristic, when set, is evaluated per node. When nil every node gets
	// the squared start-to-goal distance.
	Heuristic Heuristic
	// WallCost marks cells whose cost is at or above it as impassable.
	WallCost float64
	// MaxExpansions stops the search with ErrExpansionLimit; 0 is unbounded.
	MaxExpansions int
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic replaces the constant start-to-goal estimate with a
// per-node heuristic.
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) { options.Heuristic = heuristic }
}

// WithWallCost makes every cell costing wallCost or more impassable.
func WithWallCost(wallCost float64) Option {
	return func(options *Options) { options.WallCost = wallCost }
}

// WithMaxExpansions caps the number of node expansions.
func WithMaxExpansions(maxExpansions int) Option {
	return func(options *Options) { options.MaxExpansions = maxExpansions }
}

// Search finds the cheapest orthogonal path from start to goal over grid,
// where entering a cell costs its stored value. A missing path is not an
// error: the Result has Found set to false.
func Search[T Cost](grid *Grid[T], start, goal Coord, options ...Option) (Result, error) {
	stepper, err := NewStepper(grid, start, goal, options...)
	if err != nil {
		return Result{}, err
	}
	for !stepper.Done() {
		if err := stepper.advance(); err != nil {
			logger.Warn("grid search stopped", "start", start, "goal", goal, "error", err)
			return stepper.Result(), err
		}
	}

	result := stepper.Result()
	logger.Debug("grid search finished",
		"start", start,
		"goal", goal,
		"found", result.Found,
		"cost", result.TotalCost,
		"expanded", result.ExpandedNodes,
	)
	return result, nil
}
