package gridkit

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/pdrpinto/gridkit/internal"
)

// searchNode is the per-cell working state of one search.
type searchNode struct {
	coord        Coord
	index        int
	gScore       float64
	hScore       float64
	cost         float64
	passable     bool
	parent       int
	sequence     uint64
	indexInQueue int
	expanded     bool
}

func (n *searchNode) fCost() float64 { return n.gScore + n.hScore }

// StepSnapshot exposes the state of the search after one expansion.
type StepSnapshot struct {
	Current   Coord
	Open      map[Coord]bool
	Closed    map[Coord]bool
	Done      bool
	Found     bool
	Path      []Coord
	StepIndex int
}

// Stepper runs a grid search one expansion at a time, for callers that
// want to observe or bound the search.
type Stepper struct {
	width, height int
	nodes         []searchNode
	openSet       priorityQueue
	start, goal   int
	maxExpansions int

	nextSequence uint64
	current      int
	stepCount    int
	done         bool
	found        bool
}

// NewStepper prepares a search from start to goal over grid. The value of
// each cell is the cost of entering it; empty cells are impassable.
func NewStepper[T Cost](grid *Grid[T], start, goal Coord, options ...Option) (*Stepper, error) {
	opts := Options{WallCost: math.Inf(1)}
	for _, option := range options {
		option(&opts)
	}

	if grid.Is3D() {
		return nil, fmt.Errorf("%w: path search on a 3D grid", ErrUnsupported)
	}
	for _, c := range []Coord{start, goal} {
		if c.Is3D() {
			return nil, fmt.Errorf("%w: 3D endpoint %v on a 2D grid", ErrDimensionMismatch, c)
		}
		if !grid.InBounds(c) {
			return nil, fmt.Errorf("%w: endpoint %v outside %dx%d grid", ErrOutOfBounds, c, grid.Width(), grid.Height())
		}
	}

	// The default heuristic is the start-to-goal distance, applied to every
	// node alike, so nodes are ordered by accumulated cost alone.
	var constantH float64
	if opts.Heuristic == nil {
		d, err := start.DistSq(goal)
		if err != nil {
			return nil, err
		}
		constantH = float64(d)
	}

	s := &Stepper{
		width:         grid.Width(),
		height:        grid.Height(),
		nodes:         make([]searchNode, grid.Width()*grid.Height()),
		openSet:       make(priorityQueue, 0),
		maxExpansions: opts.MaxExpansions,
		current:       -1,
	}
	for c, entry := range grid.All() {
		index := c.Y*s.width + c.X
		cost := float64(entry.Value)
		if entry.Present && (cost < 0 || math.IsNaN(cost)) {
			return nil, fmt.Errorf("%w: %v at %v", ErrNegativeCost, entry.Value, c)
		}
		hScore := constantH
		if opts.Heuristic != nil {
			hScore = opts.Heuristic(c, goal)
		}
		s.nodes[index] = searchNode{
			coord:        c,
			index:        index,
			gScore:       math.Inf(1),
			hScore:       hScore,
			cost:         cost,
			passable:     entry.Present && cost < opts.WallCost,
			parent:       -1,
			indexInQueue: -1,
		}
	}

	s.start = start.Y*s.width + start.X
	s.goal = goal.Y*s.width + goal.X
	heap.Init(&s.openSet)
	s.nodes[s.start].gScore = 0
	s.push(&s.nodes[s.start])
	return s, nil
}

func (s *Stepper) push(node *searchNode) {
	node.sequence = s.nextSequence
	s.nextSequence++
	heap.Push(&s.openSet, node)
}

// Done reports whether the search has finished, found or not.
func (s *Stepper) Done() bool { return s.done }

// advance performs one expansion.
func (s *Stepper) advance() error {
	if s.done {
		return nil
	}
	if s.openSet.Len() == 0 {
		s.done = true
		return nil
	}
	if s.maxExpansions > 0 && s.stepCount >= s.maxExpansions {
		s.done = true
		return fmt.Errorf("%w: %d expansions", ErrExpansionLimit, s.stepCount)
	}

	s.stepCount++
	current := heap.Pop(&s.openSet).(*searchNode)
	current.expanded = true
	s.current = current.index

	if current.index == s.goal {
		s.done = true
		s.found = true
		return nil
	}

	for _, proposal := range s.expand(current) {
		s.relax(proposal)
	}
	return nil
}

// Step advances the search by one expansion and returns a snapshot.
// Once the search is done, further calls return the final state.
func (s *Stepper) Step() (StepSnapshot, error) {
	err := s.advance()
	return s.snapshot(), err
}

func (s *Stepper) snapshot() StepSnapshot {
	snapshot := StepSnapshot{
		Open:      make(map[Coord]bool, s.openSet.Len()),
		Closed:    make(map[Coord]bool),
		Done:      s.done,
		Found:     s.found,
		StepIndex: s.stepCount,
	}
	if s.current >= 0 {
		snapshot.Current = s.nodes[s.current].coord
	}
	for _, node := range s.openSet {
		snapshot.Open[node.coord] = true
	}
	for i := range s.nodes {
		if s.nodes[i].expanded {
			snapshot.Closed[s.nodes[i].coord] = true
		}
	}
	if s.found {
		snapshot.Path = s.path()
	}
	return snapshot
}

// path lists the cells from goal back to start.
func (s *Stepper) path() []Coord {
	indices := internal.ReconstructPath(func(i int) (int, bool) {
		parent := s.nodes[i].parent
		return parent, parent >= 0
	}, s.goal, s.start)
	path := make([]Coord, len(indices))
	for i, index := range indices {
		path[i] = s.nodes[index].coord
	}
	return path
}

// Result reports the outcome so far; Path and TotalCost are set once the
// goal has been reached.
func (s *Stepper) Result() Result {
	result := Result{ExpandedNodes: s.stepCount, Found: s.found}
	if s.found {
		result.Path = s.path()
		result.TotalCost = s.nodes[s.goal].gScore
	}
	return result
}
