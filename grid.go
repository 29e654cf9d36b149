package gridkit

import (
	"fmt"
	"iter"
	"strings"
)

// Range is a half-open interval [Start, End) along one axis.
type Range struct {
	Start, End int
}

// Span returns [start, end).
func Span(start, end int) Range { return Range{Start: start, End: end} }

func (r Range) Len() int { return r.End - r.Start }

func (r Range) validate() error {
	if r.Start < 0 || r.End < r.Start {
		return fmt.Errorf("%w: [%d,%d)", ErrInvalidRange, r.Start, r.End)
	}
	return nil
}

// Entry is a cell value together with whether the cell is set.
// An unset cell is empty, which is distinct from a stored zero value.
type Entry[T comparable] struct {
	Value   T
	Present bool
}

// Grid is a sparse, coordinate-keyed array with a fixed bounding box of
// width × height (2D) or width × height × depth (3D).
//
// Grid is not safe for concurrent use.
type Grid[T comparable] struct {
	width, height, depth int
	is3D                 bool
	cells                map[Coord]T
}

// NewGrid2 returns a width × height grid with every cell set to fill.
func NewGrid2[T comparable](width, height int, fill T) *Grid[T] {
	grid := newEmptyGrid[T](width, height, 1, false)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			grid.cells[C2(x, y)] = fill
		}
	}
	return grid
}

// NewGrid3 returns a width × height × depth grid with every cell set to fill.
func NewGrid3[T comparable](width, height, depth int, fill T) *Grid[T] {
	grid := newEmptyGrid[T](width, height, depth, true)
	for z := 0; z < depth; z++ {
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				grid.cells[C3(x, y, z)] = fill
			}
		}
	}
	return grid
}

func newEmptyGrid[T comparable](width, height, depth int, is3D bool) *Grid[T] {
	if !is3D {
		depth = 1
	}
	return &Grid[T]{
		width:  max(width, 0),
		height: max(height, 0),
		depth:  max(depth, 0),
		is3D:   is3D,
		cells:  make(map[Coord]T),
	}
}

// FromTable builds a 2D grid from rows of cells. rows[y][x] becomes the
// cell at (x, y). All rows must have the same length.
func FromTable[T comparable](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return newEmptyGrid[T](0, 0, 1, false), nil
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedTable, y, len(row), width)
		}
	}
	grid := newEmptyGrid[T](width, len(rows), 1, false)
	for y, row := range rows {
		for x, value := range row {
			grid.cells[C2(x, y)] = value
		}
	}
	return grid, nil
}

// FromCoords builds the smallest grid containing every coordinate in
// coords, with those cells set to fill and all others empty. The
// dimensionality of the grid is taken from the first coordinate.
func FromCoords[T comparable](coords []Coord, fill T) (*Grid[T], error) {
	if len(coords) == 0 {
		return newEmptyGrid[T](0, 0, 1, false), nil
	}
	is3D := coords[0].Is3D()
	grid := newEmptyGrid[T](0, 0, 0, is3D)
	for i, c := range coords {
		if c.Is3D() != is3D {
			return nil, fmt.Errorf("%w: coordinate %d is %dD, list is %dD", ErrDimensionMismatch, i, c.Dims(), coords[0].Dims())
		}
		if c.X < 0 || c.Y < 0 || c.Z < 0 {
			return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, c)
		}
		grid.width = max(grid.width, c.X+1)
		grid.height = max(grid.height, c.Y+1)
		if is3D {
			grid.depth = max(grid.depth, c.Z+1)
		}
		grid.cells[c.normalized()] = fill
	}
	return grid, nil
}

func (g *Grid[T]) Width() int  { return g.width }
func (g *Grid[T]) Height() int { return g.height }

// Depth returns the z extent, or 0 for a 2D grid.
func (g *Grid[T]) Depth() int {
	if !g.is3D {
		return 0
	}
	return g.depth
}

func (g *Grid[T]) Is3D() bool { return g.is3D }

// Len returns the number of stored (non-empty) cells.
func (g *Grid[T]) Len() int { return len(g.cells) }

// Size returns the number of cells in the bounding volume.
func (g *Grid[T]) Size() int { return g.width * g.height * g.depth }

// key checks c against the grid's dimensionality. Indexing a 2D grid with
// a 3D coordinate, or the reverse, is a programming error and panics.
func (g *Grid[T]) key(c Coord) Coord {
	if c.Is3D() != g.is3D {
		panic(fmt.Errorf("%w: %dD coordinate %v on %dD grid", ErrDimensionMismatch, c.Dims(), c, g.dims()))
	}
	return c.normalized()
}

func (g *Grid[T]) dims() int {
	if g.is3D {
		return 3
	}
	return 2
}

// InBounds reports whether c lies inside the declared bounding box.
func (g *Grid[T]) InBounds(c Coord) bool {
	c = g.key(c)
	return c.X >= 0 && c.X < g.width &&
		c.Y >= 0 && c.Y < g.height &&
		c.Z >= 0 && c.Z < g.depth
}

// Get returns the value stored at c and whether the cell is set.
// Unset and out-of-range cells are empty, never an error.
func (g *Grid[T]) Get(c Coord) (T, bool) {
	v, ok := g.cells[g.key(c)]
	return v, ok
}

// At is Get as an Entry.
func (g *Grid[T]) At(c Coord) Entry[T] {
	v, ok := g.Get(c)
	return Entry[T]{Value: v, Present: ok}
}

// Set stores v at c. Bounds are not checked; keeping c inside the grid is
// the caller's responsibility.
func (g *Grid[T]) Set(c Coord, v T) {
	g.cells[g.key(c)] = v
}

// Delete makes the cell at c empty.
func (g *Grid[T]) Delete(c Coord) {
	delete(g.cells, g.key(c))
}

// Slice returns a copy of the region x × y of a 2D grid, re-indexed from
// the origin. Cells outside the source bounds or unset in the source are
// empty in the result.
func (g *Grid[T]) Slice(x, y Range) (*Grid[T], error) {
	if g.is3D {
		return nil, fmt.Errorf("%w: 2D slice of a 3D grid", ErrDimensionMismatch)
	}
	return g.slice([3]Range{x, y, Span(0, 1)})
}

// SliceVolume is Slice for 3D grids.
func (g *Grid[T]) SliceVolume(x, y, z Range) (*Grid[T], error) {
	if !g.is3D {
		return nil, fmt.Errorf("%w: 3D slice of a 2D grid", ErrDimensionMismatch)
	}
	return g.slice([3]Range{x, y, z})
}

func (g *Grid[T]) slice(ranges [3]Range) (*Grid[T], error) {
	for _, r := range ranges {
		if err := r.validate(); err != nil {
			return nil, err
		}
	}
	out := newEmptyGrid[T](ranges[0].Len(), ranges[1].Len(), ranges[2].Len(), g.is3D)
	for z := ranges[2].Start; z < ranges[2].End; z++ {
		for y := ranges[1].Start; y < ranges[1].End; y++ {
			for x := ranges[0].Start; x < ranges[0].End; x++ {
				v, ok := g.cells[g.coord(x, y, z)]
				if !ok {
					continue
				}
				out.cells[g.coord(x-ranges[0].Start, y-ranges[1].Start, z-ranges[2].Start)] = v
			}
		}
	}
	return out, nil
}

// SetSlice copies src into g with src's origin placed at origin. Empty
// cells of src clear the corresponding cells of g.
func (g *Grid[T]) SetSlice(origin Coord, src *Grid[T]) error {
	if origin.Is3D() != g.is3D || src.is3D != g.is3D {
		return fmt.Errorf("%w: slice-set of %dD grid at %v into %dD grid", ErrDimensionMismatch, src.dims(), origin, g.dims())
	}
	for c, entry := range src.All() {
		dst, err := c.Add(origin)
		if err != nil {
			return err
		}
		if entry.Present {
			g.cells[dst] = entry.Value
		} else {
			delete(g.cells, dst)
		}
	}
	return nil
}

func (g *Grid[T]) coord(x, y, z int) Coord {
	if g.is3D {
		return C3(x, y, z)
	}
	return C2(x, y)
}

var (
	orthogonalSteps = [...]Coord{C2(0, -1), C2(0, 1), C2(-1, 0), C2(1, 0)}
	diagonalSteps   = [...]Coord{C2(-1, -1), C2(1, -1), C2(-1, 1), C2(1, 1)}
)

// neighborCoords lists the in-bounds neighbors of c in a fixed order:
// up, down, left, right, then the diagonals when requested.
func (g *Grid[T]) neighborCoords(c Coord, diagonal bool) ([]Coord, error) {
	if g.is3D {
		return nil, fmt.Errorf("%w: neighbor enumeration on a 3D grid", ErrUnsupported)
	}
	c = g.key(c)
	out := make([]Coord, 0, 8)
	appendStep := func(step Coord) {
		n := C2(c.X+step.X, c.Y+step.Y)
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	for _, step := range orthogonalSteps {
		appendStep(step)
	}
	if diagonal {
		for _, step := range diagonalSteps {
			appendStep(step)
		}
	}
	return out, nil
}

// Neighbors returns the in-bounds cells adjacent to c with their entries:
// up to 4 orthogonal neighbors, or up to 8 with diagonal set.
// Only 2D grids are supported; a 3D grid returns ErrUnsupported.
func (g *Grid[T]) Neighbors(c Coord, diagonal bool) (map[Coord]Entry[T], error) {
	coords, err := g.neighborCoords(c, diagonal)
	if err != nil {
		return nil, err
	}
	out := make(map[Coord]Entry[T], len(coords))
	for _, n := range coords {
		out[n] = g.At(n)
	}
	return out, nil
}

// Count returns how many cells in the bounding volume hold v.
// Empty cells never match.
func (g *Grid[T]) Count(v T) int {
	count := 0
	for _, entry := range g.All() {
		if entry.Present && entry.Value == v {
			count++
		}
	}
	return count
}

// CountEmpty returns how many cells in the bounding volume are unset.
func (g *Grid[T]) CountEmpty() int {
	count := 0
	for _, entry := range g.All() {
		if !entry.Present {
			count++
		}
	}
	return count
}

// Flatten returns every cell of the bounding volume in iteration order.
func (g *Grid[T]) Flatten() []Entry[T] {
	out := make([]Entry[T], 0, g.Size())
	for _, entry := range g.All() {
		out = append(out, entry)
	}
	return out
}

// All iterates over the bounding volume with z outermost, then y, then x.
func (g *Grid[T]) All() iter.Seq2[Coord, Entry[T]] {
	return func(yield func(Coord, Entry[T]) bool) {
		for z := 0; z < g.depth; z++ {
			for y := 0; y < g.height; y++ {
				for x := 0; x < g.width; x++ {
					c := g.coord(x, y, z)
					v, ok := g.cells[c]
					if !yield(c, Entry[T]{Value: v, Present: ok}) {
						return
					}
				}
			}
		}
	}
}

// String prints the grid one row per line with "." for empty cells.
// Layers of a 3D grid are separated by a blank line.
func (g *Grid[T]) String() string {
	var b strings.Builder
	for c, entry := range g.All() {
		if g.is3D && c.Z > 0 && c.X == 0 && c.Y == 0 {
			b.WriteString("\n")
		}
		if entry.Present {
			fmt.Fprintf(&b, "%v ", entry.Value)
		} else {
			b.WriteString(". ")
		}
		if c.X == g.width-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
