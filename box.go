package gridkit

import "fmt"

// Box is an axis-aligned cuboid spanning [Start, End) on every axis.
// Both corners are 3D; planar boxes pin z to [0, 1).
type Box struct {
	Start, End Coord
}

// NewBox returns the box [start, end). Both corners must be 3D and start
// must not exceed end on any axis.
func NewBox(start, end Coord) (Box, error) {
	if !start.Is3D() || !end.Is3D() {
		return Box{}, fmt.Errorf("%w: box corners %v and %v must be 3D", ErrDimensionMismatch, start, end)
	}
	lo, hi := start.axes(), end.axes()
	for d := range 3 {
		if lo[d] > hi[d] {
			return Box{}, fmt.Errorf("%w: box axis %d runs from %d to %d", ErrInvalidRange, d, lo[d], hi[d])
		}
	}
	return Box{Start: start, End: end}, nil
}

// NewBox2 returns the planar box [x0, x1) × [y0, y1) × [0, 1).
func NewBox2(x0, y0, x1, y1 int) (Box, error) {
	return NewBox(C3(x0, y0, 0), C3(x1, y1, 1))
}

func boxFromBounds(lo, hi [3]int) Box {
	return Box{Start: C3(lo[0], lo[1], lo[2]), End: C3(hi[0], hi[1], hi[2])}
}

func (b Box) bounds() (lo, hi [3]int) { return b.Start.axes(), b.End.axes() }

// Volume is the product of the box's extents.
func (b Box) Volume() int {
	lo, hi := b.bounds()
	volume := 1
	for d := range 3 {
		extent := hi[d] - lo[d]
		if extent < 0 {
			extent = -extent
		}
		volume *= extent
	}
	return volume
}

// IsEmpty reports whether the box has zero extent on some axis.
func (b Box) IsEmpty() bool { return b.Volume() == 0 }

// Intersect returns the overlap of b and o. The second result is false
// when they do not overlap on every axis.
func (b Box) Intersect(o Box) (Box, bool) {
	lo, hi := b.bounds()
	olo, ohi := o.bounds()
	for d := range 3 {
		lo[d] = max(lo[d], olo[d])
		hi[d] = min(hi[d], ohi[d])
		if lo[d] >= hi[d] {
			return Box{}, false
		}
	}
	return boxFromBounds(lo, hi), true
}

// Overlaps reports whether b and o share any volume.
func (b Box) Overlaps(o Box) bool {
	_, ok := b.Intersect(o)
	return ok
}

// Contains reports whether o lies entirely inside b.
func (b Box) Contains(o Box) bool {
	lo, hi := b.bounds()
	olo, ohi := o.bounds()
	for d := range 3 {
		if olo[d] < lo[d] || ohi[d] > hi[d] {
			return false
		}
	}
	return true
}

// ContainsPoint reports whether the 3D cell c lies inside b.
func (b Box) ContainsPoint(c Coord) bool {
	if !c.Is3D() {
		return false
	}
	lo, hi := b.bounds()
	p := c.axes()
	for d := range 3 {
		if p[d] < lo[d] || p[d] >= hi[d] {
			return false
		}
	}
	return true
}

// Subtract returns disjoint boxes covering b with o removed. o must lie
// inside b; intersect first when that is not known.
//
// The axes are swept in x, y, z order. On each axis the slab before o and
// the slab after o are cut off, then the remaining bounds are narrowed to
// o on that axis, so later slabs never overlap earlier ones.
func (b Box) Subtract(o Box) ([]Box, error) {
	if !b.Contains(o) {
		return nil, fmt.Errorf("%w: %v is not inside %v", ErrNotContained, o, b)
	}
	lo, hi := b.bounds()
	olo, ohi := o.bounds()
	pieces := make([]Box, 0, 6)
	keep := func(pieceLo, pieceHi [3]int) {
		if piece := boxFromBounds(pieceLo, pieceHi); !piece.IsEmpty() {
			pieces = append(pieces, piece)
		}
	}
	for d := range 3 {
		if lo[d] < olo[d] {
			pieceHi := hi
			pieceHi[d] = olo[d]
			keep(lo, pieceHi)
		}
		if ohi[d] < hi[d] {
			pieceLo := lo
			pieceLo[d] = ohi[d]
			keep(pieceLo, hi)
		}
		lo[d], hi[d] = olo[d], ohi[d]
	}
	return pieces, nil
}

// Split intersects b with o and returns the overlap together with the
// disjoint pieces of b outside it. Without an overlap, rest is just b.
func (b Box) Split(o Box) (overlap Box, ok bool, rest []Box) {
	overlap, ok = b.Intersect(o)
	if !ok {
		return Box{}, false, []Box{b}
	}
	rest, err := b.Subtract(overlap)
	if err != nil {
		panic(err) // an intersection is always inside b
	}
	return overlap, true, rest
}

func (b Box) String() string {
	return fmt.Sprintf("[%v,%v)", b.Start, b.End)
}
