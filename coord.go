package gridkit

import (
	"fmt"
	"strconv"
	"strings"
)

// Coord is an integer cell position in two or three dimensions.
// It is comparable, so it can be used directly as a map key; a 2D and a 3D
// coordinate never compare equal. The zero value is the 2D origin.
type Coord struct {
	X, Y, Z int
	is3D    bool
}

// C2 returns a 2D coordinate.
func C2(x, y int) Coord { return Coord{X: x, Y: y} }

// C3 returns a 3D coordinate.
func C3(x, y, z int) Coord { return Coord{X: x, Y: y, Z: z, is3D: true} }

// ParseCoord parses "x,y" or "x,y,z".
func ParseCoord(s string) (Coord, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 && len(parts) != 3 {
		return Coord{}, fmt.Errorf("%w: %q", ErrMalformedCoord, s)
	}
	values := make([]int, len(parts))
	for i, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return Coord{}, fmt.Errorf("%w: %q: %v", ErrMalformedCoord, s, err)
		}
		values[i] = v
	}
	if len(values) == 2 {
		return C2(values[0], values[1]), nil
	}
	return C3(values[0], values[1], values[2]), nil
}

// Dims reports 2 or 3.
func (c Coord) Dims() int {
	if c.is3D {
		return 3
	}
	return 2
}

func (c Coord) Is3D() bool { return c.is3D }

// normalized clears Z on 2D coordinates so that a literal like
// Coord{X: 1, Y: 2, Z: 9} is keyed the same as C2(1, 2).
func (c Coord) normalized() Coord {
	if !c.is3D {
		c.Z = 0
	}
	return c
}

func (c Coord) sameDims(o Coord) error {
	if c.Dims() != o.Dims() {
		return fmt.Errorf("%w: %dD and %dD coordinates", ErrDimensionMismatch, c.Dims(), o.Dims())
	}
	return nil
}

// Add returns c + o.
func (c Coord) Add(o Coord) (Coord, error) {
	if err := c.sameDims(o); err != nil {
		return Coord{}, err
	}
	return Coord{X: c.X + o.X, Y: c.Y + o.Y, Z: c.Z + o.Z, is3D: c.is3D}.normalized(), nil
}

// Sub returns c - o.
func (c Coord) Sub(o Coord) (Coord, error) {
	if err := c.sameDims(o); err != nil {
		return Coord{}, err
	}
	return Coord{X: c.X - o.X, Y: c.Y - o.Y, Z: c.Z - o.Z, is3D: c.is3D}.normalized(), nil
}

// DistSq returns the squared Euclidean distance between c and o.
func (c Coord) DistSq(o Coord) (int, error) {
	d, err := c.Sub(o)
	if err != nil {
		return 0, err
	}
	return d.X*d.X + d.Y*d.Y + d.Z*d.Z, nil
}

// Axis returns the value on axis i (0 = x, 1 = y, 2 = z).
func (c Coord) Axis(i int) (int, error) {
	if i < 0 || i >= c.Dims() {
		return 0, fmt.Errorf("%w: axis %d on %dD coordinate", ErrDimensionMismatch, i, c.Dims())
	}
	switch i {
	case 0:
		return c.X, nil
	case 1:
		return c.Y, nil
	default:
		return c.Z, nil
	}
}

// WithAxis returns a copy of c with axis i set to v.
func (c Coord) WithAxis(i, v int) (Coord, error) {
	if i < 0 || i >= c.Dims() {
		return Coord{}, fmt.Errorf("%w: axis %d on %dD coordinate", ErrDimensionMismatch, i, c.Dims())
	}
	c = c.normalized()
	switch i {
	case 0:
		c.X = v
	case 1:
		c.Y = v
	default:
		c.Z = v
	}
	return c, nil
}

// axes returns x, y, z as an array. Z is 0 for 2D coordinates.
func (c Coord) axes() [3]int { return [3]int{c.X, c.Y, c.Z} }

func (c Coord) String() string {
	if c.Is3D() {
		return fmt.Sprintf("(%d,%d,%d)", c.X, c.Y, c.Z)
	}
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}
