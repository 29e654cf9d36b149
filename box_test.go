package gridkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustBox(t *testing.T, start, end Coord) Box {
	t.Helper()
	b, err := NewBox(start, end)
	require.NoError(t, err)
	return b
}

// assertDisjointCover checks that pieces are non-empty, pairwise disjoint,
// inside a, outside b, and together with b fill a.
func assertDisjointCover(t *testing.T, a, b Box, pieces []Box) {
	t.Helper()
	volume := b.Volume()
	for i, piece := range pieces {
		assert.False(t, piece.IsEmpty(), "piece %d %v is empty", i, piece)
		assert.True(t, a.Contains(piece), "piece %d %v outside %v", i, piece, a)
		assert.False(t, piece.Overlaps(b), "piece %d %v overlaps %v", i, piece, b)
		for j := i + 1; j < len(pieces); j++ {
			assert.False(t, piece.Overlaps(pieces[j]), "pieces %v and %v overlap", piece, pieces[j])
		}
		volume += piece.Volume()
	}
	assert.Equal(t, a.Volume(), volume)
}

func TestNewBox(t *testing.T) {
	t.Parallel()

	_, err := NewBox(C2(0, 0), C3(1, 1, 1))
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = NewBox(C3(0, 5, 0), C3(1, 1, 1))
	assert.ErrorIs(t, err, ErrInvalidRange)

	flat, err := NewBox2(0, 0, 4, 3)
	require.NoError(t, err)
	assert.Equal(t, 12, flat.Volume())
	assert.Equal(t, "[(0,0,0),(4,3,1))", flat.String())
}

func TestBox_Intersect(t *testing.T) {
	t.Parallel()

	t.Run("overlapping planar boxes", func(t *testing.T) {
		a := mustBox(t, C3(0, 0, 0), C3(10, 10, 1))
		b := mustBox(t, C3(5, 5, 0), C3(15, 15, 1))
		got, ok := a.Intersect(b)
		require.True(t, ok)
		assert.Equal(t, mustBox(t, C3(5, 5, 0), C3(10, 10, 1)), got)
	})

	t.Run("touching faces do not intersect", func(t *testing.T) {
		a := mustBox(t, C3(0, 0, 0), C3(5, 5, 5))
		b := mustBox(t, C3(5, 0, 0), C3(10, 5, 5))
		_, ok := a.Intersect(b)
		assert.False(t, ok)
	})

	t.Run("commutative", func(t *testing.T) {
		boxes := []Box{
			mustBox(t, C3(0, 0, 0), C3(10, 10, 10)),
			mustBox(t, C3(2, 2, 2), C3(8, 8, 8)),
			mustBox(t, C3(-5, 3, 9), C3(4, 20, 12)),
			mustBox(t, C3(9, 9, 9), C3(9, 12, 12)),
			mustBox(t, C3(20, 20, 20), C3(30, 30, 30)),
			mustBox(t, C3(5, -1, 0), C3(6, 11, 1)),
		}
		for _, a := range boxes {
			for _, b := range boxes {
				ab, okAB := a.Intersect(b)
				ba, okBA := b.Intersect(a)
				assert.Equal(t, okAB, okBA, "%v ∩ %v", a, b)
				assert.Equal(t, ab, ba, "%v ∩ %v", a, b)
			}
		}
	})
}

func TestBox_Subtract(t *testing.T) {
	t.Parallel()

	a := mustBox(t, C3(0, 0, 0), C3(10, 10, 10))

	t.Run("centered hole", func(t *testing.T) {
		b := mustBox(t, C3(2, 2, 2), C3(8, 8, 8))
		pieces, err := a.Subtract(b)
		require.NoError(t, err)
		assert.Len(t, pieces, 6)
		total := 0
		for _, piece := range pieces {
			total += piece.Volume()
		}
		assert.Equal(t, 1000-216, total)
		assertDisjointCover(t, a, b, pieces)
	})

	t.Run("sweep order", func(t *testing.T) {
		b := mustBox(t, C3(2, 2, 2), C3(8, 8, 8))
		pieces, err := a.Subtract(b)
		require.NoError(t, err)
		want := []Box{
			mustBox(t, C3(0, 0, 0), C3(2, 10, 10)),
			mustBox(t, C3(8, 0, 0), C3(10, 10, 10)),
			mustBox(t, C3(2, 0, 0), C3(8, 2, 10)),
			mustBox(t, C3(2, 8, 0), C3(8, 10, 10)),
			mustBox(t, C3(2, 2, 0), C3(8, 8, 2)),
			mustBox(t, C3(2, 2, 8), C3(8, 8, 10)),
		}
		assert.Equal(t, want, pieces)
	})

	cases := map[string]Box{
		"corner":          mustBox(t, C3(0, 0, 0), C3(3, 3, 3)),
		"full face slab":  mustBox(t, C3(0, 0, 7), C3(10, 10, 10)),
		"whole box":       mustBox(t, C3(0, 0, 0), C3(10, 10, 10)),
		"through tunnel":  mustBox(t, C3(4, 4, 0), C3(6, 6, 10)),
		"single cell":     mustBox(t, C3(9, 0, 5), C3(10, 1, 6)),
		"zero-width cut":  mustBox(t, C3(5, 0, 0), C3(5, 10, 10)),
		"off-center hole": mustBox(t, C3(1, 6, 2), C3(4, 9, 3)),
	}
	for name, b := range cases {
		t.Run(name, func(t *testing.T) {
			pieces, err := a.Subtract(b)
			require.NoError(t, err)
			assertDisjointCover(t, a, b, pieces)
		})
	}

	t.Run("whole box leaves nothing", func(t *testing.T) {
		pieces, err := a.Subtract(a)
		require.NoError(t, err)
		assert.Empty(t, pieces)
	})

	t.Run("not contained", func(t *testing.T) {
		b := mustBox(t, C3(5, 5, 5), C3(15, 15, 15))
		_, err := a.Subtract(b)
		assert.ErrorIs(t, err, ErrNotContained)
	})

	t.Run("planar boxes", func(t *testing.T) {
		outer, err := NewBox2(0, 0, 10, 12)
		require.NoError(t, err)
		inner, err := NewBox2(5, 7, 10, 12)
		require.NoError(t, err)
		pieces, err := outer.Subtract(inner)
		require.NoError(t, err)
		assertDisjointCover(t, outer, inner, pieces)
		assert.Len(t, pieces, 2)
	})
}

func TestBox_Split(t *testing.T) {
	t.Parallel()

	a, err := NewBox2(0, 0, 10, 10)
	require.NoError(t, err)
	b, err := NewBox2(2, 9, 8, 30)
	require.NoError(t, err)

	overlap, ok, rest := a.Split(b)
	require.True(t, ok)
	want, err := NewBox2(2, 9, 8, 10)
	require.NoError(t, err)
	assert.Equal(t, want, overlap)
	assertDisjointCover(t, a, overlap, rest)

	far, err := NewBox2(50, 50, 60, 60)
	require.NoError(t, err)
	_, ok, rest = a.Split(far)
	assert.False(t, ok)
	assert.Equal(t, []Box{a}, rest)
}

func TestBox_ContainsPoint(t *testing.T) {
	t.Parallel()

	b := mustBox(t, C3(0, 0, 0), C3(2, 2, 2))
	assert.True(t, b.ContainsPoint(C3(1, 1, 1)))
	assert.False(t, b.ContainsPoint(C3(2, 1, 1)))
	assert.False(t, b.ContainsPoint(C2(1, 1)))
}
