package gridkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// inclusiveBox builds the box covering the inclusive cell ranges lo..hi.
func inclusiveBox(t *testing.T, lo, hi [3]int) Box {
	t.Helper()
	return mustBox(t, C3(lo[0], lo[1], lo[2]), C3(hi[0]+1, hi[1]+1, hi[2]+1))
}

func assertPairwiseDisjoint(t *testing.T, boxes []Box) {
	t.Helper()
	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			assert.False(t, boxes[i].Overlaps(boxes[j]), "%v overlaps %v", boxes[i], boxes[j])
		}
	}
}

func TestBoxSet_AccumulatesDisjointUnion(t *testing.T) {
	t.Parallel()

	var set BoxSet
	set.Add(inclusiveBox(t, [3]int{10, 10, 10}, [3]int{12, 12, 12}))
	assert.Equal(t, 27, set.Volume())

	set.Add(inclusiveBox(t, [3]int{11, 11, 11}, [3]int{13, 13, 13}))
	assert.Equal(t, 46, set.Volume())
	assertPairwiseDisjoint(t, set.Boxes())

	set.Remove(inclusiveBox(t, [3]int{9, 9, 9}, [3]int{11, 11, 11}))
	assert.Equal(t, 38, set.Volume())
	assertPairwiseDisjoint(t, set.Boxes())

	set.Add(inclusiveBox(t, [3]int{10, 10, 10}, [3]int{10, 10, 10}))
	assert.Equal(t, 39, set.Volume())
	assertPairwiseDisjoint(t, set.Boxes())

	assert.True(t, set.ContainsPoint(C3(10, 10, 10)))
	assert.False(t, set.ContainsPoint(C3(11, 11, 10)))
	assert.True(t, set.ContainsPoint(C3(13, 13, 13)))
}

func TestBoxSet_EmptyBoxesAreIgnored(t *testing.T) {
	t.Parallel()

	var set BoxSet
	set.Add(mustBox(t, C3(0, 0, 0), C3(0, 5, 5)))
	assert.Equal(t, 0, set.Len())

	set.Add(mustBox(t, C3(0, 0, 0), C3(2, 2, 2)))
	boxes := set.Boxes()
	boxes[0] = Box{}
	assert.Equal(t, 8, set.Volume(), "Boxes must return a copy")
}
