package gridkit

// BoxSet is a union of boxes kept as a list of pairwise disjoint boxes.
type BoxSet struct {
	boxes []Box
}

// Add merges b into the set.
func (s *BoxSet) Add(b Box) {
	s.Remove(b)
	if !b.IsEmpty() {
		s.boxes = append(s.boxes, b)
	}
}

// Remove carves b out of every box in the set.
func (s *BoxSet) Remove(b Box) {
	next := make([]Box, 0, len(s.boxes))
	for _, existing := range s.boxes {
		_, _, rest := existing.Split(b)
		next = append(next, rest...)
	}
	s.boxes = next
}

// Volume is the total volume covered by the set.
func (s *BoxSet) Volume() int {
	volume := 0
	for _, b := range s.boxes {
		volume += b.Volume()
	}
	return volume
}

// ContainsPoint reports whether c lies inside any box of the set.
func (s *BoxSet) ContainsPoint(c Coord) bool {
	for _, b := range s.boxes {
		if b.ContainsPoint(c) {
			return true
		}
	}
	return false
}

func (s *BoxSet) Len() int { return len(s.boxes) }

// Boxes returns a copy of the disjoint boxes.
func (s *BoxSet) Boxes() []Box {
	return append([]Box(nil), s.boxes...)
}
