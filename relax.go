package gridkit

import "container/heap"

// relaxProposal is a candidate path into node to through node from.
type relaxProposal struct {
	from   int
	to     int
	gScore float64
}

// expand proposes a path through current to each passable orthogonal
// neighbor, in up, down, left, right order.
func (s *Stepper) expand(current *searchNode) []relaxProposal {
	proposals := make([]relaxProposal, 0, len(orthogonalSteps))
	for _, step := range orthogonalSteps {
		x, y := current.coord.X+step.X, current.coord.Y+step.Y
		if x < 0 || x >= s.width || y < 0 || y >= s.height {
			continue
		}
		neighbor := &s.nodes[y*s.width+x]
		if !neighbor.passable {
			continue
		}
		proposals = append(proposals, relaxProposal{
			from:   current.index,
			to:     neighbor.index,
			gScore: current.gScore + neighbor.cost,
		})
	}
	return proposals
}

// relax applies p if it strictly improves the neighbor's cost, pushing the
// neighbor onto the open set when it is not already there.
func (s *Stepper) relax(p relaxProposal) bool {
	node := &s.nodes[p.to]
	if p.gScore >= node.gScore {
		return false
	}
	node.gScore = p.gScore
	node.parent = p.from
	if node.indexInQueue >= 0 {
		heap.Fix(&s.openSet, node.indexInQueue)
	} else {
		s.push(node)
	}
	return true
}
