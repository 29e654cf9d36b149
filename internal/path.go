package internal

// ReconstructPath follows predecessor links from current back to start.
// The returned path begins at current and ends at start (or at the first
// node without a predecessor).
func ReconstructPath[NodeType comparable](
	previous func(NodeType) (NodeType, bool),
	current NodeType,
	start NodeType,
) []NodeType {
	path := []NodeType{current}
	for current != start {
		previousNode, exists := previous(current)
		if !exists {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	return path
}
