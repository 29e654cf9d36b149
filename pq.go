package gridkit

// priorityQueue is a container/heap min-heap of search nodes ordered by
// f-cost. Equal f-costs pop in the order the nodes were first pushed.
type priorityQueue []*searchNode

func (queue priorityQueue) Len() int { return len(queue) }

func (queue priorityQueue) Less(i, j int) bool {
	fi, fj := queue[i].fCost(), queue[j].fCost()
	if fi != fj {
		return fi < fj
	}
	return queue[i].sequence < queue[j].sequence
}

func (queue priorityQueue) Swap(i, j int) {
	queue[i], queue[j] = queue[j], queue[i]
	queue[i].indexInQueue = i
	queue[j].indexInQueue = j
}

func (queue *priorityQueue) Push(x any) {
	node := x.(*searchNode)
	node.indexInQueue = len(*queue)
	*queue = append(*queue, node)
}

func (queue *priorityQueue) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	node := oldQueue[n-1]
	oldQueue[n-1] = nil
	node.indexInQueue = -1
	*queue = oldQueue[:n-1]
	return node
}
