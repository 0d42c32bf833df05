package listsched

import "container/heap"

// readyItem is one entry of the ready priority queue: a node id plus its
// resolved priority key. Ties are broken by ascending node id, so repeated
// runs on identical input dispatch in the same order.
type readyItem struct {
	nodeID   int32
	priority int32
}

// readyQueue is a min-heap ordered by (priority, nodeID) ascending, so the
// highest-priority (lowest key) ready node is always popped first.
type readyQueue []readyItem

func (q readyQueue) Len() int { return len(q) }

func (q readyQueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].nodeID < q[j].nodeID
}

func (q readyQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *readyQueue) Push(x interface{}) {
	*q = append(*q, x.(readyItem))
}

func (q *readyQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// newReadyQueue returns an initialized, empty ready queue.
func newReadyQueue() *readyQueue {
	q := &readyQueue{}
	heap.Init(q)
	return q
}

func (q *readyQueue) push(item readyItem) {
	heap.Push(q, item)
}

func (q *readyQueue) pop() (readyItem, bool) {
	if q.Len() == 0 {
		return readyItem{}, false
	}
	return heap.Pop(q).(readyItem), true
}
