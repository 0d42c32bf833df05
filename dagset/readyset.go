package dagset

import (
	"container/heap"

	"github.com/rtsched/dagsched/dagmodel"
)

// Policy is the capability set a DAGSetSchedulerBase dispatch strategy
// implements: seeding the ready structure when a DAG starts, and
// push/pop as nodes become ready and get dispatched.
type Policy interface {
	SeedReady(dagID int32, sources []dagmodel.NodeData)
	PushReady(dagID int32, node dagmodel.NodeData)
	PopReady() (dagID int32, node dagmodel.NodeData, ok bool)
}

// edfItem is one entry of GlobalEDFScheduler's ready set.
type edfItem struct {
	period    int32
	hasPeriod bool
	nodeID    int32
	dagID     int32
	node      dagmodel.NodeData
}

// edfHeap orders ready nodes by (period, node_id, dag_id) ascending, with
// nodes missing a period ranked last. Run stamps every node it pushes with
// its DAG's head period, so items from Run always carry one; the
// missing-period rule keeps the order total for nodes pushed without it.
type edfHeap []edfItem

func (h edfHeap) Len() int { return len(h) }

func (h edfHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if a.hasPeriod != b.hasPeriod {
		return a.hasPeriod
	}
	if a.hasPeriod && a.period != b.period {
		return a.period < b.period
	}
	if a.nodeID != b.nodeID {
		return a.nodeID < b.nodeID
	}
	return a.dagID < b.dagID
}

func (h edfHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *edfHeap) Push(x interface{}) { *h = append(*h, x.(edfItem)) }

func (h *edfHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// GlobalEDFScheduler is a single global ordered ready structure: one set
// shared across every DAG in the set, rather than one per DAG, so the
// earliest-deadline node dispatches first regardless of which DAG it
// belongs to.
type GlobalEDFScheduler struct {
	heap edfHeap
}

// NewGlobalEDFScheduler returns an empty global-EDF ready structure.
func NewGlobalEDFScheduler() *GlobalEDFScheduler {
	s := &GlobalEDFScheduler{}
	heap.Init(&s.heap)
	return s
}

func (s *GlobalEDFScheduler) SeedReady(dagID int32, sources []dagmodel.NodeData) {
	for _, n := range sources {
		s.PushReady(dagID, n)
	}
}

func (s *GlobalEDFScheduler) PushReady(dagID int32, node dagmodel.NodeData) {
	period, ok := node.Get(dagmodel.ParamPeriod)
	heap.Push(&s.heap, edfItem{period: period, hasPeriod: ok, nodeID: node.ID, dagID: dagID, node: node})
}

func (s *GlobalEDFScheduler) PopReady() (int32, dagmodel.NodeData, bool) {
	if s.heap.Len() == 0 {
		return 0, dagmodel.NodeData{}, false
	}
	item := heap.Pop(&s.heap).(edfItem)
	return item.dagID, item.node, true
}
