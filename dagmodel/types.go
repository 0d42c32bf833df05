package dagmodel

import "sync"

// Well-known NodeData parameter keys.
const (
	ParamExecutionTime    = "execution_time"
	ParamPeriod           = "period"
	ParamEndToEndDeadline = "end_to_end_deadline"
	ParamOffset           = "offset"
	ParamPriority         = "priority"
	ParamDAGID            = "dag_id"
)

// DefaultPriority is used by fixed-priority scheduling when a node carries
// no explicit priority.
const DefaultPriority = 999

// dummy node ids. Real nodes are expected to use non-negative ids, so these
// reserved negative ids never collide with ingested task data.
const (
	dummySourceID int32 = -1
	dummySinkID   int32 = -2
	// DummyExecutionTime is the fixed cost of the inserted dummy source/sink
	// nodes used to linearize makespan accounting.
	DummyExecutionTime int32 = 1
)

// NodeData is one task/subtask of a DAG: an integer id, unique within its
// DAG, plus a set of named integer parameters.
type NodeData struct {
	ID     int32
	Params map[string]int32
}

// NewNodeData returns a NodeData with a freshly allocated, empty Params map
// merged with the given initial parameters.
func NewNodeData(id int32, params map[string]int32) NodeData {
	p := make(map[string]int32, len(params))
	for k, v := range params {
		p[k] = v
	}
	return NodeData{ID: id, Params: p}
}

// Get returns the named parameter and whether it was present.
func (n NodeData) Get(key string) (int32, bool) {
	v, ok := n.Params[key]
	return v, ok
}

// MustGet returns the named parameter or a MissingAttributeError.
func (n NodeData) MustGet(key string) (int32, error) {
	v, ok := n.Params[key]
	if !ok {
		return 0, newMissingAttribute(key, n.ID)
	}
	return v, nil
}

// ExecutionTime returns the node's execution_time parameter.
func (n NodeData) ExecutionTime() (int32, error) {
	return n.MustGet(ParamExecutionTime)
}

// clone returns a deep copy of n (Params is copied, not shared).
func (n NodeData) clone() NodeData {
	p := make(map[string]int32, len(n.Params))
	for k, v := range n.Params {
		p[k] = v
	}
	return NodeData{ID: n.ID, Params: p}
}

// DAG is a directed acyclic graph of NodeData with integer-weighted edges.
// Edge weights express precedence ordering only; arithmetic on them is
// never performed by this repository's schedulers.
//
// muNodes guards nodes/order; muEdges guards succ/pred. AddNode and Clone
// take muEdges while holding muNodes; no method takes them in the
// opposite order.
type DAG struct {
	muNodes sync.RWMutex
	muEdges sync.RWMutex

	nodes map[int32]NodeData
	order []int32 // node ids in insertion order; Sources/Sinks re-sort by id on read

	succ map[int32]map[int32]int32 // from -> to -> weight
	pred map[int32]map[int32]int32 // to -> from -> weight

	dagID int32 // stamped by SetDAGID; -1 until set
}

// NewDAG returns an empty DAG.
func NewDAG() *DAG {
	return &DAG{
		nodes: make(map[int32]NodeData),
		succ:  make(map[int32]map[int32]int32),
		pred:  make(map[int32]map[int32]int32),
		dagID: -1,
	}
}
