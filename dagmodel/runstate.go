package dagmodel

// RunState holds the per-scheduler-run scratch state modeled as a
// pre_done_count parameter on each node. Keeping it here, keyed by node
// id, instead of mutating NodeData.Params in place keeps a DAG reusable
// across repeated or concurrent scheduling runs.
type RunState struct {
	preDone map[int32]int32
}

// NewRunState returns a RunState with every node's pre_done_count at zero.
func NewRunState(d *DAG) *RunState {
	ids := d.NodeIDs()
	rs := &RunState{preDone: make(map[int32]int32, len(ids))}
	for _, id := range ids {
		rs.preDone[id] = 0
	}
	return rs
}

// IsNodeReady reports whether id's pre_done_count equals its in-degree.
func (rs *RunState) IsNodeReady(d *DAG, id int32) (bool, error) {
	inDeg, err := d.InDegree(id)
	if err != nil {
		return false, err
	}
	return rs.preDone[id] == int32(inDeg), nil
}

// IncrementPreDoneCount increments id's pre_done_count by one.
func (rs *RunState) IncrementPreDoneCount(id int32) {
	rs.preDone[id]++
}

// PreDoneCount returns id's current pre_done_count.
func (rs *RunState) PreDoneCount(id int32) int32 {
	return rs.preDone[id]
}

// Reset zeroes pre_done_count for every node, registering any node ids in d
// not already tracked. dagset.Run calls it at each period boundary.
func (rs *RunState) Reset(d *DAG) {
	for _, id := range d.NodeIDs() {
		rs.preDone[id] = 0
	}
}

// EnsureTracked zeroes pre_done_count for id if it is not yet tracked,
// without disturbing any other node's count, e.g. for a node added to the
// DAG after NewRunState ran.
func (rs *RunState) EnsureTracked(id int32) {
	if _, ok := rs.preDone[id]; !ok {
		rs.preDone[id] = 0
	}
}
