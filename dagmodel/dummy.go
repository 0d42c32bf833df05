package dagmodel

// AddDummySourceNode inserts a single dummy node with execution_time 1 as a
// predecessor of every current source node, and returns its id. Dummy
// insertion/removal must be used in matched pairs; calling this twice
// without an intervening RemoveDummySourceNode is an error.
func (d *DAG) AddDummySourceNode() (int32, error) {
	if d.HasNode(dummySourceID) {
		return 0, ErrDummyAlreadyPresent
	}
	sources := d.SourceNodes()
	if err := d.AddNode(NewNodeData(dummySourceID, map[string]int32{ParamExecutionTime: DummyExecutionTime})); err != nil {
		return 0, err
	}
	for _, s := range sources {
		if err := d.AddEdge(dummySourceID, s, 0); err != nil {
			return 0, err
		}
	}
	return dummySourceID, nil
}

// AddDummySinkNode inserts a single dummy node with execution_time 1 as a
// successor of every current sink node (computed before the dummy source
// was considered a sink), and returns its id.
func (d *DAG) AddDummySinkNode() (int32, error) {
	if d.HasNode(dummySinkID) {
		return 0, ErrDummyAlreadyPresent
	}
	sinks := d.sinksExcluding(dummySourceID)
	if err := d.AddNode(NewNodeData(dummySinkID, map[string]int32{ParamExecutionTime: DummyExecutionTime})); err != nil {
		return 0, err
	}
	for _, s := range sinks {
		if err := d.AddEdge(s, dummySinkID, 0); err != nil {
			return 0, err
		}
	}
	return dummySinkID, nil
}

// sinksExcluding returns SinkNodes() filtering out a specific id (used so a
// freshly inserted dummy source, itself currently a sink only if the DAG was
// empty, never becomes a predecessor of the dummy sink by accident).
func (d *DAG) sinksExcluding(exclude int32) []int32 {
	var out []int32
	for _, id := range d.SinkNodes() {
		if id != exclude {
			out = append(out, id)
		}
	}
	return out
}

// RemoveDummySourceNode removes the dummy source node and its edges,
// restoring the DAG's original shape. Returns ErrNoDummyPresent if none was
// inserted.
func (d *DAG) RemoveDummySourceNode() error {
	return d.removeDummy(dummySourceID)
}

// RemoveDummySinkNode removes the dummy sink node and its edges.
func (d *DAG) RemoveDummySinkNode() error {
	return d.removeDummy(dummySinkID)
}

func (d *DAG) removeDummy(id int32) error {
	if !d.HasNode(id) {
		return ErrNoDummyPresent
	}
	d.muEdges.Lock()
	for from := range d.succ {
		delete(d.succ[from], id)
	}
	for to := range d.pred {
		delete(d.pred[to], id)
	}
	delete(d.succ, id)
	delete(d.pred, id)
	d.muEdges.Unlock()

	d.muNodes.Lock()
	delete(d.nodes, id)
	for i, nid := range d.order {
		if nid == id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	d.muNodes.Unlock()
	return nil
}

// IsDummyID reports whether id is one of the reserved dummy source/sink ids,
// so callers (e.g. the list scheduler's execution_order trimming) can
// exclude them without depending on this package's internal constants.
func IsDummyID(id int32) bool {
	return id == dummySourceID || id == dummySinkID
}
