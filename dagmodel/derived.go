package dagmodel

// Volume returns the sum of execution_time over all nodes.
func (d *DAG) Volume() (int32, error) {
	var total int32
	for _, id := range d.NodeIDs() {
		n, err := d.Node(id)
		if err != nil {
			return 0, err
		}
		et, err := n.ExecutionTime()
		if err != nil {
			return 0, err
		}
		total += et
	}
	return total, nil
}

// CriticalPath returns any longest path by execution_time sum, ties broken
// by smallest node id at each branch, along with its length.
// Complexity: O(V + E).
func (d *DAG) CriticalPath() ([]int32, int32, error) {
	order, err := d.TopoSort()
	if err != nil {
		return nil, 0, err
	}
	if len(order) == 0 {
		return nil, 0, ErrEmptyDAG
	}

	longest := make(map[int32]int32, len(order))
	next := make(map[int32]int32, len(order))
	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		n, err := d.Node(id)
		if err != nil {
			return nil, 0, err
		}
		et, err := n.ExecutionTime()
		if err != nil {
			return nil, 0, err
		}

		suc, err := d.SucNodes(id)
		if err != nil {
			return nil, 0, err
		}
		best := int32(-1)
		var bestSuc int32
		for _, s := range suc { // suc is ascending, so first max found wins ties by smallest id
			if longest[s] > best {
				best = longest[s]
				bestSuc = s
			}
		}
		if best < 0 {
			longest[id] = et
		} else {
			longest[id] = et + best
			next[id] = bestSuc
		}
	}

	var start int32
	var bestLen int32 = -1
	for _, id := range order { // ascending id, first max wins ties
		if longest[id] > bestLen {
			bestLen = longest[id]
			start = id
		}
	}

	var path []int32
	cur := start
	for {
		path = append(path, cur)
		nxt, ok := next[cur]
		if !ok {
			break
		}
		cur = nxt
	}
	return path, bestLen, nil
}

// Utilization returns Volume / period, using the head period node.
func (d *DAG) Utilization() (float64, error) {
	volume, err := d.Volume()
	if err != nil {
		return 0, err
	}
	period, err := d.HeadPeriod()
	if err != nil {
		return 0, err
	}
	if period == 0 {
		return 0, newMissingAttribute(ParamPeriod, 0)
	}
	return float64(volume) / float64(period), nil
}

// headSource returns the unique source node carrying a period parameter.
func (d *DAG) headSource() (int32, error) {
	var found int32 = -1
	have := false
	for _, id := range d.SourceNodes() {
		n, err := d.Node(id)
		if err != nil {
			return 0, err
		}
		if _, ok := n.Get(ParamPeriod); ok {
			if have {
				return 0, ErrMultipleHeadSources
			}
			found = id
			have = true
		}
	}
	if !have {
		return 0, ErrNoHeadSource
	}
	return found, nil
}

// HeadPeriod returns the period attribute of the unique period-bearing
// source node.
func (d *DAG) HeadPeriod() (int32, error) {
	id, err := d.headSource()
	if err != nil {
		return 0, err
	}
	n, err := d.Node(id)
	if err != nil {
		return 0, err
	}
	return n.MustGet(ParamPeriod)
}

// HeadOffset returns the offset attribute of the head source, defaulting to
// 0 when absent.
func (d *DAG) HeadOffset() (int32, error) {
	id, err := d.headSource()
	if err != nil {
		return 0, err
	}
	n, err := d.Node(id)
	if err != nil {
		return 0, err
	}
	v, _ := n.Get(ParamOffset)
	return v, nil
}

// SetDAGPeriod sets the period parameter on the head source node. If no
// source currently carries a period, the first source node (ascending id)
// is promoted to head source.
func (d *DAG) SetDAGPeriod(period int32) error {
	id, err := d.headSource()
	if err != nil {
		sources := d.SourceNodes()
		if len(sources) == 0 {
			return ErrEmptyDAG
		}
		id = sources[0]
	}
	return d.SetParam(id, ParamPeriod, period)
}

// GetEndToEndDeadline returns the end_to_end_deadline parameter found on any
// sink node, and whether one was found.
func (d *DAG) GetEndToEndDeadline() (int32, bool, error) {
	for _, id := range d.SinkNodes() {
		n, err := d.Node(id)
		if err != nil {
			return 0, false, err
		}
		if v, ok := n.Get(ParamEndToEndDeadline); ok {
			return v, true, nil
		}
	}
	return 0, false, nil
}

// DAGID returns the id stamped by SetDAGID, or -1 if never stamped.
func (d *DAG) DAGID() int32 {
	d.muNodes.RLock()
	defer d.muNodes.RUnlock()
	return d.dagID
}

// SetDAGID stamps dag_id = k on the DAG itself and on every node's
// parameters, so nodes remain identifiable by owning DAG after they leave
// the DAG (e.g. in a global ready set).
func (d *DAG) SetDAGID(k int32) error {
	d.muNodes.Lock()
	d.dagID = k
	for id, n := range d.nodes {
		n.Params[ParamDAGID] = k
		d.nodes[id] = n
	}
	d.muNodes.Unlock()
	return nil
}

// NormalizeImplicitDeadline enforces implicit-deadline normalization:
//   - both period and deadline present and differ -> deadline is overridden
//     to equal period (caller should log a warning; see dagio).
//   - only one present -> the other is set equal to it.
//   - neither present -> ErrMissingDeadlineAndPeriod.
//
// Returns whether a deadline override occurred, so callers can emit an
// InconsistentDeadline warning.
func (d *DAG) NormalizeImplicitDeadline() (overridden bool, err error) {
	period, periodErr := d.HeadPeriod()
	deadline, hasDeadline, deadlineErr := d.GetEndToEndDeadline()
	hasPeriod := periodErr == nil

	switch {
	case hasPeriod && hasDeadline:
		if deadline != period {
			if err := d.setDeadlineOnSinks(period); err != nil {
				return false, err
			}
			return true, nil
		}
		return false, nil
	case hasPeriod && !hasDeadline:
		if deadlineErr != nil {
			return false, deadlineErr
		}
		sinks := d.SinkNodes()
		if len(sinks) == 0 {
			return false, ErrEmptyDAG
		}
		return false, d.SetParam(sinks[len(sinks)-1], ParamEndToEndDeadline, period)
	case !hasPeriod && hasDeadline:
		return false, d.SetDAGPeriod(deadline)
	default:
		return false, ErrMissingDeadlineAndPeriod
	}
}

func (d *DAG) setDeadlineOnSinks(period int32) error {
	for _, id := range d.SinkNodes() {
		n, err := d.Node(id)
		if err != nil {
			return err
		}
		if _, ok := n.Get(ParamEndToEndDeadline); ok {
			return d.SetParam(id, ParamEndToEndDeadline, period)
		}
	}
	return nil
}
