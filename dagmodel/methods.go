package dagmodel

import "sort"

// AddNode inserts a node with the given id and parameters. Returns
// ErrDuplicateNode if the id is already present.
// Complexity: O(1) amortized.
func (d *DAG) AddNode(node NodeData) error {
	d.muNodes.Lock()
	defer d.muNodes.Unlock()

	if _, exists := d.nodes[node.ID]; exists {
		return ErrDuplicateNode
	}
	d.nodes[node.ID] = node.clone()
	d.order = append(d.order, node.ID)

	d.muEdges.Lock()
	d.ensureAdj(node.ID)
	d.muEdges.Unlock()

	return nil
}

// HasNode reports whether id exists in the DAG.
func (d *DAG) HasNode(id int32) bool {
	d.muNodes.RLock()
	defer d.muNodes.RUnlock()
	_, ok := d.nodes[id]
	return ok
}

// Node returns a copy of the node data for id.
func (d *DAG) Node(id int32) (NodeData, error) {
	d.muNodes.RLock()
	defer d.muNodes.RUnlock()
	n, ok := d.nodes[id]
	if !ok {
		return NodeData{}, ErrNodeNotFound
	}
	return n.clone(), nil
}

// SetParam overwrites a single parameter on node id.
func (d *DAG) SetParam(id int32, key string, value int32) error {
	d.muNodes.Lock()
	defer d.muNodes.Unlock()
	n, ok := d.nodes[id]
	if !ok {
		return ErrNodeNotFound
	}
	n.Params[key] = value
	d.nodes[id] = n
	return nil
}

// NodeCount returns the number of nodes.
func (d *DAG) NodeCount() int {
	d.muNodes.RLock()
	defer d.muNodes.RUnlock()
	return len(d.nodes)
}

// NodeIDs returns every node id, ascending.
func (d *DAG) NodeIDs() []int32 {
	d.muNodes.RLock()
	defer d.muNodes.RUnlock()
	ids := make([]int32, 0, len(d.nodes))
	for id := range d.nodes {
		ids = append(ids, id)
	}
	sortInt32s(ids)
	return ids
}

// AddEdge adds a precedence edge from -> to with the given weight. Both
// endpoints must already exist. Weight is stored but never interpreted
// arithmetically by schedulers; it expresses precedence ordering only.
// Complexity: O(1).
func (d *DAG) AddEdge(from, to int32, weight int32) error {
	if !d.HasNode(from) {
		return ErrNodeNotFound
	}
	if !d.HasNode(to) {
		return ErrNodeNotFound
	}
	d.muEdges.Lock()
	defer d.muEdges.Unlock()
	d.ensureAdj(from)
	d.ensureAdj(to)
	d.succ[from][to] = weight
	d.pred[to][from] = weight
	return nil
}

// ensureAdj must be called with muEdges held.
func (d *DAG) ensureAdj(id int32) {
	if _, ok := d.succ[id]; !ok {
		d.succ[id] = make(map[int32]int32)
	}
	if _, ok := d.pred[id]; !ok {
		d.pred[id] = make(map[int32]int32)
	}
}

// SucNodes returns the direct successors of id, ascending by id. Returns an
// empty (non-nil) slice if id has no successors.
func (d *DAG) SucNodes(id int32) ([]int32, error) {
	return d.neighbors(id, true)
}

// PreNodes returns the direct predecessors of id, ascending by id.
func (d *DAG) PreNodes(id int32) ([]int32, error) {
	return d.neighbors(id, false)
}

func (d *DAG) neighbors(id int32, successors bool) ([]int32, error) {
	if !d.HasNode(id) {
		return nil, ErrNodeNotFound
	}
	d.muEdges.RLock()
	defer d.muEdges.RUnlock()
	table := d.pred
	if successors {
		table = d.succ
	}
	out := make([]int32, 0, len(table[id]))
	for n := range table[id] {
		out = append(out, n)
	}
	sortInt32s(out)
	return out, nil
}

// InDegree returns the number of direct predecessors of id.
func (d *DAG) InDegree(id int32) (int, error) {
	pre, err := d.PreNodes(id)
	if err != nil {
		return 0, err
	}
	return len(pre), nil
}

// OutDegree returns the number of direct successors of id.
func (d *DAG) OutDegree(id int32) (int, error) {
	suc, err := d.SucNodes(id)
	if err != nil {
		return 0, err
	}
	return len(suc), nil
}

// SourceNodes returns every node with in-degree 0, ascending by id.
func (d *DAG) SourceNodes() []int32 {
	var out []int32
	for _, id := range d.NodeIDs() {
		if in, _ := d.InDegree(id); in == 0 {
			out = append(out, id)
		}
	}
	return out
}

// SinkNodes returns every node with out-degree 0, ascending by id.
func (d *DAG) SinkNodes() []int32 {
	var out []int32
	for _, id := range d.NodeIDs() {
		if out2, _ := d.OutDegree(id); out2 == 0 {
			out = append(out, id)
		}
	}
	return out
}

func sortInt32s(s []int32) {
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
}
