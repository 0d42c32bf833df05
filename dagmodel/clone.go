package dagmodel

// Clone returns a deep copy of d: nodes, edges, and the stamped dag id.
// Complexity: O(V + E).
func (d *DAG) Clone() *DAG {
	d.muNodes.RLock()
	d.muEdges.RLock()
	defer d.muNodes.RUnlock()
	defer d.muEdges.RUnlock()

	out := NewDAG()
	out.dagID = d.dagID
	out.order = append([]int32(nil), d.order...)
	for id, n := range d.nodes {
		out.nodes[id] = n.clone()
	}
	for from, tos := range d.succ {
		m := make(map[int32]int32, len(tos))
		for to, w := range tos {
			m[to] = w
		}
		out.succ[from] = m
	}
	for to, froms := range d.pred {
		m := make(map[int32]int32, len(froms))
		for from, w := range froms {
			m[from] = w
		}
		out.pred[to] = m
	}
	return out
}
