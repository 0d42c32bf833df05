package dagmodel

// TopoSort returns the node ids in a topological order, ties among nodes
// that become ready simultaneously broken by ascending id (so the order is
// deterministic). Returns ErrCyclicDAG if the graph is not acyclic.
// Complexity: O(V log V + E).
func (d *DAG) TopoSort() ([]int32, error) {
	ids := d.NodeIDs()
	inDeg := make(map[int32]int, len(ids))
	for _, id := range ids {
		n, err := d.InDegree(id)
		if err != nil {
			return nil, err
		}
		inDeg[id] = n
	}

	ready := make([]int32, 0, len(ids))
	for _, id := range ids {
		if inDeg[id] == 0 {
			ready = append(ready, id)
		}
	}
	sortInt32s(ready)

	order := make([]int32, 0, len(ids))
	for len(ready) > 0 {
		// pop smallest id
		cur := ready[0]
		ready = ready[1:]
		order = append(order, cur)

		suc, err := d.SucNodes(cur)
		if err != nil {
			return nil, err
		}
		for _, s := range suc {
			inDeg[s]--
			if inDeg[s] == 0 {
				ready = insertSorted(ready, s)
			}
		}
	}

	if len(order) != len(ids) {
		return nil, ErrCyclicDAG
	}
	return order, nil
}

func insertSorted(s []int32, v int32) []int32 {
	i := 0
	for i < len(s) && s[i] < v {
		i++
	}
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v
	return s
}

// Validate checks the acyclicity invariant and returns ErrCyclicDAG if
// violated.
func (d *DAG) Validate() error {
	_, err := d.TopoSort()
	return err
}
