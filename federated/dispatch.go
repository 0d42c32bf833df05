package federated

import (
	"github.com/rtsched/dagsched/dagmodel"
	"github.com/rtsched/dagsched/dagset"
)

// DedicatedRun is the outcome of actually dispatching one high-utilization
// DAG across the dedicated cores a Schedulable Analyze result assigned it.
type DedicatedRun struct {
	DAGID          int32
	DedicatedCores int32
	Makespan       int32
	ExecutionOrder []int32
}

// RunDedicated drives every high-utilization DAG (utilization > 1) in
// dagSet across its own dedicated cores. VerifyMinimumCores supplies the
// minimum core count found by its list-scheduling search (not the
// closed-form Melani bound) and the execution order a dedicated
// list-scheduling run produces at that width; a FederatedManager then
// gates admission the way a live federated dispatcher would, allocating
// cores one at a time until CanStart reports true, before NextNode walks
// the precomputed order to produce the dispatch sequence actually
// reported. Callers typically only invoke this once Analyze has already
// returned a Schedulable result for the same dagSet and core count.
func RunDedicated(dagSet []*dagmodel.DAG) ([]DedicatedRun, error) {
	var runs []DedicatedRun
	for k, dag := range dagSet {
		util, err := dag.Utilization()
		if err != nil {
			return nil, err
		}
		if util <= 1 {
			continue
		}

		period, err := dag.HeadPeriod()
		if err != nil {
			return nil, err
		}

		minCores, order, makespan, err := VerifyMinimumCores(dag, period)
		if err != nil {
			return nil, err
		}

		mgr := dagset.NewFederatedManager(minCores, order)
		for !mgr.CanStart() {
			mgr.AllocateCore()
		}

		var dispatched []int32
		for {
			id, ok := mgr.NextNode()
			if !ok {
				break
			}
			dispatched = append(dispatched, id)
		}

		runs = append(runs, DedicatedRun{
			DAGID:          int32(k),
			DedicatedCores: mgr.NumAllocatedCores(),
			Makespan:       makespan,
			ExecutionOrder: dispatched,
		})
	}
	return runs, nil
}
