package dagset

import (
	"github.com/rtsched/dagsched/dagmodel"
	"github.com/rtsched/dagsched/procstate"
	"github.com/rtsched/dagsched/schedlog"
)

// Result is the outcome of one DAGSetSchedulerBase run: the time the
// hyper-period loop reached and the full per-run log.
type Result struct {
	HyperPeriod int32
	Log         *schedlog.DAGSetSchedulerLog
}

// Run drives dagSet over one hyper-period on proc using policy to order
// dispatch, implementing a six-phase per-tick cycle: release, start,
// allocate, process, retire, enqueue-ready. proc must start with every
// core idle. Each DAG in dagSet is stamped with its index as dag_id,
// overwriting any id it already carried.
func Run(dagSet []*dagmodel.DAG, proc *procstate.ProcessorState, policy Policy, preemptive PreemptiveType) (*Result, error) {
	if preemptive == Preemptive {
		return nil, ErrPreemptionUnsupported
	}

	for k, dag := range dagSet {
		if err := dag.SetDAGID(int32(k)); err != nil {
			return nil, err
		}
	}

	managers := make([]*BasicManager, len(dagSet))
	runStates := make([]*dagmodel.RunState, len(dagSet))
	for k, dag := range dagSet {
		managers[k] = NewBasicManager()
		runStates[k] = dagmodel.NewRunState(dag)
	}

	// Every node handed to the policy is stamped with its DAG's head
	// period, so non-head nodes are ordered by their DAG's period too.
	periods := make([]int32, len(dagSet))
	for k, dag := range dagSet {
		period, err := dag.HeadPeriod()
		if err != nil {
			return nil, err
		}
		periods[k] = period
	}

	log, err := schedlog.NewDAGSetSchedulerLog(dagSet, proc.NumberOfCores())
	if err != nil {
		return nil, err
	}

	hp, err := hyperPeriod(dagSet)
	if err != nil {
		return nil, err
	}

	var currentTime int32
	for currentTime < hp {
		// Phase 1: release every DAG whose period has come due.
		for k, dag := range dagSet {
			headOffset, err := dag.HeadOffset()
			if err != nil {
				return nil, err
			}
			headPeriod, err := dag.HeadPeriod()
			if err != nil {
				return nil, err
			}
			if currentTime == headOffset+headPeriod*managers[k].ReleaseCount() {
				managers[k].Release()
				managers[k].IncrementReleaseCount()
				log.WriteDAGReleaseTime(int32(k), currentTime)
			}
		}

		// Phase 2: start released-but-not-started DAGs, bounded by idle
		// cores as a soft admission check, not a hard reservation.
		idleBudget := proc.GetIdleCoreNum()
		for k, dag := range dagSet {
			if idleBudget <= 0 {
				break
			}
			if !managers[k].IsReleased() || managers[k].IsStarted() {
				continue
			}
			managers[k].Start()
			idleBudget--
			sources, err := sourceNodeData(dag)
			if err != nil {
				return nil, err
			}
			for _, n := range sources {
				n.Params[dagmodel.ParamPeriod] = periods[k]
			}
			policy.SeedReady(int32(k), sources)
			log.WriteDAGStartTime(int32(k), currentTime)
		}

		// Phase 3: allocate ready nodes onto idle cores.
		for {
			idx, ok := proc.GetIdleCoreIndex()
			if !ok {
				break
			}
			dagID, node, ok := policy.PopReady()
			if !ok {
				break
			}
			et, err := node.ExecutionTime()
			if err != nil {
				return nil, err
			}
			if err := proc.AllocateSpecificCore(idx, node); err != nil {
				return nil, err
			}
			log.WriteAllocatingNode(dagID, node.ID, idx, currentTime, et)
		}

		// Phase 4: advance one tick.
		events := proc.Process()
		currentTime++

		// Phase 5 + 6: retire finished nodes, enqueue newly ready
		// successors, and reset a DAG as soon as one of its sink nodes (a
		// node with no successors) finishes.
		for _, e := range events {
			if e.Kind != procstate.Done {
				continue
			}
			dagID, ok := e.Node.Get(dagmodel.ParamDAGID)
			if !ok {
				continue
			}
			dag := dagSet[dagID]
			log.WriteFinishingNode(dagID, e.Node.ID, currentTime)

			suc, err := dag.SucNodes(e.Node.ID)
			if err != nil {
				return nil, err
			}
			if len(suc) == 0 {
				log.WriteDAGFinishTime(dagID, currentTime)
				runStates[dagID].Reset(dag)
				managers[dagID].ResetState()
				continue
			}
			for _, s := range suc {
				runStates[dagID].IncrementPreDoneCount(s)
				ready, err := runStates[dagID].IsNodeReady(dag, s)
				if err != nil {
					return nil, err
				}
				if ready {
					node, err := dag.Node(s)
					if err != nil {
						return nil, err
					}
					node.Params[dagmodel.ParamPeriod] = periods[dagID]
					policy.PushReady(dagID, node)
				}
			}
		}
	}

	log.CalculateUtilization(currentTime)
	return &Result{HyperPeriod: currentTime, Log: log}, nil
}

func sourceNodeData(dag *dagmodel.DAG) ([]dagmodel.NodeData, error) {
	var out []dagmodel.NodeData
	for _, id := range dag.SourceNodes() {
		n, err := dag.Node(id)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}
