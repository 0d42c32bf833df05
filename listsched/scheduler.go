package listsched

import (
	"math"

	"github.com/rtsched/dagsched/dagmodel"
	"github.com/rtsched/dagsched/procstate"
	"github.com/rtsched/dagsched/schedlog"
)

// WarnInconsistentPriority marks a Warning raised when a node had no
// priority parameter and DefaultPriority was substituted.
const WarnInconsistentPriority = "InconsistentPriority"

// Warning is a non-fatal condition raised during scheduling. The scheduler
// itself never logs; callers decide how to surface these (cmd/dagsched logs
// them with zap).
type Warning struct {
	Kind   string
	NodeID int32
}

// PriorityKey resolves a node's scheduling priority. ok is false when the
// node carries no explicit priority, in which case the caller substitutes
// dagmodel.DefaultPriority and records a Warning.
type PriorityKey func(dagmodel.NodeData) (priority int32, ok bool)

// FixedPriorityKey reads the ascending integer "priority" parameter:
// lower values dispatch first.
func FixedPriorityKey(n dagmodel.NodeData) (int32, bool) {
	return n.Get(dagmodel.ParamPriority)
}

// Result is the outcome of one intra-DAG scheduling run.
type Result struct {
	Makespan       int32
	ExecutionOrder []int32
	Log            *schedlog.DAGSchedulerLog
	Warnings       []Warning
}

// Schedule runs list scheduling of dag on proc using key to order the
// ready queue, and returns (makespan, execution_order) plus the per-run
// log. dag is cloned internally and never mutated; proc must start with
// every core idle.
func Schedule(dag *dagmodel.DAG, proc *procstate.ProcessorState, key PriorityKey) (*Result, error) {
	clone := dag.Clone()
	srcID, err := clone.AddDummySourceNode()
	if err != nil {
		return nil, err
	}
	sinkID, err := clone.AddDummySinkNode()
	if err != nil {
		return nil, err
	}

	rs := dagmodel.NewRunState(clone)
	log := schedlog.NewDAGSchedulerLog(proc.NumberOfCores())
	queue := newReadyQueue()
	var warnings []Warning

	priorityOf := func(id int32) int32 {
		if dagmodel.IsDummyID(id) {
			return math.MinInt32
		}
		node, _ := clone.Node(id)
		p, ok := key(node)
		if !ok {
			warnings = append(warnings, Warning{Kind: WarnInconsistentPriority, NodeID: id})
			return dagmodel.DefaultPriority
		}
		return p
	}

	queue.push(readyItem{nodeID: srcID, priority: priorityOf(srcID)})

	var executionOrder []int32
	var currentTime int32

	for {
		for {
			idx, ok := proc.GetIdleCoreIndex()
			if !ok {
				break
			}
			item, ok := queue.pop()
			if !ok {
				break
			}
			node, err := clone.Node(item.nodeID)
			if err != nil {
				return nil, err
			}
			if err := proc.AllocateSpecificCore(idx, node); err != nil {
				return nil, err
			}
			executionOrder = append(executionOrder, item.nodeID)
			if item.nodeID != srcID && item.nodeID != sinkID {
				log.WriteAllocatingNode(item.nodeID, idx, currentTime-dagmodel.DummyExecutionTime)
			}
		}

		var events []procstate.Event
		for {
			events = proc.Process()
			currentTime++
			done := false
			for _, e := range events {
				if e.Kind == procstate.Done {
					done = true
					break
				}
			}
			if done {
				break
			}
		}

		var doneIDs []int32
		for _, e := range events {
			if e.Kind != procstate.Done {
				continue
			}
			doneIDs = append(doneIDs, e.Node.ID)
			if e.Node.ID != srcID && e.Node.ID != sinkID {
				log.WriteFinishingNode(e.Node.ID, currentTime-dagmodel.DummyExecutionTime)
			}
		}

		if len(doneIDs) == 1 {
			suc, err := clone.SucNodes(doneIDs[0])
			if err != nil {
				return nil, err
			}
			if len(suc) == 0 {
				break
			}
		}

		for _, id := range doneIDs {
			suc, err := clone.SucNodes(id)
			if err != nil {
				return nil, err
			}
			for _, s := range suc {
				rs.IncrementPreDoneCount(s)
				ready, err := rs.IsNodeReady(clone, s)
				if err != nil {
					return nil, err
				}
				if ready {
					queue.push(readyItem{nodeID: s, priority: priorityOf(s)})
				}
			}
		}
	}

	// Execution order always starts with the dummy source (uniquely ready
	// at time zero) and ends with the dummy sink (ready only once every
	// real sink has finished), so trimming the first/last entries removes
	// exactly the dummy nodes.
	trimmed := executionOrder
	if len(trimmed) >= 2 {
		trimmed = trimmed[1 : len(trimmed)-1]
	}

	scheduleLength := currentTime - 2*dagmodel.DummyExecutionTime
	log.CalculateUtilization(scheduleLength)

	return &Result{
		Makespan:       scheduleLength,
		ExecutionOrder: trimmed,
		Log:            log,
		Warnings:       warnings,
	}, nil
}
