package schedlog

import "sync"

// IntraNodeLog is one node's timing record within a single intra-DAG list
// scheduler run.
type IntraNodeLog struct {
	CoreID     int
	StartTime  int32
	FinishTime int32
}

// DAGSchedulerLog is the append-only log of one intra-DAG list scheduling
// run: per-node allocate/finish timestamps and per-core utilization.
type DAGSchedulerLog struct {
	mu            sync.Mutex
	numCores      int
	nodeLogs      map[int32]*IntraNodeLog
	coreProcTime  []int32
	coreLogsFinal []CoreLog
}

// NewDAGSchedulerLog returns an empty log sized for numCores cores.
func NewDAGSchedulerLog(numCores int) *DAGSchedulerLog {
	return &DAGSchedulerLog{
		numCores:     numCores,
		nodeLogs:     make(map[int32]*IntraNodeLog),
		coreProcTime: make([]int32, numCores),
	}
}

// WriteAllocatingNode records that nodeID started on coreIndex at time t.
func (l *DAGSchedulerLog) WriteAllocatingNode(nodeID int32, coreIndex int, t int32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.nodeLogs[nodeID] = &IntraNodeLog{CoreID: coreIndex, StartTime: t}
}

// WriteFinishingNode records that nodeID finished at time t, and accrues
// its execution time onto its core's running utilization total.
func (l *DAGSchedulerLog) WriteFinishingNode(nodeID int32, t int32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	nl, ok := l.nodeLogs[nodeID]
	if !ok {
		return
	}
	nl.FinishTime = t
	l.coreProcTime[nl.CoreID] += nl.FinishTime - nl.StartTime
}

// NodeLog returns the recorded timing for nodeID, if any.
func (l *DAGSchedulerLog) NodeLog(nodeID int32) (IntraNodeLog, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	nl, ok := l.nodeLogs[nodeID]
	if !ok {
		return IntraNodeLog{}, false
	}
	return *nl, true
}

// CalculateUtilization finalizes per-core utilization over scheduleLength
// ticks.
func (l *DAGSchedulerLog) CalculateUtilization(scheduleLength int32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.coreLogsFinal = make([]CoreLog, l.numCores)
	for i := 0; i < l.numCores; i++ {
		util := 0.0
		if scheduleLength > 0 {
			util = float64(l.coreProcTime[i]) / float64(scheduleLength)
		}
		l.coreLogsFinal[i] = CoreLog{CoreID: i, TotalProcTime: l.coreProcTime[i], Utilization: util}
	}
}

// CoreLogs returns the finalized per-core utilization records.
func (l *DAGSchedulerLog) CoreLogs() []CoreLog {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]CoreLog(nil), l.coreLogsFinal...)
}
