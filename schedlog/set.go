package schedlog

import (
	"sync"

	"github.com/rtsched/dagsched/dagmodel"
)

// DAGSetSchedulerLog is the append-only log of one DAGSetSchedulerBase run
// over a full hyper-period: per-DAG release/start/finish history and
// per-node, per-period timing, plus final processor utilization.
type DAGSetSchedulerLog struct {
	mu sync.Mutex

	numCores   int
	dagInfo    []DAGInfo
	dagRuns    map[int32]*DAGRunLog
	nodeRuns   map[int32]map[int32]*NodeRunLog
	coreProc   []int32
	coreLogs   []CoreLog
	avgUtil    float64
	varUtil    float64
	result     interface{}
	finalized  bool
}

// NewDAGSetSchedulerLog builds a log pre-populated with dag_set_info
// derived from each DAG's current quantities, and empty per-DAG/per-node
// tracking structures.
func NewDAGSetSchedulerLog(dagSet []*dagmodel.DAG, numCores int) (*DAGSetSchedulerLog, error) {
	l := &DAGSetSchedulerLog{
		numCores: numCores,
		dagRuns:  make(map[int32]*DAGRunLog, len(dagSet)),
		nodeRuns: make(map[int32]map[int32]*NodeRunLog, len(dagSet)),
		coreProc: make([]int32, numCores),
	}
	for dagID, dag := range dagSet {
		id := int32(dagID)
		volume, err := dag.Volume()
		if err != nil {
			return nil, err
		}
		_, length, err := dag.CriticalPath()
		if err != nil {
			return nil, err
		}
		period, err := dag.HeadPeriod()
		if err != nil {
			return nil, err
		}
		deadline, _, err := dag.GetEndToEndDeadline()
		if err != nil {
			return nil, err
		}
		util, err := dag.Utilization()
		if err != nil {
			return nil, err
		}
		l.dagInfo = append(l.dagInfo, DAGInfo{
			CriticalPathLength: length,
			EndToEndDeadline:   deadline,
			Volume:             volume,
			Period:             period,
			Utilization:        util,
		})
		l.dagRuns[id] = &DAGRunLog{DAGID: id}
		l.nodeRuns[id] = make(map[int32]*NodeRunLog)
		for _, nodeID := range dag.NodeIDs() {
			l.nodeRuns[id][nodeID] = &NodeRunLog{DAGID: id, NodeID: nodeID}
		}
	}
	return l, nil
}

// WriteDAGReleaseTime appends a release timestamp for dagID.
func (l *DAGSetSchedulerLog) WriteDAGReleaseTime(dagID int32, t int32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dagRuns[dagID].ReleaseTime = append(l.dagRuns[dagID].ReleaseTime, t)
}

// WriteDAGStartTime appends a start timestamp for dagID.
func (l *DAGSetSchedulerLog) WriteDAGStartTime(dagID int32, t int32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.dagRuns[dagID].StartTime = append(l.dagRuns[dagID].StartTime, t)
}

// WriteDAGFinishTime appends a finish timestamp for dagID and recomputes
// its worst observed response time over every period seen so far.
func (l *DAGSetSchedulerLog) WriteDAGFinishTime(dagID int32, t int32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	run := l.dagRuns[dagID]
	run.FinishTime = append(run.FinishTime, t)

	n := len(run.FinishTime)
	if n > len(run.ReleaseTime) {
		n = len(run.ReleaseTime)
	}
	for i := 0; i < n; i++ {
		resp := run.FinishTime[i] - run.ReleaseTime[i]
		if resp > run.WorstResponseTime {
			run.WorstResponseTime = resp
		}
	}
}

// WriteAllocatingNode records that nodeID of dagID started on coreIndex at
// time t with the given execution time, accruing onto the core's total
// processing time.
func (l *DAGSetSchedulerLog) WriteAllocatingNode(dagID, nodeID int32, coreIndex int, t int32, execTime int32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	nl := l.nodeRuns[dagID][nodeID]
	nl.CoreID = append(nl.CoreID, coreIndex)
	nl.StartTime = append(nl.StartTime, t)
	l.coreProc[coreIndex] += execTime
}

// WriteFinishingNode records that nodeID of dagID finished at time t.
func (l *DAGSetSchedulerLog) WriteFinishingNode(dagID, nodeID int32, t int32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	nl := l.nodeRuns[dagID][nodeID]
	nl.FinishTime = append(nl.FinishTime, t)
}

// SetResult attaches the policy-specific result: a bool for
// fixed-priority/global-EDF, or a federated.Result.
func (l *DAGSetSchedulerLog) SetResult(result interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.result = result
}

// WorstResponseTime returns dagID's worst observed response time so far.
func (l *DAGSetSchedulerLog) WorstResponseTime(dagID int32) int32 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.dagRuns[dagID].WorstResponseTime
}

// CalculateUtilization finalizes per-core and aggregate processor
// utilization over [0, currentTime).
func (l *DAGSetSchedulerLog) CalculateUtilization(currentTime int32) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.coreLogs = make([]CoreLog, l.numCores)
	var sum float64
	utils := make([]float64, l.numCores)
	for i := 0; i < l.numCores; i++ {
		util := 0.0
		if currentTime > 0 {
			util = float64(l.coreProc[i]) / float64(currentTime)
		}
		utils[i] = util
		sum += util
		l.coreLogs[i] = CoreLog{CoreID: i, TotalProcTime: l.coreProc[i], Utilization: util}
	}
	l.avgUtil = sum / float64(l.numCores)
	var variance float64
	for _, u := range utils {
		d := u - l.avgUtil
		variance += d * d
	}
	l.varUtil = variance / float64(l.numCores)
	l.finalized = true
}

// TotalUtilization returns the sum of every DAG's utilization
// (dag_set_info.total_utilization).
func (l *DAGSetSchedulerLog) TotalUtilization() float64 {
	var total float64
	for _, info := range l.dagInfo {
		total += info.Utilization
	}
	return total
}

// ToDocument renders the log into the structured output document. runID is
// the caller-supplied per-run identifier (see dagio, which generates one
// with github.com/google/uuid).
func (l *DAGSetSchedulerLog) ToDocument(runID string) *Document {
	l.mu.Lock()
	defer l.mu.Unlock()

	doc := &Document{
		RunID: runID,
		DAGSetInfo: DAGSetInfo{
			TotalUtilization: l.TotalUtilization(),
			EachDAGInfo:      append([]DAGInfo(nil), l.dagInfo...),
		},
		ProcessorInfo: ProcessorInfo{NumberOfCores: l.numCores},
		ProcessorLog: ProcessorLog{
			AverageUtilization:  l.avgUtil,
			VarianceUtilization: l.varUtil,
			CoreLogs:            append([]CoreLog(nil), l.coreLogs...),
		},
		NodeSetLogs: make(map[int32]map[int32]*NodeRunLog, len(l.nodeRuns)),
		Result:      l.result,
	}
	// Iterate dag ids in ascending order rather than ranging over dagRuns
	// directly: map iteration order is randomized per process, and repeated
	// runs on identical input must produce byte-identical output.
	for dagID := int32(0); dagID < int32(len(l.dagInfo)); dagID++ {
		doc.DAGSetLog = append(doc.DAGSetLog, *l.dagRuns[dagID])
		doc.NodeSetLogs[dagID] = l.nodeRuns[dagID]
	}
	return doc
}
