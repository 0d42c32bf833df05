package schedlog

import "github.com/rtsched/dagsched/dagmodel"

// ToDocument renders a single intra-DAG scheduling run into the same
// structured document shape a DAGSetSchedulerLog produces, treating dag
// as dag_id 0. result is the policy-specific outcome (a bool for
// fixed-priority schedulability against end_to_end_deadline).
func (l *DAGSchedulerLog) ToDocument(runID string, dag *dagmodel.DAG, executionOrder []int32, result interface{}) (*Document, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

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

	info := DAGInfo{
		CriticalPathLength: length,
		EndToEndDeadline:   deadline,
		Volume:             volume,
		Period:             period,
		Utilization:        util,
	}

	nodeLogs := make(map[int32]*NodeRunLog, len(executionOrder))
	for _, id := range executionOrder {
		nl, ok := l.nodeLogs[id]
		if !ok {
			continue
		}
		nodeLogs[id] = &NodeRunLog{
			DAGID:      0,
			NodeID:     id,
			CoreID:     []int{nl.CoreID},
			StartTime:  []int32{nl.StartTime},
			FinishTime: []int32{nl.FinishTime},
		}
	}

	return &Document{
		RunID: runID,
		DAGSetInfo: DAGSetInfo{
			TotalUtilization: util,
			EachDAGInfo:      []DAGInfo{info},
		},
		ProcessorInfo: ProcessorInfo{NumberOfCores: l.numCores},
		DAGSetLog: []DAGRunLog{{
			DAGID:      0,
			ReleaseTime: []int32{0},
			StartTime:   []int32{0},
		}},
		NodeSetLogs: map[int32]map[int32]*NodeRunLog{0: nodeLogs},
		ProcessorLog: ProcessorLog{
			CoreLogs: append([]CoreLog(nil), l.coreLogsFinal...),
		},
		Result: result,
	}, nil
}
