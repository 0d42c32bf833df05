package schedlog_test

import (
	"testing"

	"github.com/rtsched/dagsched/dagmodel"
	"github.com/rtsched/dagsched/schedlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildPeriodicDAG(t *testing.T, period int32) *dagmodel.DAG {
	t.Helper()
	d := dagmodel.NewDAG()
	require.NoError(t, d.AddNode(dagmodel.NewNodeData(0, map[string]int32{
		dagmodel.ParamExecutionTime: 3, dagmodel.ParamPeriod: period,
	})))
	require.NoError(t, d.AddNode(dagmodel.NewNodeData(1, map[string]int32{
		dagmodel.ParamExecutionTime: 2, dagmodel.ParamEndToEndDeadline: period,
	})))
	require.NoError(t, d.AddEdge(0, 1, 0))
	return d
}

func TestIntraLogUtilization(t *testing.T) {
	l := schedlog.NewDAGSchedulerLog(1)
	l.WriteAllocatingNode(0, 0, 0)
	l.WriteFinishingNode(0, 3)
	l.WriteAllocatingNode(1, 0, 3)
	l.WriteFinishingNode(1, 5)
	l.CalculateUtilization(5)

	logs := l.CoreLogs()
	require.Len(t, logs, 1)
	assert.EqualValues(t, 5, logs[0].TotalProcTime)
	assert.InDelta(t, 1.0, logs[0].Utilization, 1e-9)
}

func TestSetLogRoundTripsToDocument(t *testing.T) {
	d := buildPeriodicDAG(t, 10)
	require.NoError(t, d.SetDAGID(0))
	dagSet := []*dagmodel.DAG{d}

	l, err := schedlog.NewDAGSetSchedulerLog(dagSet, 2)
	require.NoError(t, err)

	l.WriteDAGReleaseTime(0, 0)
	l.WriteDAGStartTime(0, 0)
	l.WriteAllocatingNode(0, 0, 0, 0, 3)
	l.WriteFinishingNode(0, 0, 3)
	l.WriteAllocatingNode(0, 1, 0, 3, 2)
	l.WriteFinishingNode(0, 1, 5)
	l.WriteDAGFinishTime(0, 5)
	l.CalculateUtilization(10)
	l.SetResult(true)

	assert.EqualValues(t, 5, l.WorstResponseTime(0))

	doc := l.ToDocument("test-run")
	assert.Equal(t, "test-run", doc.RunID)
	assert.Len(t, doc.DAGSetLog, 1)
	assert.Equal(t, true, doc.Result)

	out, err := doc.ToYAML()
	require.NoError(t, err)
	assert.Contains(t, string(out), "run_id: test-run")
}
