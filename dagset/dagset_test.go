package dagset_test

import (
	"testing"

	"github.com/rtsched/dagsched/dagmodel"
	"github.com/rtsched/dagsched/dagset"
	"github.com/rtsched/dagsched/procstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func singleNodeDAG(t *testing.T, execTime, period int32) *dagmodel.DAG {
	t.Helper()
	d := dagmodel.NewDAG()
	require.NoError(t, d.AddNode(dagmodel.NewNodeData(0, map[string]int32{
		dagmodel.ParamExecutionTime: execTime,
		dagmodel.ParamPeriod:        period,
	})))
	return d
}

func TestRunSingleDAGOnePeriod(t *testing.T) {
	d := singleNodeDAG(t, 2, 5)
	proc, err := procstate.New(1)
	require.NoError(t, err)

	result, err := dagset.Run([]*dagmodel.DAG{d}, proc, dagset.NewGlobalEDFScheduler(), dagset.NonPreemptive)
	require.NoError(t, err)

	assert.EqualValues(t, 5, result.HyperPeriod)
	assert.EqualValues(t, 2, result.Log.WorstResponseTime(0))
}

func TestRunRejectsPreemptive(t *testing.T) {
	d := singleNodeDAG(t, 1, 1)
	proc, err := procstate.New(1)
	require.NoError(t, err)

	_, err = dagset.Run([]*dagmodel.DAG{d}, proc, dagset.NewGlobalEDFScheduler(), dagset.Preemptive)
	assert.ErrorIs(t, err, dagset.ErrPreemptionUnsupported)
}

func TestRunTwoDAGsShareCore(t *testing.T) {
	a := singleNodeDAG(t, 2, 4)
	b := singleNodeDAG(t, 2, 6)
	proc, err := procstate.New(1)
	require.NoError(t, err)

	result, err := dagset.Run([]*dagmodel.DAG{a, b}, proc, dagset.NewGlobalEDFScheduler(), dagset.NonPreemptive)
	require.NoError(t, err)

	assert.EqualValues(t, 12, result.HyperPeriod)
	// Every release of the tighter-period DAG must meet its deadline since
	// it always wins the EDF comparator against the looser-period DAG.
	assert.LessOrEqual(t, result.Log.WorstResponseTime(0), int32(4))
}

func TestGlobalEDFScheduler_OrdersByPeriodThenNodeThenDAG(t *testing.T) {
	s := dagset.NewGlobalEDFScheduler()
	s.PushReady(1, dagmodel.NewNodeData(5, map[string]int32{dagmodel.ParamPeriod: 10}))
	s.PushReady(0, dagmodel.NewNodeData(2, map[string]int32{dagmodel.ParamPeriod: 5}))
	s.PushReady(0, dagmodel.NewNodeData(9, map[string]int32{})) // no period: ranks last

	dagID, node, ok := s.PopReady()
	require.True(t, ok)
	assert.EqualValues(t, 0, dagID)
	assert.EqualValues(t, 2, node.ID)

	dagID, node, ok = s.PopReady()
	require.True(t, ok)
	assert.EqualValues(t, 1, dagID)
	assert.EqualValues(t, 5, node.ID)

	dagID, node, ok = s.PopReady()
	require.True(t, ok)
	assert.EqualValues(t, 0, dagID)
	assert.EqualValues(t, 9, node.ID)

	_, _, ok = s.PopReady()
	assert.False(t, ok)
}

func TestBasicManagerLifecycle(t *testing.T) {
	m := dagset.NewBasicManager()
	assert.False(t, m.IsReleased())
	assert.False(t, m.IsStarted())
	assert.EqualValues(t, 0, m.ReleaseCount())

	m.Release()
	m.IncrementReleaseCount()
	m.Start()
	assert.True(t, m.IsReleased())
	assert.True(t, m.IsStarted())
	assert.EqualValues(t, 1, m.ReleaseCount())

	m.ResetState()
	assert.False(t, m.IsReleased())
	assert.False(t, m.IsStarted())
	assert.EqualValues(t, 1, m.ReleaseCount())
}

func TestFederatedManagerExecutionOrderRewindsOnReset(t *testing.T) {
	m := dagset.NewFederatedManager(2, []int32{1, 2, 3})
	assert.False(t, m.CanStart())
	m.AllocateCore()
	m.AllocateCore()
	assert.True(t, m.CanStart())

	id, ok := m.NextNode()
	require.True(t, ok)
	assert.EqualValues(t, 1, id)

	m.ResetState()
	m.FreeAllocatedCores()
	assert.False(t, m.CanStart())

	id, ok = m.NextNode()
	require.True(t, ok)
	assert.EqualValues(t, 1, id)
}
