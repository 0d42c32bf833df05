package dagmodel_test

import (
	"testing"

	"github.com/rtsched/dagsched/dagmodel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chainDAG(t *testing.T) *dagmodel.DAG {
	t.Helper()
	d := dagmodel.NewDAG()
	require.NoError(t, d.AddNode(dagmodel.NewNodeData(0, map[string]int32{dagmodel.ParamExecutionTime: 3, dagmodel.ParamPriority: 0})))
	require.NoError(t, d.AddNode(dagmodel.NewNodeData(1, map[string]int32{dagmodel.ParamExecutionTime: 2, dagmodel.ParamPriority: 0})))
	require.NoError(t, d.AddNode(dagmodel.NewNodeData(2, map[string]int32{dagmodel.ParamExecutionTime: 4, dagmodel.ParamPriority: 0})))
	require.NoError(t, d.AddEdge(0, 1, 0))
	require.NoError(t, d.AddEdge(1, 2, 0))
	return d
}

func diamondDAG(t *testing.T) *dagmodel.DAG {
	t.Helper()
	d := dagmodel.NewDAG()
	require.NoError(t, d.AddNode(dagmodel.NewNodeData(0, map[string]int32{dagmodel.ParamExecutionTime: 5, dagmodel.ParamPriority: 0})))
	require.NoError(t, d.AddNode(dagmodel.NewNodeData(1, map[string]int32{dagmodel.ParamExecutionTime: 4, dagmodel.ParamPriority: 2})))
	require.NoError(t, d.AddNode(dagmodel.NewNodeData(2, map[string]int32{dagmodel.ParamExecutionTime: 3, dagmodel.ParamPriority: 1})))
	require.NoError(t, d.AddNode(dagmodel.NewNodeData(3, map[string]int32{dagmodel.ParamExecutionTime: 2, dagmodel.ParamPriority: 0})))
	require.NoError(t, d.AddEdge(0, 1, 0))
	require.NoError(t, d.AddEdge(0, 2, 0))
	require.NoError(t, d.AddEdge(1, 3, 0))
	require.NoError(t, d.AddEdge(2, 3, 0))
	return d
}

func TestSourceAndSinkNodes(t *testing.T) {
	d := diamondDAG(t)
	assert.Equal(t, []int32{0}, d.SourceNodes())
	assert.Equal(t, []int32{3}, d.SinkNodes())
}

func TestSucAndPreNodes(t *testing.T) {
	d := diamondDAG(t)
	suc, err := d.SucNodes(0)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2}, suc)

	pre, err := d.PreNodes(3)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, 2}, pre)
}

func TestVolume(t *testing.T) {
	d := chainDAG(t)
	v, err := d.Volume()
	require.NoError(t, err)
	assert.EqualValues(t, 9, v)
}

func TestCriticalPathChain(t *testing.T) {
	d := chainDAG(t)
	path, length, err := d.CriticalPath()
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 2}, path)
	assert.EqualValues(t, 9, length)
}

func TestCriticalPathDiamondLongestBranch(t *testing.T) {
	d := diamondDAG(t)
	// 0->1->3 has length 5+4+2=11; 0->2->3 has length 5+3+2=10. Longest wins.
	path, length, err := d.CriticalPath()
	require.NoError(t, err)
	assert.Equal(t, []int32{0, 1, 3}, path)
	assert.EqualValues(t, 11, length)
}

func TestDummySourceSinkRoundTrip(t *testing.T) {
	d := diamondDAG(t)
	origNodes := d.NodeCount()

	srcID, err := d.AddDummySourceNode()
	require.NoError(t, err)
	sinkID, err := d.AddDummySinkNode()
	require.NoError(t, err)

	suc, err := d.SucNodes(srcID)
	require.NoError(t, err)
	assert.Equal(t, []int32{0}, suc)

	pre, err := d.PreNodes(sinkID)
	require.NoError(t, err)
	assert.Equal(t, []int32{3}, pre)

	require.NoError(t, d.RemoveDummySinkNode())
	require.NoError(t, d.RemoveDummySourceNode())
	assert.Equal(t, origNodes, d.NodeCount())
	assert.Equal(t, []int32{0}, d.SourceNodes())
	assert.Equal(t, []int32{3}, d.SinkNodes())
}

func TestDummyInsertionIsNotIdempotent(t *testing.T) {
	d := diamondDAG(t)
	_, err := d.AddDummySourceNode()
	require.NoError(t, err)
	_, err = d.AddDummySourceNode()
	assert.ErrorIs(t, err, dagmodel.ErrDummyAlreadyPresent)
}

func TestHeadPeriodAndOffset(t *testing.T) {
	d := chainDAG(t)
	require.NoError(t, d.SetParam(0, dagmodel.ParamPeriod, 150))
	require.NoError(t, d.SetParam(0, dagmodel.ParamOffset, 10))

	period, err := d.HeadPeriod()
	require.NoError(t, err)
	assert.EqualValues(t, 150, period)

	offset, err := d.HeadOffset()
	require.NoError(t, err)
	assert.EqualValues(t, 10, offset)
}

func TestUtilization(t *testing.T) {
	d := chainDAG(t)
	require.NoError(t, d.SetParam(0, dagmodel.ParamPeriod, 9))
	u, err := d.Utilization()
	require.NoError(t, err)
	assert.InDelta(t, 1.0, u, 1e-9)
}

func TestSetDAGIDStampsEveryNode(t *testing.T) {
	d := chainDAG(t)
	require.NoError(t, d.SetDAGID(3))
	for _, id := range d.NodeIDs() {
		n, err := d.Node(id)
		require.NoError(t, err)
		v, ok := n.Get(dagmodel.ParamDAGID)
		require.True(t, ok)
		assert.EqualValues(t, 3, v)
	}
	assert.EqualValues(t, 3, d.DAGID())
}

func TestNormalizeImplicitDeadline(t *testing.T) {
	t.Run("both present and equal", func(t *testing.T) {
		d := chainDAG(t)
		require.NoError(t, d.SetParam(0, dagmodel.ParamPeriod, 20))
		require.NoError(t, d.SetParam(2, dagmodel.ParamEndToEndDeadline, 20))
		overridden, err := d.NormalizeImplicitDeadline()
		require.NoError(t, err)
		assert.False(t, overridden)
	})

	t.Run("both present and differ", func(t *testing.T) {
		d := chainDAG(t)
		require.NoError(t, d.SetParam(0, dagmodel.ParamPeriod, 20))
		require.NoError(t, d.SetParam(2, dagmodel.ParamEndToEndDeadline, 30))
		overridden, err := d.NormalizeImplicitDeadline()
		require.NoError(t, err)
		assert.True(t, overridden)
		deadline, ok, err := d.GetEndToEndDeadline()
		require.NoError(t, err)
		require.True(t, ok)
		assert.EqualValues(t, 20, deadline)
	})

	t.Run("only period present", func(t *testing.T) {
		d := chainDAG(t)
		require.NoError(t, d.SetParam(0, dagmodel.ParamPeriod, 20))
		_, err := d.NormalizeImplicitDeadline()
		require.NoError(t, err)
		deadline, ok, err := d.GetEndToEndDeadline()
		require.NoError(t, err)
		require.True(t, ok)
		assert.EqualValues(t, 20, deadline)
	})

	t.Run("only deadline present", func(t *testing.T) {
		d := chainDAG(t)
		require.NoError(t, d.SetParam(2, dagmodel.ParamEndToEndDeadline, 20))
		_, err := d.NormalizeImplicitDeadline()
		require.NoError(t, err)
		period, err := d.HeadPeriod()
		require.NoError(t, err)
		assert.EqualValues(t, 20, period)
	})

	t.Run("neither present", func(t *testing.T) {
		d := chainDAG(t)
		_, err := d.NormalizeImplicitDeadline()
		assert.ErrorIs(t, err, dagmodel.ErrMissingDeadlineAndPeriod)
	})
}

func TestValidateDetectsCycle(t *testing.T) {
	d := dagmodel.NewDAG()
	require.NoError(t, d.AddNode(dagmodel.NewNodeData(0, map[string]int32{dagmodel.ParamExecutionTime: 1})))
	require.NoError(t, d.AddNode(dagmodel.NewNodeData(1, map[string]int32{dagmodel.ParamExecutionTime: 1})))
	require.NoError(t, d.AddEdge(0, 1, 0))
	require.NoError(t, d.AddEdge(1, 0, 0))

	err := d.Validate()
	assert.ErrorIs(t, err, dagmodel.ErrCyclicDAG)
}

func TestCloneIsIndependent(t *testing.T) {
	d := chainDAG(t)
	clone := d.Clone()
	require.NoError(t, clone.SetParam(0, dagmodel.ParamExecutionTime, 99))

	orig, err := d.Node(0)
	require.NoError(t, err)
	assert.EqualValues(t, 3, orig.Params[dagmodel.ParamExecutionTime])
}

func TestRunStateReadiness(t *testing.T) {
	d := diamondDAG(t)
	rs := dagmodel.NewRunState(d)

	ready, err := rs.IsNodeReady(d, 3)
	require.NoError(t, err)
	assert.False(t, ready)

	rs.IncrementPreDoneCount(3)
	ready, err = rs.IsNodeReady(d, 3)
	require.NoError(t, err)
	assert.False(t, ready)

	rs.IncrementPreDoneCount(3)
	ready, err = rs.IsNodeReady(d, 3)
	require.NoError(t, err)
	assert.True(t, ready)

	rs.Reset(d)
	ready, err = rs.IsNodeReady(d, 3)
	require.NoError(t, err)
	assert.False(t, ready)
}
