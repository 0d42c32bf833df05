package procstate_test

import (
	"testing"

	"github.com/rtsched/dagsched/dagmodel"
	"github.com/rtsched/dagsched/procstate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsZeroCores(t *testing.T) {
	_, err := procstate.New(0)
	assert.ErrorIs(t, err, procstate.ErrInvalidCoreCount)
}

func TestAllocateAndProcessToCompletion(t *testing.T) {
	p, err := procstate.New(1)
	require.NoError(t, err)

	idx, ok := p.GetIdleCoreIndex()
	require.True(t, ok)
	assert.Equal(t, 0, idx)

	node := dagmodel.NewNodeData(0, map[string]int32{dagmodel.ParamExecutionTime: 3})
	require.NoError(t, p.AllocateSpecificCore(0, node))

	_, ok = p.GetIdleCoreIndex()
	assert.False(t, ok)

	events := p.Process()
	require.Len(t, events, 1)
	assert.Equal(t, procstate.Continue, events[0].Kind)

	events = p.Process()
	assert.Equal(t, procstate.Continue, events[0].Kind)

	events = p.Process()
	assert.Equal(t, procstate.Done, events[0].Kind)
	assert.EqualValues(t, 0, events[0].Node.ID)

	_, ok = p.GetIdleCoreIndex()
	assert.True(t, ok)
}

func TestAllocateSpecificCoreRejectsBusyCore(t *testing.T) {
	p, err := procstate.New(1)
	require.NoError(t, err)
	node := dagmodel.NewNodeData(0, map[string]int32{dagmodel.ParamExecutionTime: 1})
	require.NoError(t, p.AllocateSpecificCore(0, node))
	err = p.AllocateSpecificCore(0, node)
	assert.ErrorIs(t, err, procstate.ErrCoreNotIdle)
}

func TestProcessOrderMatchesCoreIndex(t *testing.T) {
	p, err := procstate.New(2)
	require.NoError(t, err)
	require.NoError(t, p.AllocateSpecificCore(1, dagmodel.NewNodeData(7, map[string]int32{dagmodel.ParamExecutionTime: 1})))

	events := p.Process()
	require.Len(t, events, 2)
	assert.Equal(t, procstate.Continue, events[0].Kind)
	assert.Equal(t, procstate.Done, events[1].Kind)
	assert.EqualValues(t, 7, events[1].Node.ID)
}

func TestRescaleExecutionTimeCeils(t *testing.T) {
	p, err := procstate.New(1)
	require.NoError(t, err)
	p.SetTimeUnit(0.5)
	assert.EqualValues(t, 2, p.RescaleExecutionTime(3)) // 3*0.5=1.5 -> ceil 2
	p.SetTimeUnit(1)
	assert.EqualValues(t, 3, p.RescaleExecutionTime(3))
}
