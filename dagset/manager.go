package dagset

// PreemptiveType selects whether a DAG's running nodes may be preempted
// once started. Only NonPreemptive is implemented.
type PreemptiveType int

const (
	NonPreemptive PreemptiveType = iota
	Preemptive
)

// Manager is the common capability set every DAGStateManager variant
// implements, regardless of which policy drives it. Modeled as two
// tagged variants, BasicManager and FederatedManager, rather than one
// struct with fields that are only meaningful for some policies.
type Manager interface {
	// Release marks the DAG as released for its current period.
	Release()
	// IsReleased reports whether Release was called since the last ResetState.
	IsReleased() bool
	// Start marks the DAG as having begun execution this period.
	Start()
	// IsStarted reports whether Start was called since the last ResetState.
	IsStarted() bool
	// ReleaseCount returns how many periods have been released so far.
	ReleaseCount() int32
	// IncrementReleaseCount advances the release counter by one.
	IncrementReleaseCount()
	// ResetState clears released/started flags at the end of a period,
	// leaving ReleaseCount untouched.
	ResetState()
}

// BasicManager tracks release/start state for a single DAG under
// fixed-priority or global-EDF dispatch.
type BasicManager struct {
	releaseCount int32
	isReleased   bool
	isStarted    bool
}

// NewBasicManager returns a BasicManager with no periods released yet.
func NewBasicManager() *BasicManager {
	return &BasicManager{}
}

func (m *BasicManager) Release()                 { m.isReleased = true }
func (m *BasicManager) IsReleased() bool          { return m.isReleased }
func (m *BasicManager) Start()                    { m.isStarted = true }
func (m *BasicManager) IsStarted() bool           { return m.isStarted }
func (m *BasicManager) ReleaseCount() int32       { return m.releaseCount }
func (m *BasicManager) IncrementReleaseCount()    { m.releaseCount++ }
func (m *BasicManager) ResetState() {
	m.isReleased = false
	m.isStarted = false
}

// FederatedManager extends BasicManager with the dedicated-core
// bookkeeping a federated-scheduled DAG needs once it owns a fixed set of
// cores: how many it was found to require (its minimum_cores, from
// federated.VerifyMinimumCores), how many it currently holds, and the
// execution order a prior fixed-priority list-scheduling pass computed
// for it. federated.RunDedicated drives a DAG through this manager:
// allocating cores one at a time until CanStart reports true, then
// draining NextNode to produce the dispatch sequence.
type FederatedManager struct {
	BasicManager

	minimumCores          int32
	numAllocatedCores     int32
	initialExecutionOrder []int32
	executionOrder        []int32
}

// NewFederatedManager returns a FederatedManager with the given minimum
// core requirement and the execution order computed for it.
func NewFederatedManager(minimumCores int32, executionOrder []int32) *FederatedManager {
	order := append([]int32(nil), executionOrder...)
	return &FederatedManager{
		minimumCores:          minimumCores,
		initialExecutionOrder: order,
		executionOrder:        append([]int32(nil), order...),
	}
}

// MinimumCores returns the dedicated core count this DAG requires.
func (m *FederatedManager) MinimumCores() int32 { return m.minimumCores }

// NumAllocatedCores returns how many dedicated cores are currently held.
func (m *FederatedManager) NumAllocatedCores() int32 { return m.numAllocatedCores }

// AllocateCore records one more dedicated core held by this DAG.
func (m *FederatedManager) AllocateCore() { m.numAllocatedCores++ }

// FreeAllocatedCores releases every dedicated core this DAG holds.
func (m *FederatedManager) FreeAllocatedCores() { m.numAllocatedCores = 0 }

// CanStart reports whether this DAG has been allocated enough dedicated
// cores to begin executing.
func (m *FederatedManager) CanStart() bool { return m.numAllocatedCores >= m.minimumCores }

// NextNode pops the next node id from this DAG's precomputed execution
// order, and whether one remained.
func (m *FederatedManager) NextNode() (int32, bool) {
	if len(m.executionOrder) == 0 {
		return 0, false
	}
	id := m.executionOrder[0]
	m.executionOrder = m.executionOrder[1:]
	return id, true
}

// ResetState resets release/start flags and rewinds the execution order
// back to its initial value, ready for the next period.
func (m *FederatedManager) ResetState() {
	m.BasicManager.ResetState()
	m.executionOrder = append([]int32(nil), m.initialExecutionOrder...)
}
