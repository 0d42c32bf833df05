package procstate

import (
	"errors"
	"math"
	"sync"

	"github.com/rtsched/dagsched/dagmodel"
)

// Sentinel errors for processor state violations.
var (
	// ErrInvalidCoreCount is returned by New when n < 1.
	ErrInvalidCoreCount = errors.New("procstate: number of cores must be >= 1")

	// ErrCoreOutOfRange is returned when a core index is outside [0, n).
	ErrCoreOutOfRange = errors.New("procstate: core index out of range")

	// ErrCoreNotIdle is returned by AllocateSpecificCore when the target core
	// is already running a node.
	ErrCoreNotIdle = errors.New("procstate: core is not idle")
)

// EventKind distinguishes what happened to a core during one Process() tick.
type EventKind int

const (
	// Continue means the core stayed in its current state (Idle stayed
	// Idle, or a Running core simply ticked down).
	Continue EventKind = iota
	// Done means a Running core's node completed this tick and the core
	// transitioned to Idle.
	Done
)

// Event reports what happened on one core during a single tick. Node is
// only meaningful when Kind == Done.
type Event struct {
	Kind EventKind
	Node dagmodel.NodeData
}

// running holds the state of a core that currently has a node allocated.
type running struct {
	node      dagmodel.NodeData
	remaining int32
}

// ProcessorState is a fixed-size array of identical cores. It is safe for
// concurrent use; schedulers are expected to drive it from a single
// goroutine as part of a synchronous simulation loop, but the lock keeps
// accidental concurrent access from corrupting state.
type ProcessorState struct {
	mu       sync.Mutex
	cores    []*running // nil entry == Idle
	timeUnit float64    // resolution parameter, see SetTimeUnit
}

// New returns a ProcessorState with n idle cores. Returns
// ErrInvalidCoreCount if n < 1.
func New(n int) (*ProcessorState, error) {
	if n < 1 {
		return nil, ErrInvalidCoreCount
	}
	return &ProcessorState{cores: make([]*running, n), timeUnit: 1}, nil
}

// NumberOfCores returns the fixed core count.
func (p *ProcessorState) NumberOfCores() int {
	return len(p.cores)
}

// SetTimeUnit sets the resolution used to rescale non-integer execution
// times into integer ticks. Rescaling itself is applied by
// RescaleExecutionTime, not implicitly by allocation, so callers choose
// exactly when the conversion happens.
func (p *ProcessorState) SetTimeUnit(u float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.timeUnit = u
}

// RescaleExecutionTime applies the current time unit to a raw execution
// time, rounding up: ceil is the conservative choice for a schedulability
// analyzer, since floor/round can under-count ticks and report an
// optimistic makespan.
func (p *ProcessorState) RescaleExecutionTime(raw int32) int32 {
	p.mu.Lock()
	u := p.timeUnit
	p.mu.Unlock()
	if u == 1 {
		return raw
	}
	return int32(math.Ceil(float64(raw) * u))
}

// GetIdleCoreNum returns how many cores are currently Idle.
func (p *ProcessorState) GetIdleCoreNum() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.cores {
		if c == nil {
			n++
		}
	}
	return n
}

// GetIdleCoreIndex returns the lowest-numbered idle core index, and false if
// none is idle.
func (p *ProcessorState) GetIdleCoreIndex() (int, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for i, c := range p.cores {
		if c == nil {
			return i, true
		}
	}
	return 0, false
}

// AllocateSpecificCore assigns node to core i, which must currently be
// idle. Real nodes must carry execution_time >= 1; dummy nodes always do
// (DummyExecutionTime == 1), so no special-casing of zero is needed here.
func (p *ProcessorState) AllocateSpecificCore(i int, node dagmodel.NodeData) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.cores) {
		return ErrCoreOutOfRange
	}
	if p.cores[i] != nil {
		return ErrCoreNotIdle
	}
	et, err := node.ExecutionTime()
	if err != nil {
		return err
	}
	p.cores[i] = &running{node: node, remaining: et}
	return nil
}

// Process advances simulated time by one tick: every Running core's
// remaining time decrements by one, transitioning to Idle and emitting Done
// when it reaches zero; every Idle core emits Continue. The returned slice
// has exactly NumberOfCores() entries, ordered by core index.
func (p *ProcessorState) Process() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	events := make([]Event, len(p.cores))
	for i, c := range p.cores {
		if c == nil {
			events[i] = Event{Kind: Continue}
			continue
		}
		c.remaining--
		if c.remaining <= 0 {
			events[i] = Event{Kind: Done, Node: c.node}
			p.cores[i] = nil
		} else {
			events[i] = Event{Kind: Continue}
		}
	}
	return events
}

// CoreBusy reports whether core i currently holds a running node, and the
// node if so.
func (p *ProcessorState) CoreBusy(i int) (dagmodel.NodeData, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i < 0 || i >= len(p.cores) || p.cores[i] == nil {
		return dagmodel.NodeData{}, false
	}
	return p.cores[i].node, true
}
