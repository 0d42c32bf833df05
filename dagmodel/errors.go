package dagmodel

import (
	"errors"
	"fmt"
)

// Sentinel errors for DAG construction and query failures.
var (
	// ErrEmptyDAG is returned by queries that require at least one node.
	ErrEmptyDAG = errors.New("dagmodel: DAG has no nodes")

	// ErrNodeNotFound indicates an operation referenced a non-existent node id.
	ErrNodeNotFound = errors.New("dagmodel: node not found")

	// ErrDuplicateNode indicates AddNode was called twice with the same id.
	ErrDuplicateNode = errors.New("dagmodel: duplicate node id")

	// ErrCyclicDAG indicates the graph contains a cycle where acyclicity is required.
	ErrCyclicDAG = errors.New("dagmodel: graph is cyclic")

	// ErrNoHeadSource indicates no source node carries a period, so there is no
	// designated head period node.
	ErrNoHeadSource = errors.New("dagmodel: no period-bearing source node")

	// ErrMultipleHeadSources indicates more than one source node carries a period.
	ErrMultipleHeadSources = errors.New("dagmodel: multiple period-bearing source nodes")

	// ErrMissingDeadlineAndPeriod indicates a DAG has neither a period nor an
	// end-to-end deadline, so it cannot be normalized to implicit deadline.
	ErrMissingDeadlineAndPeriod = errors.New("dagmodel: neither period nor end-to-end deadline present")

	// ErrDummyAlreadyPresent indicates a dummy source or sink was inserted twice
	// without an intervening removal.
	ErrDummyAlreadyPresent = errors.New("dagmodel: dummy node already present")

	// ErrNoDummyPresent indicates removal of a dummy node that was never inserted.
	ErrNoDummyPresent = errors.New("dagmodel: no dummy node to remove")
)

// MissingAttributeError is returned when a required NodeData parameter is
// absent. It names both the key and the offending node so callers can
// produce an actionable message.
type MissingAttributeError struct {
	Key    string
	NodeID int32
}

func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("dagmodel: node %d missing required attribute %q", e.NodeID, e.Key)
}

// newMissingAttribute constructs a MissingAttributeError.
func newMissingAttribute(key string, nodeID int32) error {
	return &MissingAttributeError{Key: key, NodeID: nodeID}
}
