// Package dagmodel provides the node/DAG data model shared by every
// scheduler in this repository: NodeData (an integer id with named
// integer parameters), DAG (a directed acyclic graph of NodeData with
// precedence-only integer edge weights), and the derived quantities
// (volume, critical path, utilization, head period) that schedulers
// query but never mutate.
//
// A DAG is immutable task topology: once built it describes what the
// periodic workload looks like. Per-run bookkeeping (which predecessors
// of a node have finished so far in the current period) lives in a
// separate RunState, keyed by node id, so one DAG can be scheduled
// repeatedly — by different policies, or across different hyper-periods
// — without carrying leftover state from a previous run.
//
// Concurrency: DAG is safe for concurrent reads and guards its node and
// edge maps with separate RWMutex locks, mirroring the locking
// discipline used throughout this module's graph primitives. Mutating
// calls (AddNode, AddEdge, dummy insertion/removal) are not meant to run
// concurrently with scheduling a DAG; callers own a DAG exclusively
// while building it, then hand it to a scheduler for read-only use.
package dagmodel
