// Package listsched implements the intra-DAG fixed-priority list scheduler:
// given one DAG and an owned processor, it simulates list scheduling with a
// caller-supplied priority key and returns the makespan and execution
// order.
//
// The scheduler clones its input DAG before inserting dummy source/sink
// nodes, so callers may reschedule the same *dagmodel.DAG under different
// priority keys or processor sizes without cloning it themselves.
package listsched
