// Package dagset implements the periodic multi-DAG scheduling loop
// (DAGSetSchedulerBase) and its global-EDF specialization
// (GlobalEDFScheduler). The six-phase per-tick cycle (release, start,
// allocate, process, retire, enqueue-ready) is the same regardless of
// dispatch policy; only how the ready structure is ordered and popped
// differs, which is why Policy is a small interface rather than a copy
// of the loop per policy.
//
// DAGStateManager is modeled as two explicit tagged variants
// (BasicManager, FederatedManager) rather than one struct with optional
// fields that are only meaningful for some policies.
package dagset
