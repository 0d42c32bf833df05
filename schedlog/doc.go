// Package schedlog implements append-only scheduling logs: DAGSchedulerLog
// for one intra-DAG run, and DAGSetSchedulerLog for a full periodic
// simulation over a DAG set, plus their YAML serialization to a structured
// document format.
//
// Logs are append-only; CalculateUtilization runs a single finalize pass
// over what has been appended, and SetResult attaches the run's outcome,
// which the CLI does after that pass. Each run is
// tagged with a UUID (github.com/google/uuid) embedded in the emitted
// file name, the same way the rest of this repository's retrieval pack
// tags long-lived records.
package schedlog
