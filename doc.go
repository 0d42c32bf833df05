// Package dagsched is a discrete-event simulator and feasibility analyzer
// for multiprocessor real-time scheduling of periodic task sets shaped as
// directed acyclic graphs (DAGs).
//
// Given a set of periodic DAG tasks and a homogeneous multicore processor,
// it computes a tick-by-tick schedule under one of several published
// scheduling policies, records a full execution trace, and reports whether
// deadlines are met.
//
// The engine is organized as a handful of focused subpackages:
//
//	dagmodel/     — NodeData/DAG algebra: precedence, dummy source/sink,
//	                critical path, volume/utilization, per-run state
//	procstate/    — fixed-size core array: Idle/Running, tick processing
//	schedlog/     — append-only per-node/per-core/per-DAG event log + YAML
//	                document serialization
//	listsched/    — intra-DAG fixed-priority list scheduler (makespan,
//	                execution order)
//	dagset/       — the periodic release/start/allocate/tick/retire loop,
//	                DAGStateManager, and the global-EDF dispatch policy
//	federated/    — offline feasibility analysis: Melani-bound core
//	                assignment for high-utilization DAGs, pooled
//	                low-utilization DAGs
//	dagio/        — DAG task-set ingestion and log emission (external to
//	                the scheduling core)
//	cmd/dagsched/ — the CLI binary wiring the above into subcommands
//
// See SPEC_FULL.md and DESIGN.md for the full specification this module
// implements and the grounding behind each package's design.
package dagsched
