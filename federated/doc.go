// Package federated implements an offline feasibility analyzer for
// federated scheduling: it partitions a DAG set into high- and
// low-utilization tasks, assigns dedicated cores to each high-utilization
// DAG via the Melani bound, and checks the remaining low-utilization pool
// against a Baruah-style bound. Analyze never runs the simulation loop;
// RunDedicated drives an already-Schedulable result across its dedicated
// cores.
package federated
