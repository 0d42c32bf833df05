// Command dagsched runs the DAG scheduling engine from the command
// line: intra-DAG fixed-priority list scheduling for a single DAG, or
// global-EDF / federated analysis for a DAG set.
package main

func main() {
	Execute()
}
