package federated

import (
	"math"

	"github.com/rtsched/dagsched/dagmodel"
	"github.com/rtsched/dagsched/listsched"
	"github.com/rtsched/dagsched/procstate"
)

// VerifyMinimumCores cross-checks the closed-form Melani bound against an
// incremental search: starting from ceil(volume/deadline) cores, it grows
// the core count by one until the intra-DAG list scheduler's makespan fits
// within deadline, and returns the core count found, the execution order
// the list scheduler produced at that width, and the makespan itself.
// Dispatch priority uses the DAG's own priority parameters (listsched's
// FixedPriorityKey), the same key the rest of this repository uses for
// intra-DAG scheduling, so the two bounds describe the same policy.
func VerifyMinimumCores(dag *dagmodel.DAG, deadline int32) (minimumCores int32, executionOrder []int32, makespan int32, err error) {
	volume, err := dag.Volume()
	if err != nil {
		return 0, nil, 0, err
	}

	cores := int32(math.Ceil(float64(volume) / float64(deadline)))
	if cores < 1 {
		cores = 1
	}

	for {
		proc, err := procstate.New(int(cores))
		if err != nil {
			return 0, nil, 0, err
		}
		result, err := listsched.Schedule(dag, proc, listsched.FixedPriorityKey)
		if err != nil {
			return 0, nil, 0, err
		}
		if result.Makespan <= deadline {
			return cores, result.ExecutionOrder, result.Makespan, nil
		}
		cores++
	}
}
