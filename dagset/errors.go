package dagset

import "errors"

// ErrPreemptionUnsupported is returned by Run when PreemptiveType is
// Preemptive. Preemption semantics (cost of interrupting a running node,
// how partial progress carries over) are left open; rather than guess at
// a cost model, the gap is surfaced as an explicit unimplemented branch.
var ErrPreemptionUnsupported = errors.New("dagset: preemptive scheduling is not implemented")
