package federated

// Result is the tagged outcome of Analyze. Exactly one of Schedulable or
// Unschedulable is populated; modeled as two fields rather than an
// interface so schedlog can embed it directly in the log document's
// "result" section and serialize either shape.
type Result struct {
	Schedulable   *SchedulableResult   `yaml:"schedulable,omitempty"`
	Unschedulable *UnschedulableResult `yaml:"unschedulable,omitempty"`
}

// SchedulableResult reports the dedicated core split the final feasibility
// step assigns.
type SchedulableResult struct {
	HighDedicatedCores int32 `yaml:"high_dedicated_cores"`
	LowDedicatedCores  int32 `yaml:"low_dedicated_cores"`
}

// UnschedulableResult is NOT an error: it is the structured negative
// outcome of feasibility analysis, returned as data.
type UnschedulableResult struct {
	Reason            string `yaml:"reason"`
	InsufficientCores int32  `yaml:"insufficient_cores"`
}

func schedulable(high, low int32) *Result {
	return &Result{Schedulable: &SchedulableResult{HighDedicatedCores: high, LowDedicatedCores: low}}
}

func unschedulable(reason string, insufficient int32) *Result {
	return &Result{Unschedulable: &UnschedulableResult{Reason: reason, InsufficientCores: insufficient}}
}
