package dagset

import "github.com/rtsched/dagsched/dagmodel"

// hyperPeriod returns the least common multiple of every DAG's head
// period: the point at which every DAG's release pattern repeats, and so
// the natural loop bound for DAGSetSchedulerBase.
func hyperPeriod(dagSet []*dagmodel.DAG) (int32, error) {
	var result int64 = 1
	for _, dag := range dagSet {
		period, err := dag.HeadPeriod()
		if err != nil {
			return 0, err
		}
		result = lcm(result, int64(period))
	}
	return int32(result), nil
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

func lcm(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	return a / gcd(a, b) * b
}
