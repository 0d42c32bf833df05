package federated

import (
	"math"

	"github.com/rtsched/dagsched/dagmodel"
)

// dagStats bundles the per-DAG quantities feasibility analysis reasons
// about.
type dagStats struct {
	dagID       int32
	utilization float64
	criticalLen int32
	period      int32
	volume      int32
}

func collectStats(dagSet []*dagmodel.DAG) ([]dagStats, error) {
	stats := make([]dagStats, len(dagSet))
	for k, dag := range dagSet {
		util, err := dag.Utilization()
		if err != nil {
			return nil, err
		}
		_, length, err := dag.CriticalPath()
		if err != nil {
			return nil, err
		}
		period, err := dag.HeadPeriod()
		if err != nil {
			return nil, err
		}
		volume, err := dag.Volume()
		if err != nil {
			return nil, err
		}
		stats[k] = dagStats{dagID: int32(k), utilization: util, criticalLen: length, period: period, volume: volume}
	}
	return stats, nil
}

// Analyze runs the federated feasibility check over dagSet on m cores.
// Each DAG is stamped with its index as dag_id, the same convention
// dagset.Run uses.
func Analyze(dagSet []*dagmodel.DAG, m int32) (*Result, error) {
	for k, dag := range dagSet {
		if err := dag.SetDAGID(int32(k)); err != nil {
			return nil, err
		}
	}

	stats, err := collectStats(dagSet)
	if err != nil {
		return nil, err
	}

	// Step 1: critical path must fit within the period for every DAG.
	for _, s := range stats {
		if s.criticalLen > s.period {
			return unschedulable("critical path exceeds deadline", 0), nil
		}
	}

	// Step 2: partition into High (u_k > 1) and Low (u_k <= 1).
	var high, low []dagStats
	for _, s := range stats {
		if s.utilization > 1 {
			high = append(high, s)
		} else {
			low = append(low, s)
		}
	}

	// Step 3 + 4: Melani bound per High DAG, then the dedicated-core total.
	var highTotal int32
	for _, s := range high {
		highTotal += melaniBound(s)
	}
	if highTotal > m {
		return unschedulable("insufficient cores for high-utilization tasks", highTotal-m), nil
	}

	// Step 5: Baruah-style bound for the pooled Low DAGs.
	lowCores := m - highTotal
	var lowUtilSum float64
	for _, s := range low {
		lowUtilSum += s.utilization
	}
	if lowUtilSum > float64(lowCores)/2 {
		insufficient := int32(math.Ceil(2*lowUtilSum)) - lowCores
		return unschedulable("insufficient cores for low-utilization tasks", insufficient), nil
	}

	// Step 6.
	return schedulable(highTotal, lowCores), nil
}

// melaniBound computes the Melani dedicated-core bound for one
// high-utilization DAG:
//   m_k = ceil( (volume_k - L_k) / (T_k - L_k) )
// L_k < T_k is guaranteed by the step-1 critical-path check above
// (L_k > T_k already returned Unschedulable, and L_k == T_k would force
// the DAG fully sequential on one core, i.e. m_k == 1, which the
// division below also produces once guarded against a zero denominator).
func melaniBound(s dagStats) int32 {
	denom := s.period - s.criticalLen
	if denom <= 0 {
		return 1
	}
	num := s.volume - s.criticalLen
	if num <= 0 {
		return 1
	}
	return int32(math.Ceil(float64(num) / float64(denom)))
}
