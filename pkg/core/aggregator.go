package core

import (
	"fmt"
	"time"
)

// AssignKeys gives every task a result key that is unique within the run.
// The first occurrence of a name keeps the bare name; later occurrences get
// an occurrence suffix, so repeated task lines are never overwritten in the
// final report.
func AssignKeys(tasks []ResolvedTask) []ResolvedTask {
	seen := make(map[string]int, len(tasks))
	for i := range tasks {
		seen[tasks[i].Name]++
		if n := seen[tasks[i].Name]; n == 1 {
			tasks[i].Key = tasks[i].Name
		} else {
			tasks[i].Key = fmt.Sprintf("%s#%d", tasks[i].Name, n)
		}
	}
	return tasks
}

// Aggregate folds the results of one dispatch window into a report. The
// weighted sum is commutative, so result ordering does not matter. Failed
// tasks contribute their sentinel score and their full weight: a scorer that
// fails is a zero, not an absence.
func Aggregate(results []WorkResult, window time.Duration) RunReport {
	scores := make(map[string]Score, len(results))
	latencies := make(map[string]time.Duration, len(results))

	var weightedSum, totalWeight float64
	for _, result := range results {
		scores[result.Key] = result.Score
		latencies[result.Key] = result.Elapsed
		weightedSum += result.Score.Effective() * result.Weight
		totalWeight += result.Weight
	}

	netScore := 0.0
	if totalWeight > 0 {
		netScore = weightedSum / totalWeight
	}

	return RunReport{
		Scores:          scores,
		NetScore:        netScore,
		Latencies:       latencies,
		NetScoreLatency: window,
	}
}
