package core

import "time"

// Score is the outcome of one scoring function. A scalar score carries a
// single value, by convention in [0.0, 1.0] with 0.0 as the failure
// sentinel. A composite score carries one value per deployment profile and
// reduces to the arithmetic mean of its profiles when weighted.
type Score struct {
	Value    float64            `json:"value"`
	Profiles map[string]float64 `json:"profiles,omitempty"`
	Details  string             `json:"details,omitempty"`
}

// Composite reports whether the score carries per-profile values.
func (s Score) Composite() bool {
	return s.Profiles != nil
}

// Effective reduces the score to a single value: the scalar value, or the
// mean of the profile values. An empty composite reduces to 0.
func (s Score) Effective() float64 {
	if s.Profiles == nil {
		return s.Value
	}
	if len(s.Profiles) == 0 {
		return 0
	}
	var sum float64
	for _, v := range s.Profiles {
		sum += v
	}
	return sum / float64(len(s.Profiles))
}

// TaskDescriptor is one validated line of the task document. Immutable once
// created; consumed exactly once by the resolver.
type TaskDescriptor struct {
	Name          string
	ParameterKeys []string
	Weight        float64
	Line          int
}

// ResolvedTask is a descriptor bound to its registered function and a
// concrete argument list, ready to dispatch. Key is unique within a run even
// when the same function name appears on multiple task lines.
type ResolvedTask struct {
	TaskDescriptor
	Key  string
	Func ScoreFunc
	Args []any
}

// WorkResult is produced exactly once per dispatched task. Failed results
// carry the sentinel score but keep the task's real name and weight so the
// aggregator accounts for the failed weight.
type WorkResult struct {
	Key      string
	TaskName string
	Score    Score
	Elapsed  time.Duration
	Weight   float64
	Failed   bool
}

// RunReport is the terminal artifact of one engine run. NetScoreLatency is
// the wall-clock span of the whole concurrent dispatch window, not the sum
// of per-task latencies.
type RunReport struct {
	RunID           string                   `json:"run_id"`
	Scores          map[string]Score         `json:"scores"`
	NetScore        float64                  `json:"net_score"`
	Latencies       map[string]time.Duration `json:"latencies"`
	NetScoreLatency time.Duration            `json:"net_score_latency"`
}
