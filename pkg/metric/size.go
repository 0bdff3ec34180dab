package metric

import (
	"context"
	"time"

	"modelscore/pkg/core"
)

const gigabyte = float64(1 << 30)

// SizeScore rates how well a model of a given size fits each deployment
// target. It returns a composite score with one profile per target; the
// aggregator reduces it to the profile mean before weighting.
// Parameters: model_size_bytes, verbosity, log_queue.
type SizeScore struct{}

func (SizeScore) Func(_ context.Context, args []any) (core.Score, time.Duration, error) {
	sizeBytes, err := floatArg(args, 0, "model_size_bytes")
	if err != nil {
		return core.Score{}, 0, err
	}
	verbosity, err := intArg(args, 1, "verbosity")
	if err != nil {
		return core.Score{}, 0, err
	}
	log, err := logArg(args, 2, "log_queue")
	if err != nil {
		return core.Score{}, 0, err
	}

	start := time.Now()
	sizeGB := sizeBytes / gigabyte
	if verbosity >= Info {
		log.Postf("[INFO] Starting size score calculation for model of %.0f bytes (%.2f GB)...", sizeBytes, sizeGB)
	}

	profiles := map[string]float64{
		"raspberry_pi": stepScore(sizeGB, 0.1, 0.5),
		"jetson_nano":  stepScore(sizeGB, 0.5, 2),
		"desktop_pc":   stepScore(sizeGB, 5, 10),
		"aws_server":   1.0,
	}
	if verbosity >= Debug {
		for profile, score := range profiles {
			log.Postf("[DEBUG] %s score: %.1f", profile, score)
		}
	}

	score := core.Score{Profiles: profiles}
	if verbosity >= Info {
		log.Postf("[INFO] Finished size calculation. Average Score=%.2f", score.Effective())
	}
	return score, time.Since(start), nil
}

// stepScore is 1.0 up to the comfortable size, 0.5 up to the tolerable
// size, and 0.0 beyond it.
func stepScore(sizeGB, fullGB, halfGB float64) float64 {
	switch {
	case sizeGB <= fullGB:
		return 1.0
	case sizeGB <= halfGB:
		return 0.5
	default:
		return 0.0
	}
}
