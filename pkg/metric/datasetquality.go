package metric

import (
	"context"
	"time"

	"modelscore/pkg/core"
	"modelscore/pkg/platform"
)

// DatasetQuality scores a Hugging Face dataset from its hub metadata: a
// point each for adoption (downloads), endorsement (likes), documentation
// tags, and recent maintenance, averaged.
// Parameters: dataset_name, verbosity, log_queue.
type DatasetQuality struct {
	HF *platform.HFClient
}

func (m DatasetQuality) Func(ctx context.Context, args []any) (core.Score, time.Duration, error) {
	datasetName, err := stringArg(args, 0, "dataset_name")
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
	if verbosity >= Info {
		log.Postf("[INFO] Loading dataset metadata for %q...", datasetName)
	}

	info, err := m.HF.DatasetInfo(ctx, datasetName)
	if err != nil {
		log.Postf("[CRITICAL ERROR] loading dataset %q: %v", datasetName, err)
		return core.Score{}, time.Since(start), err
	}

	checks := map[string]bool{
		"downloads > 1000":  info.Downloads > 1000,
		"likes > 10":        info.Likes > 10,
		"tagged":            len(info.Tags) > 0,
		"updated this year": time.Since(info.LastModified) < 365*24*time.Hour,
	}

	passed := 0
	for name, ok := range checks {
		if ok {
			passed++
		}
		if verbosity >= Debug {
			log.Postf("[DEBUG] dataset check %q: %t", name, ok)
		}
	}
	score := float64(passed) / float64(len(checks))

	if verbosity >= Info {
		log.Postf("[INFO] Dataset quality for %q: %d/%d checks passed, score %.2f", datasetName, passed, len(checks), score)
	}
	return core.Score{Value: score}, time.Since(start), nil
}
