package metric

import (
	"context"
	"time"

	"modelscore/pkg/core"
	"modelscore/pkg/platform"
)

// recentWindow is how far back a pull request counts as recent activity.
const recentWindow = 30 * 24 * time.Hour

// BusFactor scores contributor redundancy from pull-request authorship: zero
// when nobody contributed in the last month, otherwise 0.1 per distinct
// contributor, saturating at ten.
// Parameters: repo_owner, repo_name, verbosity, log_queue.
type BusFactor struct {
	GitHub *platform.GitHubClient
}

func (m BusFactor) Func(ctx context.Context, args []any) (core.Score, time.Duration, error) {
	owner, err := stringArg(args, 0, "repo_owner")
	if err != nil {
		return core.Score{}, 0, err
	}
	name, err := stringArg(args, 1, "repo_name")
	if err != nil {
		return core.Score{}, 0, err
	}
	verbosity, err := intArg(args, 2, "verbosity")
	if err != nil {
		return core.Score{}, 0, err
	}
	log, err := logArg(args, 3, "log_queue")
	if err != nil {
		return core.Score{}, 0, err
	}

	start := time.Now()
	if verbosity >= Info {
		log.Postf("[INFO] Starting bus factor calculation for %s/%s...", owner, name)
	}

	pulls, err := m.GitHub.Pulls(ctx, owner, name)
	if err != nil {
		log.Postf("[CRITICAL ERROR] calculating bus factor for %s/%s: %v", owner, name, err)
		return core.Score{}, time.Since(start), err
	}

	cutoff := time.Now().Add(-recentWindow)
	recent := make(map[string]bool)
	all := make(map[string]bool)
	for _, pr := range pulls {
		user := pr.User.Login
		if user == "" {
			continue
		}
		all[user] = true
		if verbosity >= Debug {
			log.Postf("[DEBUG] Found PR by %s at %s", user, pr.CreatedAt.Format("2006-01-02"))
		}
		if pr.CreatedAt.After(cutoff) {
			recent[user] = true
		}
	}

	if verbosity >= Info {
		log.Postf("[INFO] Found %d recent contributors and %d total contributors for %s/%s", len(recent), len(all), owner, name)
	}

	score := 0.0
	if len(recent) > 0 {
		if len(all) >= 10 {
			score = 1.0
		} else {
			score = 0.1 * float64(len(all))
		}
	}

	if verbosity >= Info {
		log.Postf("[INFO] Bus factor calculation for %s/%s complete. Score: %.2f", owner, name, score)
	}
	return core.Score{Value: score}, time.Since(start), nil
}
