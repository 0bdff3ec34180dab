package metric

import (
	"context"
	"time"

	"modelscore/pkg/core"
	"modelscore/pkg/platform"
)

// compatibleLicenses are the SPDX ids accepted as LGPL-2.1 compatible.
var compatibleLicenses = map[string]bool{
	"LGPL-2.1":          true,
	"LGPL-2.1-only":     true,
	"LGPL-2.1-or-later": true,
}

// LicenseScore scores a GitHub repository 1.0 when its declared license is
// LGPL-2.1 compatible and 0.0 otherwise.
// Parameters: repo_owner, repo_name, verbosity, log_queue.
type LicenseScore struct {
	GitHub *platform.GitHubClient
}

func (m LicenseScore) Func(ctx context.Context, args []any) (core.Score, time.Duration, error) {
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
		log.Postf("[INFO] Starting license score calculation for %s/%s...", owner, name)
	}

	repo, err := m.GitHub.Repo(ctx, owner, name)
	if err != nil {
		log.Postf("[CRITICAL ERROR] calculating license score for %s/%s: %v", owner, name, err)
		return core.Score{}, time.Since(start), err
	}

	score := 0.0
	details := "no license"
	if repo.License != nil && repo.License.SPDXID != "" {
		details = repo.License.SPDXID
		if verbosity >= Info {
			log.Postf("[INFO] License info found: %s", repo.License.SPDXID)
		}
		if compatibleLicenses[repo.License.SPDXID] {
			score = 1.0
		}
	} else if verbosity >= Info {
		log.Post("[INFO] No license info found")
	}

	if verbosity >= Info {
		log.Postf("[INFO] Finished license calculation for %s/%s. Score=%.2f", owner, name, score)
	}
	return core.Score{Value: score, Details: details}, time.Since(start), nil
}
