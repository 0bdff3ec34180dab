package metric

import (
	"context"
	"strings"
	"time"

	"modelscore/pkg/core"
	"modelscore/pkg/platform"
)

// qualitySignals maps repository artifacts to the hygiene they indicate.
// Each present signal is worth an equal share of the score.
var qualitySignals = map[string][]string{
	"tests":         {"tests", "test", "spec"},
	"ci":            {".github", ".gitlab-ci.yml", ".travis.yml", "azure-pipelines.yml"},
	"lint config":   {".pylintrc", ".flake8", "setup.cfg", ".golangci.yml", ".eslintrc"},
	"dependencies":  {"requirements.txt", "pyproject.toml", "go.mod", "package.json", "environment.yml"},
	"documentation": {"docs", "contributing.md", "readme.md"},
}

// CodeQuality scores repository hygiene from the presence of tests, CI,
// lint configuration, dependency manifests, and documentation in the
// repository root.
// Parameters: repo_owner, repo_name, verbosity, log_queue.
type CodeQuality struct {
	GitHub *platform.GitHubClient
}

func (m CodeQuality) Func(ctx context.Context, args []any) (core.Score, time.Duration, error) {
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
		log.Postf("[INFO] Running code quality checks on %s/%s...", owner, name)
	}

	entries, err := m.GitHub.Contents(ctx, owner, name, "")
	if err != nil {
		log.Postf("[CRITICAL ERROR] running code quality checks on %s/%s: %v", owner, name, err)
		return core.Score{}, time.Since(start), err
	}

	present := make(map[string]bool, len(entries))
	for _, entry := range entries {
		present[strings.ToLower(entry.Name)] = true
	}

	found := 0
	for signal, names := range qualitySignals {
		hit := false
		for _, n := range names {
			if present[n] {
				hit = true
				break
			}
		}
		if hit {
			found++
		}
		if verbosity >= Debug {
			log.Postf("[DEBUG] quality signal %q present: %t", signal, hit)
		}
	}
	score := float64(found) / float64(len(qualitySignals))

	if verbosity >= Info {
		log.Postf("[INFO] Code quality for %s/%s: %d/%d signals, score %.2f", owner, name, found, len(qualitySignals), score)
	}
	return core.Score{Value: score}, time.Since(start), nil
}
