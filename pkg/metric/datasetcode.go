package metric

import (
	"context"
	"strings"
	"time"

	"modelscore/pkg/core"
	"modelscore/pkg/platform"
)

var datasetHosts = []string{
	"huggingface.co/datasets",
	"kaggle.com/datasets",
	"roboflow.com",
	"drive.google.com",
}

var datasetKeywords = []string{
	"dataset", "datasets", "training data", "download data",
}

var codeExtensions = []string{
	".py", ".ipynb", ".go", ".rs", ".c", ".cpp", ".java", ".js", ".ts",
}

// DatasetAndCode scores whether a repository documents its dataset and ships
// code: 0.5 for a dataset mention in the README, 0.5 for source files in the
// repository root.
// Parameters: repo_owner, repo_name, verbosity, log_queue.
type DatasetAndCode struct {
	GitHub *platform.GitHubClient
}

func (m DatasetAndCode) Func(ctx context.Context, args []any) (core.Score, time.Duration, error) {
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
		log.Postf("[INFO] Starting dataset metric calculation for %s/%s...", owner, name)
	}

	readme, err := m.GitHub.Readme(ctx, owner, name)
	if err != nil {
		log.Postf("[CRITICAL ERROR] fetching README for %s/%s: %v", owner, name, err)
		return core.Score{}, time.Since(start), err
	}
	readme = strings.ToLower(readme)

	hasDataset := false
	for _, host := range datasetHosts {
		if strings.Contains(readme, host) {
			hasDataset = true
			break
		}
	}
	if !hasDataset {
		for _, keyword := range datasetKeywords {
			if strings.Contains(readme, keyword) {
				hasDataset = true
				break
			}
		}
	}
	if verbosity >= Info {
		log.Postf("[INFO] Dataset mention found: %t", hasDataset)
	}

	entries, err := m.GitHub.Contents(ctx, owner, name, "")
	if err != nil {
		log.Postf("[CRITICAL ERROR] fetching contents for %s/%s: %v", owner, name, err)
		return core.Score{}, time.Since(start), err
	}
	hasCode := false
	for _, entry := range entries {
		if entry.Type == "dir" && (entry.Name == "src" || entry.Name == "code") {
			hasCode = true
			break
		}
		for _, ext := range codeExtensions {
			if strings.HasSuffix(entry.Name, ext) {
				hasCode = true
				break
			}
		}
		if hasCode {
			break
		}
	}
	if verbosity >= Info {
		log.Postf("[INFO] Code presence found: %t", hasCode)
	}

	score := 0.0
	if hasDataset {
		score += 0.5
	}
	if hasCode {
		score += 0.5
	}
	return core.Score{Value: score}, time.Since(start), nil
}
