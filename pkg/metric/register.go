package metric

import (
	"errors"

	"modelscore/pkg/core"
	"modelscore/pkg/model"
	"modelscore/pkg/platform"
)

// Deps carries the external collaborators the metrics call out to.
type Deps struct {
	GitHub *platform.GitHubClient
	HF     *platform.HFClient
	Judge  model.Client
}

// Register installs every metric into reg under its task-file name with its
// fixed arity. Registration is an explicit table rather than any kind of
// discovery, so a name collision surfaces at startup.
func Register(reg *core.Registry, deps Deps) error {
	if deps.GitHub == nil || deps.HF == nil || deps.Judge == nil {
		return errors.New("metric: github, huggingface, and judge deps are required")
	}

	entries := []struct {
		name  string
		arity int
		fn    core.ScoreFunc
	}{
		{"calculate_license_score", 4, LicenseScore{GitHub: deps.GitHub}.Func},
		{"calculate_size_score", 3, SizeScore{}.Func},
		{"bus_factor_metric", 4, BusFactor{GitHub: deps.GitHub}.Func},
		{"dataset_metric", 4, DatasetAndCode{GitHub: deps.GitHub}.Func},
		{"dataset_quality", 3, DatasetQuality{HF: deps.HF}.Func},
		{"code_quality", 4, CodeQuality{GitHub: deps.GitHub}.Func},
		{"rampup_time_metric", 3, RampupTime{Judge: deps.Judge}.Func},
		{"performance_claims_metric", 3, PerformanceClaims{Judge: deps.Judge}.Func},
	}

	for _, entry := range entries {
		if err := reg.Register(entry.name, entry.arity, entry.fn); err != nil {
			return err
		}
	}
	return nil
}
