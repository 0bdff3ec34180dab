package metric_test

import (
	"testing"

	"modelscore/pkg/core"
	"modelscore/pkg/metric"
	"modelscore/pkg/model"
	"modelscore/pkg/platform"

	"github.com/stretchr/testify/require"
)

func testDeps() metric.Deps {
	return metric.Deps{
		GitHub: platform.NewGitHubClient(""),
		HF:     platform.NewHFClient(""),
		Judge:  model.Mock{},
	}
}

func TestRegisterInstallsAllMetrics(t *testing.T) {
	reg := core.NewRegistry()
	require.NoError(t, metric.Register(reg, testDeps()))

	require.Equal(t, []string{
		"bus_factor_metric",
		"calculate_license_score",
		"calculate_size_score",
		"code_quality",
		"dataset_metric",
		"dataset_quality",
		"performance_claims_metric",
		"rampup_time_metric",
	}, reg.Names())

	arities := map[string]int{
		"calculate_license_score":   4,
		"calculate_size_score":      3,
		"bus_factor_metric":         4,
		"dataset_metric":            4,
		"dataset_quality":           3,
		"code_quality":              4,
		"rampup_time_metric":        3,
		"performance_claims_metric": 3,
	}
	for name, want := range arities {
		arity, ok := reg.Arity(name)
		require.True(t, ok, name)
		require.Equal(t, want, arity, name)
	}
}

func TestRegisterRequiresDeps(t *testing.T) {
	require.Error(t, metric.Register(core.NewRegistry(), metric.Deps{}))

	deps := testDeps()
	deps.Judge = nil
	require.Error(t, metric.Register(core.NewRegistry(), deps))
}

func TestRegisterTwiceFails(t *testing.T) {
	reg := core.NewRegistry()
	require.NoError(t, metric.Register(reg, testDeps()))
	require.ErrorIs(t, metric.Register(reg, testDeps()), core.ErrDuplicateName)
}
