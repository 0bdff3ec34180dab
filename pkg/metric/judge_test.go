package metric_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"modelscore/pkg/metric"
	"modelscore/pkg/model"

	"github.com/stretchr/testify/require"
)

func writeReadme(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRampupTimeParsesJudgeResponse(t *testing.T) {
	path := writeReadme(t, "# My Model\n\nGreat docs and examples.")
	log, _ := silentLog(t)

	score, _, err := metric.RampupTime{Judge: model.Mock{ResponseText: "0.85"}}.Func(
		context.Background(), []any{path, metric.Silent, log})
	require.NoError(t, err)
	require.Equal(t, 0.85, score.Value)
}

func TestPerformanceClaimsTrimsWhitespace(t *testing.T) {
	path := writeReadme(t, "# My Model")
	log, _ := silentLog(t)

	score, _, err := metric.PerformanceClaims{Judge: model.Mock{ResponseText: " 0.4\n"}}.Func(
		context.Background(), []any{path, metric.Silent, log})
	require.NoError(t, err)
	require.Equal(t, 0.4, score.Value)
}

func TestJudgeRejectsNonNumericResponse(t *testing.T) {
	path := writeReadme(t, "# My Model")
	log, _ := silentLog(t)

	_, _, err := metric.RampupTime{Judge: model.Mock{ResponseText: "about 0.7 I think"}}.Func(
		context.Background(), []any{path, metric.Silent, log})
	require.Error(t, err)
	require.Contains(t, err.Error(), "not a number")
}

func TestJudgeRejectsOutOfRangeScore(t *testing.T) {
	path := writeReadme(t, "# My Model")
	log, _ := silentLog(t)

	_, _, err := metric.RampupTime{Judge: model.Mock{ResponseText: "1.5"}}.Func(
		context.Background(), []any{path, metric.Silent, log})
	require.Error(t, err)
	require.Contains(t, err.Error(), "outside [0,1]")
}

func TestJudgeMissingReadmeFile(t *testing.T) {
	log, buf := silentLog(t)

	_, _, err := metric.RampupTime{Judge: model.Mock{ResponseText: "0.5"}}.Func(
		context.Background(), []any{filepath.Join(t.TempDir(), "nope.md"), metric.Silent, log})
	require.Error(t, err)
	require.NoError(t, log.Close())
	require.Contains(t, buf.String(), "[CRITICAL ERROR]")
}
