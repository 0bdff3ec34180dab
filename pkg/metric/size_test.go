package metric_test

import (
	"bytes"
	"context"
	"testing"

	"modelscore/pkg/metric"
	"modelscore/pkg/runlog"

	"github.com/stretchr/testify/require"
)

const gb = float64(1 << 30)

func silentLog(t *testing.T) (*runlog.Collector, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	c := runlog.New(&buf)
	t.Cleanup(func() { c.Close() })
	return c, &buf
}

func TestSizeScoreThresholds(t *testing.T) {
	tests := []struct {
		name    string
		sizeGB  float64
		rpi     float64
		jetson  float64
		desktop float64
	}{
		{"tiny model", 0.05, 1.0, 1.0, 1.0},
		{"rpi boundary", 0.1, 1.0, 1.0, 1.0},
		{"fits jetson fully", 0.3, 0.5, 1.0, 1.0},
		{"jetson half", 1.5, 0.0, 0.5, 1.0},
		{"desktop only", 4.0, 0.0, 0.0, 1.0},
		{"desktop half", 8.0, 0.0, 0.0, 0.5},
		{"server only", 20.0, 0.0, 0.0, 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, _ := silentLog(t)
			score, elapsed, err := metric.SizeScore{}.Func(context.Background(),
				[]any{tt.sizeGB * gb, metric.Silent, log})
			require.NoError(t, err)
			require.Greater(t, elapsed.Nanoseconds(), int64(0))

			require.True(t, score.Composite())
			require.Equal(t, tt.rpi, score.Profiles["raspberry_pi"])
			require.Equal(t, tt.jetson, score.Profiles["jetson_nano"])
			require.Equal(t, tt.desktop, score.Profiles["desktop_pc"])
			require.Equal(t, 1.0, score.Profiles["aws_server"])
		})
	}
}

func TestSizeScoreLogsAtInfo(t *testing.T) {
	log, buf := silentLog(t)
	_, _, err := metric.SizeScore{}.Func(context.Background(),
		[]any{2 * gb, metric.Info, log})
	require.NoError(t, err)
	require.NoError(t, log.Close())

	require.Contains(t, buf.String(), "[INFO] Starting size score calculation")
	require.Contains(t, buf.String(), "[INFO] Finished size calculation")
	require.NotContains(t, buf.String(), "[DEBUG]")
}

func TestSizeScoreBadArguments(t *testing.T) {
	log, _ := silentLog(t)
	_, _, err := metric.SizeScore{}.Func(context.Background(),
		[]any{"not a number at all", metric.Silent, log})
	require.Error(t, err)

	_, _, err = metric.SizeScore{}.Func(context.Background(), []any{1.0})
	require.Error(t, err)

	_, _, err = metric.SizeScore{}.Func(context.Background(),
		[]any{1.0, metric.Silent, "not a collector"})
	require.Error(t, err)
}
