package reporter_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"modelscore/pkg/core"
	"modelscore/pkg/reporter"

	"github.com/stretchr/testify/require"
)

func sampleReport() core.RunReport {
	return core.RunReport{
		RunID: "run-1",
		Scores: map[string]core.Score{
			"rampup_time_metric":        {Value: 0.9},
			"bus_factor_metric":         {Value: 0.3},
			"performance_claims_metric": {Value: 0.8},
			"calculate_license_score":   {Value: 1.0, Details: "LGPL-2.1"},
			"calculate_size_score": {Profiles: map[string]float64{
				"raspberry_pi": 0.0,
				"jetson_nano":  0.5,
				"desktop_pc":   1.0,
				"aws_server":   1.0,
			}},
			"dataset_metric":  {Value: 0.5},
			"dataset_quality": {Value: 0.75},
			"code_quality":    {Value: 0.6},
		},
		NetScore: 0.72,
		Latencies: map[string]time.Duration{
			"rampup_time_metric":        1500 * time.Millisecond,
			"bus_factor_metric":         220 * time.Millisecond,
			"performance_claims_metric": 1800 * time.Millisecond,
			"calculate_license_score":   95 * time.Millisecond,
			"calculate_size_score":      2 * time.Millisecond,
			"dataset_metric":            310 * time.Millisecond,
			"dataset_quality":           120 * time.Millisecond,
			"code_quality":              140 * time.Millisecond,
		},
		NetScoreLatency: 1900 * time.Millisecond,
	}
}

func TestNDJSONReporterFieldContract(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NDJSONReporter{Writer: &buf, Name: "google-bert/bert-base-uncased", Category: "MODEL"}
	require.NoError(t, rep.Report(sampleReport()))

	// One object per line, newline terminated.
	out := buf.String()
	require.True(t, strings.HasSuffix(out, "\n"))
	require.Equal(t, 1, strings.Count(out, "\n"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	require.Equal(t, "google-bert/bert-base-uncased", decoded["name"])
	require.Equal(t, "MODEL", decoded["category"])
	require.InDelta(t, 0.72, decoded["net_score"].(float64), 1e-9)
	require.Equal(t, float64(1900), decoded["net_score_latency"])
	require.InDelta(t, 0.9, decoded["ramp_up_time"].(float64), 1e-9)
	require.Equal(t, float64(1500), decoded["ramp_up_time_latency"])
	require.InDelta(t, 1.0, decoded["license"].(float64), 1e-9)
	require.InDelta(t, 0.75, decoded["dataset_quality"].(float64), 1e-9)

	size, ok := decoded["size_score"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, 0.5, size["jetson_nano"])
	require.Len(t, size, 4)
}

func TestNDJSONReporterMissingMetricsAreZero(t *testing.T) {
	var buf bytes.Buffer
	rep := reporter.NDJSONReporter{Writer: &buf, Name: "ns/model", Category: "MODEL"}
	require.NoError(t, rep.Report(core.RunReport{}))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	require.Equal(t, float64(0), decoded["ramp_up_time"])
	require.Equal(t, float64(0), decoded["bus_factor_latency"])

	// A missing size score still serializes as an object, never null.
	size, ok := decoded["size_score"].(map[string]any)
	require.True(t, ok)
	require.Empty(t, size)
}
