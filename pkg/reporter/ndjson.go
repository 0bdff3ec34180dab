package reporter

import (
	"encoding/json"
	"io"

	"modelscore/pkg/core"
)

// NDJSONReporter emits the fixed model-output object, one JSON line per
// run. Field names and the per-metric latency pairing follow the external
// reporting contract; latencies are integer milliseconds.
type NDJSONReporter struct {
	Writer   io.Writer
	Name     string
	Category string
}

type modelOutput struct {
	Name                       string             `json:"name"`
	Category                   string             `json:"category"`
	NetScore                   float64            `json:"net_score"`
	NetScoreLatency            int64              `json:"net_score_latency"`
	RampUpTime                 float64            `json:"ramp_up_time"`
	RampUpTimeLatency          int64              `json:"ramp_up_time_latency"`
	BusFactor                  float64            `json:"bus_factor"`
	BusFactorLatency           int64              `json:"bus_factor_latency"`
	PerformanceClaims          float64            `json:"performance_claims"`
	PerformanceClaimsLatency   int64              `json:"performance_claims_latency"`
	License                    float64            `json:"license"`
	LicenseLatency             int64              `json:"license_latency"`
	SizeScore                  map[string]float64 `json:"size_score"`
	SizeScoreLatency           int64              `json:"size_score_latency"`
	DatasetAndCodeScore        float64            `json:"dataset_and_code_score"`
	DatasetAndCodeScoreLatency int64              `json:"dataset_and_code_score_latency"`
	DatasetQuality             float64            `json:"dataset_quality"`
	DatasetQualityLatency      int64              `json:"dataset_quality_latency"`
	CodeQuality                float64            `json:"code_quality"`
	CodeQualityLatency         int64              `json:"code_quality_latency"`
}

func (r NDJSONReporter) Report(report core.RunReport) error {
	out := modelOutput{
		Name:                       r.Name,
		Category:                   r.Category,
		NetScore:                   report.NetScore,
		NetScoreLatency:            millis(report.NetScoreLatency),
		RampUpTime:                 scalar(report, "rampup_time_metric"),
		RampUpTimeLatency:          latency(report, "rampup_time_metric"),
		BusFactor:                  scalar(report, "bus_factor_metric"),
		BusFactorLatency:           latency(report, "bus_factor_metric"),
		PerformanceClaims:          scalar(report, "performance_claims_metric"),
		PerformanceClaimsLatency:   latency(report, "performance_claims_metric"),
		License:                    scalar(report, "calculate_license_score"),
		LicenseLatency:             latency(report, "calculate_license_score"),
		SizeScore:                  profiles(report, "calculate_size_score"),
		SizeScoreLatency:           latency(report, "calculate_size_score"),
		DatasetAndCodeScore:        scalar(report, "dataset_metric"),
		DatasetAndCodeScoreLatency: latency(report, "dataset_metric"),
		DatasetQuality:             scalar(report, "dataset_quality"),
		DatasetQualityLatency:      latency(report, "dataset_quality"),
		CodeQuality:                scalar(report, "code_quality"),
		CodeQualityLatency:         latency(report, "code_quality"),
	}
	return json.NewEncoder(r.Writer).Encode(out)
}

func scalar(report core.RunReport, task string) float64 {
	return report.Scores[task].Effective()
}

func profiles(report core.RunReport, task string) map[string]float64 {
	score, ok := report.Scores[task]
	if !ok || score.Profiles == nil {
		return map[string]float64{}
	}
	return score.Profiles
}

func latency(report core.RunReport, task string) int64 {
	return millis(report.Latencies[task])
}
