package reporter

import (
	"encoding/csv"
	"fmt"
	"io"

	"modelscore/pkg/core"
)

type CSVReporter struct {
	Writer io.Writer
}

func (r CSVReporter) Report(report core.RunReport) error {
	w := csv.NewWriter(r.Writer)
	if err := w.Write([]string{"task", "score", "latency_ms"}); err != nil {
		return err
	}
	for _, key := range sortedKeys(report) {
		record := []string{
			key,
			fmt.Sprintf("%.4f", report.Scores[key].Effective()),
			fmt.Sprintf("%d", millis(report.Latencies[key])),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	if err := w.Write([]string{
		"net_score",
		fmt.Sprintf("%.4f", report.NetScore),
		fmt.Sprintf("%d", millis(report.NetScoreLatency)),
	}); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}
