package reporter

import (
	"fmt"
	"io"

	"modelscore/pkg/core"
)

type MarkdownReporter struct {
	Writer io.Writer
}

func (r MarkdownReporter) Report(report core.RunReport) error {
	if _, err := fmt.Fprintf(r.Writer, "# Score Report\n\n- Run: %s\n\n", report.RunID); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(r.Writer, "| Task | Score | Latency (ms) |\n|---|---|---|\n"); err != nil {
		return err
	}
	for _, key := range sortedKeys(report) {
		score := report.Scores[key]
		if _, err := fmt.Fprintf(r.Writer, "| %s | %.2f | %d |\n", key, score.Effective(), millis(report.Latencies[key])); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(r.Writer, "| net_score | %.2f | %d |\n", report.NetScore, millis(report.NetScoreLatency))
	return err
}
