package reporter

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"modelscore/pkg/core"
)

type TableReporter struct {
	Writer io.Writer
}

func (r TableReporter) Report(report core.RunReport) error {
	table := tablewriter.NewWriter(r.Writer)
	table.Header([]string{"Task", "Score", "Latency (ms)"})
	for _, key := range sortedKeys(report) {
		table.Append([]string{
			key,
			fmt.Sprintf("%.2f", report.Scores[key].Effective()),
			fmt.Sprintf("%d", millis(report.Latencies[key])),
		})
	}
	table.Append([]string{
		"net_score",
		fmt.Sprintf("%.2f", report.NetScore),
		fmt.Sprintf("%d", millis(report.NetScoreLatency)),
	})
	table.Render()
	return nil
}
