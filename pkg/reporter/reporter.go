package reporter

import (
	"sort"
	"time"

	"modelscore/pkg/core"
)

// Reporter writes one run report.
type Reporter interface {
	Report(report core.RunReport) error
}

const (
	FormatNDJSON   = "ndjson"
	FormatJSON     = "json"
	FormatTable    = "table"
	FormatMarkdown = "markdown"
	FormatCSV      = "csv"
)

// Formats lists the supported output formats.
func Formats() []string {
	return []string{FormatNDJSON, FormatJSON, FormatTable, FormatMarkdown, FormatCSV}
}

// sortedKeys returns the report's task keys in stable order.
func sortedKeys(report core.RunReport) []string {
	keys := make([]string, 0, len(report.Scores))
	for key := range report.Scores {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// millis renders a latency as integer milliseconds, the wire unit.
func millis(d time.Duration) int64 {
	return d.Milliseconds()
}
