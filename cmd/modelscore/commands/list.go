package commands

import (
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"modelscore/pkg/core"
	"modelscore/pkg/metric"
	"modelscore/pkg/model"
	"modelscore/pkg/platform"
	"modelscore/pkg/reporter"
)

func newListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available components",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry := core.NewRegistry()
			if err := metric.Register(registry, metric.Deps{
				GitHub: platform.NewGitHubClient(""),
				HF:     platform.NewHFClient(""),
				Judge:  model.Mock{},
			}); err != nil {
				return err
			}

			writeList("Metrics", registry.Names())
			writeList("Providers", []string{"mock", "openai", "anthropic", "gemini"})
			writeList("Formats", reporter.Formats())
			return nil
		},
	}
	return cmd
}

func writeList(title string, items []string) {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{title})
	for _, item := range items {
		table.Append([]string{item})
	}
	table.Render()
}
