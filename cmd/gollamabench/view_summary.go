// cmd/gollamabench/view_summary.go
package gollamabench

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/gollamabench/internal/results"
	"github.com/mwiater/gollamabench/internal/viewer"
)

// viewSummaryCmd implements 'view summary', which prints overall counts,
// tested models, performance averages, and the rating histogram.
var viewSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Print summary statistics for all logged results",
	Long:  `The 'summary' subcommand prints the number of logged tests, the distinct models tested, mean throughput and latency, and a histogram of performance ratings.`,
	Run: func(cmd *cobra.Command, args []string) {
		rs := loadLoggedResults()
		if len(rs) == 0 {
			fmt.Println("No test results found. Run 'gollamabench run' first to generate some.")
			return
		}
		fmt.Print(viewer.RenderSummary(results.Summarize(rs)))
	},
}

func init() {
	viewCmd.AddCommand(viewSummaryCmd)
}
