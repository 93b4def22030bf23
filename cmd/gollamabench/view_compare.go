// cmd/gollamabench/view_compare.go
package gollamabench

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/gollamabench/internal/results"
	"github.com/mwiater/gollamabench/internal/viewer"
)

// viewCompareCmd implements 'view compare', which groups logged results by
// model and prints per-model means sorted by throughput.
var viewCompareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Compare mean performance across models",
	Long:  `The 'compare' subcommand groups logged results by model and prints each model's test count, mean tokens per second, mean total time, mean performance score, and most common rating, fastest model first.`,
	Run: func(cmd *cobra.Command, args []string) {
		rs := loadLoggedResults()
		if len(rs) == 0 {
			fmt.Println("No test results found. Run 'gollamabench run' first to generate some.")
			return
		}
		fmt.Print(viewer.RenderComparison(results.CompareModels(rs)))
	},
}

func init() {
	viewCmd.AddCommand(viewCompareCmd)
}
