// cmd/gollamabench/view_detail.go
package gollamabench

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwiater/gollamabench/internal/viewer"
)

var detailLimit int

// viewDetailCmd implements 'view detail', which lists logged runs newest
// first with their metrics and rating.
var viewDetailCmd = &cobra.Command{
	Use:   "detail",
	Short: "Print per-test details, newest first",
	Long:  `The 'detail' subcommand lists every logged run with its timestamp, model, query, metrics, rating, and a response preview. Use --limit to show only the most recent runs.`,
	Run: func(cmd *cobra.Command, args []string) {
		rs := loadLoggedResults()
		if len(rs) == 0 {
			fmt.Println("No test results found. Run 'gollamabench run' first to generate some.")
			return
		}
		fmt.Print(viewer.RenderDetails(rs, detailLimit))
	},
}

func init() {
	viewCmd.AddCommand(viewDetailCmd)
	viewDetailCmd.Flags().IntVarP(&detailLimit, "limit", "n", 0, "show only the N most recent results (0 shows all)")
}
