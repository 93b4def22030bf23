// cmd/gollamabench/view_export.go
package gollamabench

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwiater/gollamabench/internal/results"
)

var exportFile string

// viewExportCmd implements 'view export', which flattens every logged
// result into a CSV row.
var viewExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all logged results to a CSV file",
	Long:  `The 'export' subcommand writes one CSV row per logged result, in log order, with a fixed header covering the metrics and performance fields.`,
	Run: func(cmd *cobra.Command, args []string) {
		rs := loadLoggedResults()
		if len(rs) == 0 {
			fmt.Println("No test results found. Run 'gollamabench run' first to generate some.")
			return
		}
		if err := results.ExportCSVFile(exportFile, rs); err != nil {
			fmt.Println("Error exporting to CSV:", err)
			os.Exit(1)
		}
		fmt.Println("Results exported to", exportFile)
	},
}

func init() {
	viewCmd.AddCommand(viewExportCmd)
	viewExportCmd.Flags().StringVarP(&exportFile, "output", "o", defaultExportFile, "CSV output file")
}
