// cmd/gollamabench/view.go
package gollamabench

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gollamabench/internal/results"
	"github.com/mwiater/gollamabench/internal/viewer"
)

// defaultExportFile is where CSV exports land unless overridden.
const defaultExportFile = "ollama_test_results.csv"

// viewCmd groups the result-viewing subcommands. Run without a subcommand
// it starts the interactive results browser.
var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Browse and compare logged benchmark results",
	Long: `The 'view' command opens an interactive browser over the JSON results log.
Its subcommands print the same reports directly: 'summary', 'detail',
'compare', and 'export'.`,
	Run: func(cmd *cobra.Command, args []string) {
		rs := loadLoggedResults()
		if len(rs) == 0 {
			fmt.Println("No test results found. Run 'gollamabench run' first to generate some.")
			return
		}
		if err := viewer.Start(rs, defaultExportFile); err != nil {
			fmt.Println("Error running results viewer:", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

// loadLoggedResults reads the results log, degrading an unreadable or
// malformed log to an empty one with a printed warning.
func loadLoggedResults() []results.TestResult {
	store := results.NewStore(viper.GetString("log_file"))
	rs, err := store.Load()
	if err != nil {
		fmt.Println("Warning: treating results log as empty:", err)
		return nil
	}
	return rs
}
