// cmd/gollamabench/root.go
package gollamabench

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd is the base Cobra command for the gollamabench application.
// All subcommands are attached to this root to form the complete CLI.
var rootCmd = &cobra.Command{
	Use:   "gollamabench",
	Short: "Benchmark local Ollama models and browse the results",
	Long:  `gollamabench streams a single prompt to a local Ollama daemon, measures latency and throughput, rates the run, and appends it to a JSON results log. The 'view' commands aggregate and compare logged runs.`,
}

// Execute runs the root Cobra command and all registered subcommands.
// It prints any returned error and exits the process with a non-zero
// status code on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "", "config file (default gollamabench.json when present)")
	rootCmd.PersistentFlags().StringP("host", "H", "http://localhost:11434", "Ollama host URL")
	rootCmd.PersistentFlags().String("log", "ollama_test_results.json", "JSON results log file")

	viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	viper.BindPFlag("host", rootCmd.PersistentFlags().Lookup("host"))
	viper.BindPFlag("log_file", rootCmd.PersistentFlags().Lookup("log"))
}
