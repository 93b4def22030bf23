// cmd/gollamabench/run.go
package gollamabench

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gollamabench/internal/bench"
)

// runCmd executes a single benchmark run: availability check, streamed
// query, metrics, rating, and log append.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single benchmark query against a model",
	Long: `The 'run' command checks that the configured model is installed on the
Ollama host, streams the query's response to the console while timing it,
derives latency and throughput metrics, assigns a performance rating, and
appends the result to the JSON log.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := bench.LoadConfig(viper.GetViper(), viper.GetString("config"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		if _, err := bench.NewRunner(cfg).Run(ctx); err != nil {
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringP("model", "m", "smollm2:135m", "model name to benchmark")
	runCmd.Flags().StringP("query", "q", "Explain quantum computing in simple terms.", "prompt to send")
	runCmd.Flags().Bool("debug", false, "dump the resolved configuration before running")
	runCmd.Flags().Bool("detailed-metrics", true, "show response length and word statistics")
	runCmd.Flags().Bool("token-stats", true, "show token count and throughput")

	viper.BindPFlag("model", runCmd.Flags().Lookup("model"))
	viper.BindPFlag("query", runCmd.Flags().Lookup("query"))
	viper.BindPFlag("debug", runCmd.Flags().Lookup("debug"))
	viper.BindPFlag("show_detailed_metrics", runCmd.Flags().Lookup("detailed-metrics"))
	viper.BindPFlag("show_token_stats", runCmd.Flags().Lookup("token-stats"))
}
