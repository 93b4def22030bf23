// cmd/gollamabench/list_models.go
package gollamabench

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mwiater/gollamabench/internal/bench"
)

var (
	modelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	loadedModelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
)

// listModelsCmd implements 'list models', which enumerates all models
// installed on the Ollama host and flags the ones currently loaded.
var listModelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List all models installed on the Ollama host",
	Long:  `The 'models' subcommand lists every model installed on the configured Ollama host, marking the models that are currently loaded into memory.`,
	Run: func(cmd *cobra.Command, args []string) {
		client := bench.NewClient(viper.GetString("host"))

		installed, err := client.ListModels(cmd.Context())
		if err != nil {
			fmt.Println("Error:", err)
			os.Exit(1)
		}

		running, err := client.RunningModels(cmd.Context())
		if err != nil {
			// The listing is still useful without loaded-state info.
			fmt.Println("Warning: could not determine loaded models:", err)
			running = nil
		}

		fmt.Println(client.Host() + ":")
		for _, m := range installed {
			if _, loaded := running[m]; loaded {
				fmt.Println("  " + loadedModelStyle.Render(m+" (CURRENTLY LOADED)"))
			} else {
				fmt.Println("  " + modelStyle.Render(m))
			}
		}
	},
}

func init() {
	listCmd.AddCommand(listModelsCmd)
}
