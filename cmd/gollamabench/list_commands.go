// cmd/gollamabench/list_commands.go
package gollamabench

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// commandsCmd implements 'list commands', which prints the available
// commands and subcommands in a hierarchical, indented, two-column format.
var commandsCmd = &cobra.Command{
	Use:   "commands",
	Short: "List all commands and subcommands in two columns",
	Long:  `The 'commands' subcommand lists all commands and subcommands in a hierarchical, indented format, with the command path in the first column and its short description in the second column.`,
	Run: func(cmd *cobra.Command, args []string) {
		listAllCommands(rootCmd)
	},
}

func init() {
	listCmd.AddCommand(commandsCmd)
}

type commandInfo struct {
	path        string
	description string
}

// listAllCommands walks the command tree starting from root and prints each
// command path and short description in a padded, two-column layout.
func listAllCommands(root *cobra.Command) {
	rows := collectCommandData(root, "", "")

	widest := 0
	for _, row := range rows {
		if len(row.path) > widest {
			widest = len(row.path)
		}
	}

	fmt.Println("Commands and Subcommands:")
	for _, row := range rows {
		fmt.Printf("  %s%s%s\n", row.path, strings.Repeat(" ", widest-len(row.path)+2), row.description)
	}
}

// collectCommandData flattens the command tree into path/description pairs,
// indenting nested commands by depth.
func collectCommandData(cmd *cobra.Command, currentPath, indent string) []commandInfo {
	fullPath := cmd.Name()
	if currentPath != "" {
		fullPath = currentPath + " " + cmd.Name()
	}

	rows := []commandInfo{{path: indent + fullPath, description: cmd.Short}}
	for _, sub := range cmd.Commands() {
		rows = append(rows, collectCommandData(sub, fullPath, indent+"  ")...)
	}
	return rows
}
