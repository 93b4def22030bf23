package main

import cmd "github.com/mwiater/gollamabench/cmd/gollamabench"

// main starts the gollamabench CLI application by delegating to the
// cobra root command defined in the gollamabench package.
func main() {
	cmd.Execute()
}
