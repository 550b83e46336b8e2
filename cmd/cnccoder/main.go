// Command cnccoder compiles declarative cutting jobs into G-code
// programs and Camotics simulation projects.
package main

import (
	"fmt"
	"os"

	"github.com/tirithen/cnccoder/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
