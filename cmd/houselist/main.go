// Command houselist shows houses currently on the market.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rshade/houselist/internal/cli"
	"github.com/rshade/houselist/pkg/version"
)

func main() {
	os.Exit(exitCode(run()))
}

// run executes the root command and returns its error.
func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.ExecuteContext(context.Background())
}

// exitCode reports err on stderr and maps it to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return 1
}
