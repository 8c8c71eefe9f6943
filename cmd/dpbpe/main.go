// Command dpbpe compiles vocabularies, trains byte-pair-encoding models, and
// applies them to segment or reassemble text.
package main

import (
	"fmt"
	"os"

	"github.com/oalang/dpbpe/internal/cli"
)

var (
	version = "dev"
	commit  = "unknown"
)

func init() {
	cli.Version = version
	cli.GitCommit = commit
}

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
