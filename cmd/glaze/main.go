// glaze is the CLI for deterministic per-workspace window tints.
package main

import (
	"os"

	"github.com/jimeh/vscode-glaze-sub003/internal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
