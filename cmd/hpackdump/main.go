// Command hpackdump decodes a captured HPACK header block from the command
// line or stdin and prints the header fields it contains.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"drip/internal/client/cli"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintf(os.Stderr, "hpackdump: logger init: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	cmd := cli.NewRootCommand(logger)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
