// ABOUTME: Entry point for lifeos CLI.
// ABOUTME: Invokes the root Cobra command and flushes the logger on exit.
package main

import (
	"fmt"
	"os"

	"github.com/harperreed/lifeos/internal/logger"
)

func main() {
	err := Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
