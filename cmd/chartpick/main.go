package main

import (
	"fmt"
	"os"

	"github.com/chart-tools/chartpick/pkg/exitcodes"
)

// main is the entry point of the application. The merged manifest is the
// only thing ever written to stdout; diagnostics go to stderr and failures
// map to the categorized exit codes in pkg/exitcodes.
func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if code, ok := exitcodes.IsExitCodeError(err); ok {
			os.Exit(code)
		}
		os.Exit(exitcodes.ExitGeneralRuntimeError)
	}
}
