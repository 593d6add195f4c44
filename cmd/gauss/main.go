// SPDX-License-Identifier: MIT

// Command gauss solves linear systems typed on the command line or stored in
// YAML system files, printing the elimination trace and the solution.
package main

import (
	"os"

	"github.com/katalvlaran/gauss/cmd/gauss/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
