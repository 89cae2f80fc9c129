// Command carbonctl manages the part catalogue and runs emission estimates
// from the terminal.
package main

import (
	"os"

	"carbon-logistics-service/cmd/carbonctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
