// Command refreshdemo shows the pull-to-refresh control on a terminal list.
package main

import (
	"os"

	"github.com/go-drift/refresh/cmd/refreshdemo/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
