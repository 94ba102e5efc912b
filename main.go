package main

import (
	"os"

	"github.com/metaramp/rampctl/cmd"
	"github.com/metaramp/rampctl/internal/errors"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(errors.GetExitCode(err))
	}
}
