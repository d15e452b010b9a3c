package main

import (
	"os"

	"github.com/uzimihsr/cwexport/cmd"
	"github.com/uzimihsr/cwexport/internal/apperr"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(apperr.ExitCode(err))
	}
}
