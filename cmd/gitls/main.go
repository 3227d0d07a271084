package main

import (
	"errors"
	"os"

	"github.com/sokinpui/gitls"
)

// Failures are reported through the exit status only; run with -v to see why.
func main() {
	if err := gitls.Execute(); err != nil {
		if errors.Is(err, gitls.ErrUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
