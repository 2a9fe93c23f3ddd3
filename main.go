// Package main is the entry point for the winspect command-line tool.
package main

import (
	"os"

	"github.com/Norgate-AV/winspect/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
