// Package main is the entry point for the index advisor CLI.
package main

import (
	"os"

	"github.com/dshills/IndexAdvisor/cmd/indexadvisor/app"
)

func main() {
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
