// Package main provides the entry point for the wikiai CLI tool.
package main

import (
	"os"

	"github.com/wikiai/wikiai/cmd/wikiai/app"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	application, err := app.New(version, commit, date)
	if err != nil {
		app.ExitOnError(err)
	}

	if err := application.Execute(os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}
