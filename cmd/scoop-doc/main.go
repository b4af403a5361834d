// Package main is the entry point for the scoop-doc CLI.
//
// scoop-doc describes the apps referenced by "scoop install" lines read from
// standard input. It delegates all functionality to the internal/cli package.
package main

import (
	"github.com/shinji-kodama/scoop-doc/internal/cli"
)

// version, commit, and date are set at build time via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	cli.Execute(cli.NewScoopDocCommand())
}
