// Package main is the entry point for the make-apps-list CLI.
//
// make-apps-list prints the apps of a Scoop bucket checkout as a markdown
// list. All functionality lives in the internal/cli package.
//
// Build-time variables (version, commit, date) are injected via ldflags
// during the release process. During development, they default to "dev",
// "none", and "unknown" respectively.
package main

import (
	"github.com/shinji-kodama/scoop-doc/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Build info must be in place before the command reads it.
	cli.Version = version
	cli.Commit = commit
	cli.Date = date

	cli.Execute(cli.NewAppsListCommand())
}
