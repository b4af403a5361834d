// Package cli implements the cobra commands behind the scoop-doc binaries.
//
// Each binary is a single command defined in its own file:
// make-apps-list (appslist.go) and scoop-doc (scoopdoc.go). This file holds
// what they share: build information, flag registration, logger setup, and
// the Execute entry point that maps errors to exit codes.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/scoop-doc/internal/config"
	"github.com/shinji-kodama/scoop-doc/internal/model"
)

// version, commit, and date are set at build time via ldflags.
// They are injected from the main packages to display version information.
var (
	// Version is the semantic version of the binary (e.g., "1.0.0").
	Version = "dev"

	// Commit is the Git commit hash the binary was built from.
	Commit = "none"

	// Date is the build timestamp.
	Date = "unknown"
)

// versionString is the text shown by --version.
func versionString() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, Date)
}

// addCommonFlags registers the flags every command understands.
func addCommonFlags(cmd *cobra.Command) {
	cmd.Flags().Bool(config.KeyDebug, false, "Enable debug logging")
}

// newLogger creates the logger for one command run. Output goes to w
// (stderr in production) so that stdout carries only the rendered result.
// Warnings are always shown; --debug adds the per-line trace.
func newLogger(w io.Writer, prefix string, debug bool) *log.Logger {
	level := log.WarnLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix:          prefix,
		Level:           level,
		ReportTimestamp: true,
	})
}

// Execute runs cmd and exits the process with the matching exit code.
// This is the main entry point called from the main packages.
func Execute(cmd *cobra.Command) {
	if err := cmd.Execute(); err != nil {
		printError(cmd.ErrOrStderr(), err)
		os.Exit(int(exitCode(err)))
	}
}

// exitCode maps err to a process exit code. CLIError types carry their
// own exit codes; other errors default to ExitGeneralError.
func exitCode(err error) model.ExitCode {
	if err == nil {
		return model.ExitSuccess
	}
	var cliErr *model.CLIError
	if errors.As(err, &cliErr) {
		return cliErr.Code
	}
	return model.ExitGeneralError
}

// printError writes "Error: <message>" to w.
func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
