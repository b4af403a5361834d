// Package cli — appslist.go implements the make-apps-list command.
//
// make-apps-list is run from the root of a bucket checkout. It loads every
// manifest in ./bucket and prints a markdown bullet list of the apps with
// links to their home pages, ready to paste into a README.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/scoop-doc/internal/config"
	"github.com/shinji-kodama/scoop-doc/internal/manifest"
	"github.com/shinji-kodama/scoop-doc/internal/model"
	"github.com/shinji-kodama/scoop-doc/internal/render"
)

// NewAppsListCommand creates the make-apps-list cobra command.
func NewAppsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "make-apps-list",
		Short: "Print the apps of this bucket as a markdown list",
		Long: `Print a markdown list of the apps in this bucket, with links to their home pages.

Every ./bucket/*.json manifest becomes one line, sorted by app name:

  * [<app>](<homepage>) - <description>

Manifests that cannot be parsed or lack a description or homepage are
skipped with a warning.

Examples:
  make-apps-list > APPS.md
  make-apps-list --dir path/to/bucket --debug`,

		Args: cobra.NoArgs,

		SilenceUsage:  true,
		SilenceErrors: true,

		Version: versionString(),

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return model.WrapCLIError(model.ExitGeneralError, "invalid configuration", err)
			}
			return runAppsList(cmd, cfg)
		},
	}

	addCommonFlags(cmd)
	cmd.Flags().String(config.KeyDir, config.DefaultManifestDir, "Directory containing the bucket's *.json manifests")

	return cmd
}

// runAppsList enumerates the manifest directory and writes the markdown list.
func runAppsList(cmd *cobra.Command, cfg *config.Config) error {
	logger := newLogger(cmd.ErrOrStderr(), cmd.Name(), cfg.Debug)

	logger.Debug("listing manifests", "dir", cfg.Dir)
	manifests, err := manifest.Enumerate(cfg.Dir, logger)
	if err != nil {
		return model.WrapCLIError(model.ExitInputError, "cannot list manifests", err)
	}
	logger.Debug("loaded manifests", "count", len(manifests))

	if err := render.Markdown(cmd.OutOrStdout(), manifests); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "cannot write output", err)
	}
	return nil
}
