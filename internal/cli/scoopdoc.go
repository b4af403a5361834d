// Package cli — scoopdoc.go implements the scoop-doc command.
//
// scoop-doc reads text such as a setup script from standard input, finds the
// "scoop install <bucket>/<app>" lines and looks up each app's manifest in
// the local Scoop installation. By default it prints a CSV table of the
// resolved apps; with --format annotate it echoes the input with each
// install line preceded by a comment holding the app's description.
package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/scoop-doc/internal/config"
	"github.com/shinji-kodama/scoop-doc/internal/manifest"
	"github.com/shinji-kodama/scoop-doc/internal/model"
	"github.com/shinji-kodama/scoop-doc/internal/reference"
	"github.com/shinji-kodama/scoop-doc/internal/render"
)

// NewScoopDocCommand creates the scoop-doc cobra command.
func NewScoopDocCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scoop-doc",
		Short: "Describe the apps installed by a list of scoop install lines",
		Long: `Read "scoop install <bucket>/<app>" lines from standard input and describe each app.

Apps without a bucket are looked up in "main". Manifests are read from
<root>/<bucket>/bucket/<app>.json, where <root> defaults to the buckets
directory of the local Scoop installation.

Output formats:
  csv       package,bucket,description,homepage table (default)
  annotate  the input, with a "# <description>" comment above each install line

Lines that are not install lines, and apps without a manifest, produce no
CSV row.

Examples:
  scoop-doc < setup.ps1 > apps.csv
  scoop-doc --format annotate < setup.ps1
  scoop-doc --root D:\scoop\buckets --debug < setup.ps1`,

		Args: cobra.NoArgs,

		SilenceUsage:  true,
		SilenceErrors: true,

		Version: versionString(),

		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return model.WrapCLIError(model.ExitGeneralError, "invalid configuration", err)
			}
			return runScoopDoc(cmd, cfg)
		},
	}

	addCommonFlags(cmd)
	cmd.Flags().String(config.KeyRoot, "", "Buckets root directory (default: $SCOOP/buckets or ~/scoop/buckets)")
	cmd.Flags().String(config.KeyCommand, reference.DefaultCommand, "Install command keyword to look for")
	cmd.Flags().String(config.KeyFormat, render.FormatCSV.String(), "Output format: csv or annotate")

	return cmd
}

// runScoopDoc reads all of standard input and renders it in the configured
// format.
func runScoopDoc(cmd *cobra.Command, cfg *config.Config) error {
	logger := newLogger(cmd.ErrOrStderr(), cmd.Name(), cfg.Debug)

	if cfg.Root == "" {
		return model.NewCLIError(model.ExitGeneralError,
			"cannot determine the buckets root: set --root or "+config.EnvPrefix+"_ROOT")
	}

	extractor, err := reference.NewExtractor(cfg.Command)
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "invalid install command", err)
	}

	// The whole input is buffered before any line is processed.
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return model.WrapCLIError(model.ExitInputError, "cannot read standard input", err)
	}
	lines := splitLines(string(data))
	logger.Debug("read input", "lines", len(lines), "root", cfg.Root, "format", cfg.Format)

	writer, err := render.NewWriter(cfg.Format, cmd.OutOrStdout())
	if err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "cannot start output", err)
	}

	p := &processor{
		extractor: extractor,
		store:     manifest.NewStore(cfg.Root),
		writer:    writer,
		logger:    logger,
	}
	if err := p.run(lines); err != nil {
		return model.WrapCLIError(model.ExitGeneralError, "cannot write output", err)
	}
	return nil
}

// processor turns input lines into Writer calls. It holds only the
// collaborators of one run; no state is carried from one line to the next.
type processor struct {
	extractor *reference.Extractor
	store     *manifest.Store
	writer    render.Writer
	logger    *log.Logger
}

// run reports every line to the writer, then flushes it. Only write errors
// are returned; problems with individual lines are logged and skipped.
func (p *processor) run(lines []string) error {
	for _, line := range lines {
		m, ok := p.resolve(line)
		var err error
		if ok {
			err = p.writer.Resolved(line, m)
		} else {
			err = p.writer.Skipped(line)
		}
		if err != nil {
			return err
		}
	}
	return p.writer.Flush()
}

// resolve extracts the install reference from line and loads its manifest.
// It returns false for any line that cannot be resolved.
func (p *processor) resolve(line string) (*model.Manifest, bool) {
	text := strings.TrimRight(line, "\r\n")

	ref, err := p.extractor.Extract(line)
	if err != nil {
		if errors.Is(err, model.ErrNoMatch) {
			p.logger.Debug("NOMATCH", "line", text)
		} else {
			p.logger.Warn("skipping line", "line", text, "err", err)
		}
		return nil, false
	}

	path := p.store.Path(ref)
	p.logger.Debug("looking for manifest", "bucket", ref.Bucket, "app", ref.Name, "path", path)

	m, err := p.store.Resolve(ref)
	if err != nil {
		if errors.Is(err, model.ErrManifestNotFound) {
			p.logger.Debug("NOFILE", "line", text, "path", path)
		} else {
			p.logger.Warn(fmt.Sprintf("skipping %s", ref), "err", err)
		}
		return nil, false
	}
	return m, true
}

// splitLines splits s into lines, keeping each line's terminator so the
// annotate format can echo the input byte for byte. A trailing empty
// segment (input ending in a newline, or empty input) is dropped.
func splitLines(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	return lines
}
