// Package config resolves the runtime settings of the scoop-doc tools.
//
// Settings come from three layers, highest precedence first:
//
//  1. Command-line flags (--root, --command, --format, --dir, --debug)
//  2. Environment variables with the SCOOP_DOC_ prefix
//     (SCOOP_DOC_ROOT, SCOOP_DOC_COMMAND, ...)
//  3. Built-in defaults
//
// The layering is done with github.com/spf13/viper. There is no config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/shinji-kodama/scoop-doc/internal/reference"
	"github.com/shinji-kodama/scoop-doc/internal/render"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "SCOOP_DOC"

// Setting keys. Each key doubles as the name of its command-line flag.
const (
	KeyRoot    = "root"
	KeyCommand = "command"
	KeyFormat  = "format"
	KeyDir     = "dir"
	KeyDebug   = "debug"
)

// DefaultManifestDir is the manifest directory listed by make-apps-list,
// relative to the working directory (a bucket checkout).
const DefaultManifestDir = "bucket"

// Config holds the resolved settings of one command run.
type Config struct {
	// Root is the buckets root that install references are resolved
	// against, e.g. "C:\Users\me\scoop\buckets".
	Root string

	// Command is the install command keyword recognized in input lines.
	Command string

	// Format is the output format of scoop-doc.
	Format render.Format

	// Dir is the manifest directory listed by make-apps-list.
	Dir string

	// Debug enables debug-level logging.
	Debug bool
}

// Load resolves a Config from the given flag set, the environment and the
// defaults. Flags not defined on flags fall back to environment/defaults.
func Load(flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	v.SetDefault(KeyRoot, DefaultBucketsRoot())
	v.SetDefault(KeyCommand, reference.DefaultCommand)
	v.SetDefault(KeyFormat, render.FormatCSV.String())
	v.SetDefault(KeyDir, DefaultManifestDir)
	v.SetDefault(KeyDebug, false)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	format, err := render.ParseFormat(v.GetString(KeyFormat))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Root:    v.GetString(KeyRoot),
		Command: v.GetString(KeyCommand),
		Format:  format,
		Dir:     v.GetString(KeyDir),
		Debug:   v.GetBool(KeyDebug),
	}

	if strings.TrimSpace(cfg.Command) == "" {
		return nil, fmt.Errorf("install command keyword must not be empty")
	}

	return cfg, nil
}

// DefaultBucketsRoot returns the buckets directory of the local Scoop
// installation. It prefers $SCOOP (a custom install location), then
// %USERPROFILE%\scoop, then the user's home directory. Returns "" if none
// of these can be determined.
func DefaultBucketsRoot() string {
	if scoop := os.Getenv("SCOOP"); scoop != "" {
		return filepath.Join(scoop, "buckets")
	}
	if profile := os.Getenv("USERPROFILE"); profile != "" {
		return filepath.Join(profile, "scoop", "buckets")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, "scoop", "buckets")
}
