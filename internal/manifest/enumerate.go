package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/shinji-kodama/scoop-doc/internal/model"
)

// Enumerate loads every "*.json" manifest directly inside dir, sorted by
// package name.
//
// The bucket of each manifest is the name of dir's parent directory, so
// running in a bucket checkout with dir "bucket" yields that checkout's
// name. Manifests that fail to load are logged as warnings and skipped;
// only a missing or unreadable dir is returned as an error.
func Enumerate(dir string, logger *log.Logger) ([]*model.Manifest, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list manifests in %s: %w", dir, err)
	}

	bucket := bucketName(dir)

	manifests := make([]*model.Manifest, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != Ext {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		name := strings.TrimSuffix(entry.Name(), Ext)
		logger.Debug("processing manifest", "path", path)

		m, err := Load(path, name, bucket)
		if err != nil {
			// A single broken manifest must not hide the rest of the bucket.
			if errors.Is(err, model.ErrMalformedManifest) {
				logger.Warn("skipping malformed manifest", "err", err)
			} else {
				logger.Warn("skipping unreadable manifest", "err", err)
			}
			continue
		}
		manifests = append(manifests, m)
	}

	sort.Slice(manifests, func(i, j int) bool {
		return manifests[i].Name < manifests[j].Name
	})

	return manifests, nil
}

// bucketName derives the bucket name from a manifest directory:
// "/src/extras/bucket" belongs to bucket "extras".
func bucketName(dir string) string {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	return filepath.Base(filepath.Dir(abs))
}
