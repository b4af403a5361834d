package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shinji-kodama/scoop-doc/internal/model"
)

// ManifestDir is the subdirectory of a bucket checkout holding its manifests.
const ManifestDir = "bucket"

// Ext is the manifest file extension.
const Ext = ".json"

// Store resolves references against a buckets root directory, usually
// "~/scoop/buckets". It is stateless apart from the root path.
type Store struct {
	root string
}

// NewStore creates a Store rooted at root.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the buckets root directory.
func (s *Store) Root() string {
	return s.root
}

// Path returns the manifest file path for ref:
//
//	<root>/<bucket>/bucket/<name>.json
func (s *Store) Path(ref model.Reference) string {
	return filepath.Join(s.root, ref.Bucket, ManifestDir, ref.Name+Ext)
}

// Resolve locates and loads the manifest for ref.
//
// Returns an error wrapping model.ErrManifestNotFound when no manifest file
// exists, and model.ErrMalformedManifest when it exists but cannot be used.
func (s *Store) Resolve(ref model.Reference) (*model.Manifest, error) {
	path := s.Path(ref)

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", model.ErrManifestNotFound, path)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", model.ErrManifestNotFound, path)
	}

	return Load(path, ref.Name, ref.Bucket)
}
