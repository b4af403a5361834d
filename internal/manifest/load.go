package manifest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/shinji-kodama/scoop-doc/internal/model"
)

// utf8BOM is stripped before parsing. Manifests edited on Windows are
// sometimes saved with one, and encoding/json rejects it.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// rawManifest is the subset of the Scoop manifest schema read by this tool.
// Pointer fields distinguish an absent key from an empty string; every
// other manifest field is silently ignored during parsing.
type rawManifest struct {
	Description *string `json:"description"`
	Homepage    *string `json:"homepage"`
}

// Load reads the manifest at path and returns it as a model.Manifest with
// the given name and bucket.
//
// Returns an error wrapping model.ErrManifestNotFound if the file cannot be
// read, or model.ErrMalformedManifest if it is not valid JSON(C) or lacks
// the "description" or "homepage" field.
func Load(path, name, bucket string) (*model.Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", model.ErrManifestNotFound, path, err)
	}

	data = bytes.TrimPrefix(data, utf8BOM)

	var raw rawManifest
	if err := json.Unmarshal(jsonc.ToJSON(data), &raw); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", model.ErrMalformedManifest, path, err)
	}

	if raw.Description == nil {
		return nil, fmt.Errorf("%w: %s: missing \"description\"", model.ErrMalformedManifest, path)
	}
	if raw.Homepage == nil {
		return nil, fmt.Errorf("%w: %s: missing \"homepage\"", model.ErrMalformedManifest, path)
	}

	return &model.Manifest{
		Name:        name,
		Bucket:      bucket,
		Description: *raw.Description,
		Homepage:    *raw.Homepage,
	}, nil
}
