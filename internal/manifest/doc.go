// Package manifest locates and loads Scoop package manifests.
//
// A manifest is a JSON file named "<package>.json" that carries at least a
// "description" and a "homepage" string. Manifests live in the "bucket"
// subdirectory of each bucket checkout:
//
//	<root>/<bucket>/bucket/<package>.json
//
// Store resolves a model.Reference against such a root, and Enumerate
// lists every manifest of a single bucket directory. Both load files
// through Load, which accepts JSONC (comments and trailing commas) via
// github.com/tidwall/jsonc, since hand-maintained bucket manifests
// occasionally carry them.
//
// Manifests are read-only and loaded fresh on every call; nothing is cached.
package manifest
