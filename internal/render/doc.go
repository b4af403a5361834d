// Package render formats resolved manifests into output text.
//
// Three formats are supported:
//
//   - Markdown: one "* [name](homepage) - description" bullet per manifest,
//     used by make-apps-list.
//   - CSV: a "package,bucket,description,homepage" header followed by one
//     row per resolved install line, the default for scoop-doc.
//   - Annotate: the input echoed verbatim, with each resolved install line
//     preceded by a comment holding the package description.
//
// The two line-driven formats implement Writer so the CLI can drive them
// with a single loop.
package render
