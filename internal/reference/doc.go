// Package reference finds package install references in free-form text.
//
// An install reference is a line that starts (after optional whitespace)
// with a fixed command keyword such as "scoop install", followed by a
// single whitespace and a package token in "bucket/name" or bare "name"
// form. The keyword is part of the Extractor's configuration, so one
// process can hold extractors for different keywords side by side.
package reference
