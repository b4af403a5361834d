// Package model defines the domain types and value objects for the
// scoop-doc tools.
//
// This package contains pure data structures with no external dependencies.
// All entities (Reference, Manifest) are transient: they are constructed
// from one input line or one manifest file and discarded after the
// corresponding output line has been written. Nothing is cached.
//
// The package also defines exit codes (ExitCode), a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling,
// and the sentinel errors shared by the extractor and the resolver.
package model
