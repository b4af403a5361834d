package model

import (
	"errors"
	"fmt"
)

// DefaultBucket is the bucket assumed when an install reference does not
// name one (e.g. "scoop install git" refers to main/git).
const DefaultBucket = "main"

// Sentinel errors returned while turning an input line into a Manifest.
// Callers distinguish them with errors.Is to decide how loudly to log a
// skipped record.
var (
	// ErrNoMatch indicates the line is not an install reference at all.
	ErrNoMatch = errors.New("line does not match install reference")

	// ErrMalformedReference indicates the line looks like an install
	// reference, but its package token cannot be split into bucket and name.
	ErrMalformedReference = errors.New("malformed reference")

	// ErrManifestNotFound indicates no manifest file exists for a reference.
	ErrManifestNotFound = errors.New("manifest not found")

	// ErrMalformedManifest indicates the manifest file exists but is not
	// parsable or lacks a required field.
	ErrMalformedManifest = errors.New("malformed manifest")
)

// Reference is a (bucket, package) pair extracted from an install line.
// Name is never empty; Bucket falls back to DefaultBucket.
type Reference struct {
	// Bucket is the name of the bucket the package lives in.
	Bucket string `json:"bucket"`

	// Name is the package name, which is also the manifest file name
	// without its .json extension.
	Name string `json:"name"`
}

// NewReference creates a Reference, defaulting an empty bucket to
// DefaultBucket. Returns ErrMalformedReference if name is empty.
func NewReference(bucket, name string) (Reference, error) {
	if name == "" {
		return Reference{}, fmt.Errorf("%w: empty package name", ErrMalformedReference)
	}
	if bucket == "" {
		bucket = DefaultBucket
	}
	return Reference{Bucket: bucket, Name: name}, nil
}

// String returns the reference in "bucket/name" form.
func (r Reference) String() string {
	return r.Bucket + "/" + r.Name
}

// Manifest holds the descriptive metadata of one package, as read from
// its manifest file. Identity is (Bucket, Name).
type Manifest struct {
	// Name is the package name derived from the manifest file name.
	Name string `json:"name"`

	// Bucket is the bucket the manifest was loaded from.
	Bucket string `json:"bucket"`

	// Description is the one-line package description.
	Description string `json:"description"`

	// Homepage is the URL of the package's home page.
	Homepage string `json:"homepage"`
}

// Reference returns the identity of the manifest as a Reference.
func (m *Manifest) Reference() Reference {
	return Reference{Bucket: m.Bucket, Name: m.Name}
}

// ExitCode defines the process exit codes of the scoop-doc tools.
// Per-record problems never change the exit code; only faults that stop
// the whole run do.
type ExitCode int

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInputError indicates the input (standard input or the manifest
	// directory) could not be read.
	ExitInputError ExitCode = 2
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
