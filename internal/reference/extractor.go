package reference

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shinji-kodama/scoop-doc/internal/model"
)

// DefaultCommand is the command keyword recognized when none is configured.
const DefaultCommand = "scoop install"

// Match is the raw result of matching one line, before the package token
// is split into bucket and name.
type Match struct {
	// Prefix is the leading whitespace of the line.
	Prefix string

	// Token is the package token following the command keyword,
	// e.g. "extras/vscode" or "git". May be empty.
	Token string
}

// Extractor recognizes install reference lines for one command keyword.
// It holds no mutable state and is safe to reuse for any number of lines.
type Extractor struct {
	command string
	pattern *regexp.Regexp
}

// NewExtractor builds an Extractor for the given command keyword.
// The keyword is matched literally; regexp metacharacters in it are quoted.
func NewExtractor(command string) (*Extractor, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return nil, fmt.Errorf("command keyword must not be empty")
	}

	// prefix: leading whitespace, package: everything up to the next whitespace.
	pattern, err := regexp.Compile(`^(?P<prefix>\s*)` + regexp.QuoteMeta(command) + `\s(?P<package>\S*)`)
	if err != nil {
		return nil, fmt.Errorf("failed to compile pattern for command %q: %w", command, err)
	}

	return &Extractor{command: command, pattern: pattern}, nil
}

// Command returns the command keyword this Extractor recognizes.
func (e *Extractor) Command() string {
	return e.command
}

// Match reports whether line is an install line and, if so, returns its
// prefix and raw package token. A trailing line terminator is ignored.
func (e *Extractor) Match(line string) (Match, bool) {
	line = strings.TrimRight(line, "\r\n")

	groups := e.pattern.FindStringSubmatch(line)
	if groups == nil {
		return Match{}, false
	}

	return Match{
		Prefix: groups[e.pattern.SubexpIndex("prefix")],
		Token:  groups[e.pattern.SubexpIndex("package")],
	}, true
}

// Extract parses line into a Reference.
//
// Returns model.ErrNoMatch if the line is not an install line, and
// model.ErrMalformedReference if the package token is empty, has an empty
// side around its slash, or contains more than one slash.
func (e *Extractor) Extract(line string) (model.Reference, error) {
	m, ok := e.Match(line)
	if !ok {
		return model.Reference{}, model.ErrNoMatch
	}
	return ParseToken(m.Token)
}

// ParseToken splits a package token into a Reference:
//
//	"git"           → {Bucket: "main",   Name: "git"}
//	"extras/vscode" → {Bucket: "extras", Name: "vscode"}
//	"a/b/c"         → ErrMalformedReference
func ParseToken(token string) (model.Reference, error) {
	parts := strings.Split(token, "/")

	switch len(parts) {
	case 1:
		return model.NewReference(model.DefaultBucket, parts[0])
	case 2:
		if parts[0] == "" {
			return model.Reference{}, fmt.Errorf("%w: empty bucket in %q", model.ErrMalformedReference, token)
		}
		if parts[1] == "" {
			return model.Reference{}, fmt.Errorf("%w: empty package name in %q", model.ErrMalformedReference, token)
		}
		return model.Reference{Bucket: parts[0], Name: parts[1]}, nil
	default:
		return model.Reference{}, fmt.Errorf("%w: %q has %d slashes, expected at most 1",
			model.ErrMalformedReference, token, len(parts)-1)
	}
}
