// Package vellum is a small terminal text editor built on a grapheme-correct
// line buffer with keyword-table syntax highlighting.
//
// The document model lives in package document, the per-filetype highlight
// rules in package syntax, and the interactive Bubble Tea session in package
// editor.
package vellum

import (
	_ "embed"
	"regexp"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the editor's release version without a leading `v`. It is
// what the welcome banner shows.
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version in git tag form, with the leading `v`.
func VersionTag() string {
	return "v" + Version()
}

// IsSemver reports whether v is a valid SemVer 2.0.0 string. Surrounding
// whitespace is ignored.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}

// VersionIsSemver reports whether the embedded Version is valid SemVer.
func VersionIsSemver() bool {
	return IsSemver(Version())
}
