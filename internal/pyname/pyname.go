// Package pyname derives Python package identifiers and display names from
// free-text project names, and validates minimum Python version strings.
package pyname

import (
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	invalidRuns    = regexp.MustCompile(`[^a-zA-Z0-9\-_]+`)
	leadingNonWord = regexp.MustCompile(`^[^a-zA-Z_]+`)
	versionShape   = regexp.MustCompile(`^3\.\d+$`)

	titleCaser = cases.Title(language.English)
)

// DefaultPythonVersion is used when a supplied version string is malformed.
const DefaultPythonVersion = "3.12"

// minSupported is the oldest Python release the generated scaffolds target.
var minSupported = semver.MustParse("3.9")

// Slugify converts free text to a distribution-name slug: lowercase, runs of
// characters outside [a-zA-Z0-9-_] collapsed to a hyphen, and any leading
// characters that cannot start a Python package name stripped.
func Slugify(text string) string {
	slug := invalidRuns.ReplaceAllString(strings.ToLower(text), "-")
	slug = strings.Trim(slug, "-")
	return leadingNonWord.ReplaceAllString(slug, "")
}

// Pythonize converts a package slug to an import-safe module identifier.
func Pythonize(packageName string) string {
	return strings.ReplaceAll(Slugify(packageName), "-", "_")
}

// TitleWords converts a directory-style name ("my-cool_app") to a display
// title ("My Cool App").
func TitleWords(name string) string {
	s := strings.NewReplacer("-", " ", "_", " ").Replace(name)
	return titleCaser.String(s)
}

// ValidatePythonVersion checks that version has the form "3.<minor>" and is
// not older than the oldest supported release. Malformed or too-old input
// falls back to DefaultPythonVersion; ok reports whether the input was kept.
func ValidatePythonVersion(version string) (v string, ok bool) {
	if !versionShape.MatchString(version) {
		return DefaultPythonVersion, false
	}
	parsed, err := semver.NewVersion(version)
	if err != nil || parsed.LessThan(minSupported) {
		return DefaultPythonVersion, false
	}
	return version, true
}
