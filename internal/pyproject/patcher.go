// Package pyproject rewrites individual fields of a pyproject.toml document
// through targeted pattern replacement. The documents it edits are freshly
// generated scaffolds with a known shape, so no TOML object model is built:
// each edit touches only its own matched span and leaves every other byte of
// the document untouched. A field whose pattern is absent is skipped silently
// and the document is returned unchanged.
package pyproject

import (
	"fmt"
	"regexp"
)

// scalarPattern matches a `key = "value"` line with single or double quotes.
// The replacement is applied to every matching line; scaffolds contain at
// most one, but a second accidental match is rewritten identically rather
// than treated as an error.
func scalarPattern(key string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)^` + regexp.QuoteMeta(key) + `\s*=\s*["'][^"']*["']`)
}

var (
	namePattern     = regexp.MustCompile(`(?m)^name\s*=\s*["']([^"']+)["']`)
	authorsPattern  = regexp.MustCompile(`(?s)authors\s*=\s*\[.*?\]`)
	packagesPattern = regexp.MustCompile(`(?s)packages\s*=\s*\[.*?\]`)

	// projectSectionPattern captures the [project] section body up to the
	// next top-level section header or end of document, so a missing
	// packages key can be inserted at the section's end.
	projectSectionPattern = regexp.MustCompile(`(?s)(\[project\][^\[]*?)(\n\[|\z)`)
)

// SetScalar replaces the quoted value of every `key = "..."` line.
// Returns the document unchanged when no line matches.
func SetScalar(doc, key, value string) string {
	return scalarPattern(key).ReplaceAllString(doc, fmt.Sprintf("%s = %q", key, value))
}

// SetRequiresPython sets the requires-python field to a lower-bound
// constraint derived from minVersion, e.g. ">=3.12".
func SetRequiresPython(doc, minVersion string) string {
	return SetScalar(doc, "requires-python", ">="+minVersion)
}

// SetAuthors replaces the entire `authors = [ ... ]` block with a
// single-entry list holding the given name and email. Scaffolds carry at
// most one placeholder author; any additional entries are replaced along
// with it. A document without an authors key is returned unchanged.
func SetAuthors(doc, name, email string) string {
	entry := fmt.Sprintf(`authors = [ { name = %q, email = %q } ]`, name, email)
	return authorsPattern.ReplaceAllLiteralString(doc, entry)
}

// SetToolPackage updates the changelog tool's `package = "..."` key so the
// Towncrier target stays in sync with the renamed package.
func SetToolPackage(doc, packageName string) string {
	return SetScalar(doc, "package", packageName)
}

// SetPackagesInclude points the packages list at the given package
// directory. An existing `packages = [...]` block is replaced wholesale;
// otherwise a new one is inserted at the end of the [project] section.
// Applying the same package name twice yields the same document.
func SetPackagesInclude(doc, packageName string) string {
	block := fmt.Sprintf(`packages = [{include = %q}]`, packageName)
	if packagesPattern.MatchString(doc) {
		return packagesPattern.ReplaceAllLiteralString(doc, block)
	}
	return projectSectionPattern.ReplaceAllString(doc, "${1}"+block+"${2}")
}

// ProjectName extracts the current project name from the document.
// Returns an empty string when the name field is absent.
func ProjectName(doc string) string {
	m := namePattern.FindStringSubmatch(doc)
	if m == nil {
		return ""
	}
	return m[1]
}
