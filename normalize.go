package csvrepair

import (
	"regexp"
	"strings"
)

// LineBreakMarker is the fixed replacement for a line break inside a field,
// a space, the literal <br>, and a trailing space.
const LineBreakMarker = " <br> "

var trailingMarkerRegexp = regexp.MustCompile(`\s*<br>\s*$`)

// NormalizeLineBreaks replaces every line break in str with LineBreakMarker
// and returns the number of replacements.
//
// Each occurrence of "\r\n", lone "\n", or lone "\r" is replaced by one
// marker, with "\r\n" treated as a single unit. Surrounding whitespace is
// preserved exactly, not collapsed.
//
// The function is pure and idempotent: the marker contains no raw line break
// characters, so normalizing twice yields the same result as normalizing once.
func NormalizeLineBreaks(str string) (normalized string, numReplaced int) {
	if !strings.ContainsAny(str, "\r\n") {
		return str, 0
	}
	numReplaced += strings.Count(str, "\r\n")
	str = strings.ReplaceAll(str, "\r\n", LineBreakMarker)
	numReplaced += strings.Count(str, "\n")
	str = strings.ReplaceAll(str, "\n", LineBreakMarker)
	numReplaced += strings.Count(str, "\r")
	str = strings.ReplaceAll(str, "\r", LineBreakMarker)
	return str, numReplaced
}

// ReplaceSeparatorInField replaces every semicolon in str with a colon
// and returns the number of replacements.
//
// Semicolons in field values would be quoted on output. Some downstream
// import tools can't handle quoted separators, so this pass trades the
// semicolons for colons instead.
func ReplaceSeparatorInField(str string) (replaced string, numReplaced int) {
	numReplaced = strings.Count(str, ";")
	if numReplaced == 0 {
		return str, 0
	}
	return strings.ReplaceAll(str, ";", ":"), numReplaced
}

// StripTrailingMarkers removes trailing line break markers from str,
// together with any whitespace around them, and returns how many
// markers were removed.
func StripTrailingMarkers(str string) (stripped string, numRemoved int) {
	for {
		replaced := trailingMarkerRegexp.ReplaceAllString(str, "")
		if replaced == str {
			return str, numRemoved
		}
		str = replaced
		numRemoved++
	}
}
