package utils

import (
	"regexp"
	"strings"
)

var (
	// Characters invalid in filenames on most filesystems
	invalidFilenameChars = regexp.MustCompile(`[<>:"/\\|?*]`)
	// Whitespace characters to normalize
	whitespaceChars = regexp.MustCompile(`[\r\n\t ]`)
)

// SanitizeFilename makes a string safe to use as a filename component. It
// strips characters invalid on common filesystems, replaces whitespace
// with dashes and caps the length, leaving room for an extension.
func SanitizeFilename(filename string) string {
	filename = invalidFilenameChars.ReplaceAllString(filename, "")
	filename = whitespaceChars.ReplaceAllString(filename, "-")
	filename = strings.Trim(filename, "-.")

	if len(filename) > 200 {
		filename = strings.Trim(filename[:200], "-.")
	}

	if filename == "" {
		filename = "untitled"
	}

	return filename
}
