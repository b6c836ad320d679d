package services

import "github.com/microcosm-cc/bluemonday"

// strict strips every HTML element and attribute from user-supplied text
var strict = bluemonday.StrictPolicy()

// CleanText sanitizes user-supplied text before it is persisted. Posts,
// comments, messages and bios are plain text; anything markup-shaped is
// stripped rather than rejected.
func CleanText(s string) string {
	return strict.Sanitize(s)
}
