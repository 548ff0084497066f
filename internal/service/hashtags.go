package service

import "regexp"

// hashtagPattern matches '#' followed by one or more word characters
// (letters, digits, underscore).
var hashtagPattern = regexp.MustCompile(`#\w+`)

// ExtractHashtags returns the hashtags found in content with the leading '#'
// stripped. Matches are kept verbatim and in order: duplicates are not
// collapsed and case is preserved. This is a pure function of content.
func ExtractHashtags(content string) []string {
	matches := hashtagPattern.FindAllString(content, -1)
	tags := make([]string, 0, len(matches))
	for _, m := range matches {
		tags = append(tags, m[1:])
	}
	return tags
}
