package services

import (
	"regexp"
	"strings"
)

var (
	whitespaceRe = regexp.MustCompile(`\s+`)
	nonSlugRe    = regexp.MustCompile(`[^a-z0-9-]`)
)

// Slugify lowercases name, joins whitespace runs with a hyphen and drops
// anything outside [a-z0-9-].
func Slugify(name string) string {
	s := strings.ToLower(name)
	s = whitespaceRe.ReplaceAllString(s, "-")
	return nonSlugRe.ReplaceAllString(s, "")
}

// captionFromFile turns "sunset_over-porto.jpg" into "sunset over porto".
func captionFromFile(name string) string {
	base := strings.TrimSuffix(name, extOf(name))
	return strings.NewReplacer("-", " ", "_", " ").Replace(base)
}

func extOf(name string) string {
	if i := strings.LastIndexByte(name, '.'); i > 0 {
		return name[i:]
	}
	return ""
}
