package run

import "regexp"

// Pattern is a heuristic for a line that likely makes a network call
// or refers to another origin.
type Pattern struct {
	Name   string
	Regexp *regexp.Regexp
}

// DefaultPatterns returns the patterns applied to each line, in the order they are tested.
// All of them are case-insensitive.
func DefaultPatterns() []*Pattern {
	return []*Pattern{
		{Name: "fetch", Regexp: regexp.MustCompile(`(?i)fetch\s*\(`)},
		{Name: "axios", Regexp: regexp.MustCompile(`(?i)axios\.`)},
		{Name: "url", Regexp: regexp.MustCompile(`(?i)http://|https://`)},
		{Name: "get", Regexp: regexp.MustCompile(`(?i)\.get\(`)},
		{Name: "post", Regexp: regexp.MustCompile(`(?i)\.post\(`)},
		{Name: "api", Regexp: regexp.MustCompile(`(?i)/api/`)},
		{Name: "localhost", Regexp: regexp.MustCompile(`(?i)localhost:\d+`)},
	}
}

// matchLine returns the first pattern matching the line, or nil.
func matchLine(patterns []*Pattern, line string) *Pattern {
	for _, p := range patterns {
		if p.Regexp.MatchString(line) {
			return p
		}
	}
	return nil
}
