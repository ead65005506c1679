package search

import (
	"fmt"
	"regexp"
)

// Matcher is the compiled form of a search pattern. It is built once per
// run and shared read-only across every line of every input file.
type Matcher struct {
	re *regexp.Regexp
}

// Compile builds a matcher for a literal pattern. The pattern is always
// escaped, so regex metacharacters in user input match themselves.
// Whole-word mode wraps the escaped literal in word-boundary assertions.
func Compile(pattern string, ignoreCase, wholeWords bool) (*Matcher, error) {
	expr := regexp.QuoteMeta(pattern)
	if wholeWords {
		expr = `\b` + expr + `\b`
	}
	if ignoreCase {
		expr = "(?i)" + expr
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("compile pattern %q: %w", pattern, err)
	}
	return &Matcher{re: re}, nil
}

// Match reports whether the line contains at least one occurrence of the
// pattern. The match is not anchored to the whole line.
func (m *Matcher) Match(line string) bool {
	return m.re.MatchString(line)
}

// Decide applies the invert flag on top of the base match decision.
func (m *Matcher) Decide(line string, invert bool) bool {
	matched := m.Match(line)
	if invert {
		return !matched
	}
	return matched
}

// Spans returns the [start, end) byte offsets of every non-overlapping
// match in the line, left to right. Nil when nothing matches.
func (m *Matcher) Spans(line string) [][]int {
	return m.re.FindAllStringIndex(line, -1)
}
