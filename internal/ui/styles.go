package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/altin/ggrep/internal/search"
)

var (
	ColorMatch = lipgloss.Color("1")
	ColorError = lipgloss.Color("9")

	StyleMatch = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorMatch)

	StyleError = lipgloss.NewStyle().Foreground(ColorError)
)

// Highlight rebuilds the line with every matched span wrapped in the match
// style. Text outside the matches passes through byte for byte, so
// stripping the escape sequences yields the original line again.
func Highlight(line string, m *search.Matcher) string {
	spans := m.Spans(line)
	if len(spans) == 0 {
		return line
	}

	var b strings.Builder
	last := 0
	for _, sp := range spans {
		b.WriteString(line[last:sp[0]])
		b.WriteString(StyleMatch.Render(line[sp[0]:sp[1]]))
		last = sp[1]
	}
	b.WriteString(line[last:])
	return b.String()
}
