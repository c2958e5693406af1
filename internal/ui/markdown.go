package ui

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer turns markdown into terminal output. With rendering disabled the
// markdown source is returned as is.
type Renderer struct {
	term *glamour.TermRenderer
}

// NewRenderer creates a renderer wrapping at wordWrap columns. Rendering is
// skipped when enabled is false or glamour cannot be initialised.
func NewRenderer(enabled, colored bool, wordWrap int) *Renderer {
	if !enabled {
		return &Renderer{}
	}

	style := glamour.WithAutoStyle()
	if !colored {
		style = glamour.WithStandardStyle("notty")
	}

	term, err := glamour.NewTermRenderer(
		style,
		glamour.WithWordWrap(wordWrap),
	)
	if err != nil {
		return &Renderer{}
	}
	return &Renderer{term: term}
}

func (r *Renderer) Render(markdown string) string {
	if r == nil || r.term == nil {
		return strings.TrimSpace(markdown)
	}

	rendered, err := r.term.Render(markdown)
	if err != nil {
		return strings.TrimSpace(markdown)
	}
	return strings.TrimSpace(rendered)
}

// RoutineMarkdown converts the plain "Heading:\n1. step" routine text into
// markdown headings and ordered lists.
func RoutineMarkdown(text string) string {
	var sb strings.Builder
	for _, line := range strings.Split(strings.TrimRight(text, "\n"), "\n") {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "":
			sb.WriteString("\n")
		case strings.HasSuffix(trimmed, ":") && !startsWithDigit(trimmed):
			sb.WriteString("### ")
			sb.WriteString(strings.TrimSuffix(trimmed, ":"))
			sb.WriteString("\n\n")
		default:
			sb.WriteString(trimmed)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func startsWithDigit(s string) bool {
	return s != "" && s[0] >= '0' && s[0] <= '9'
}
