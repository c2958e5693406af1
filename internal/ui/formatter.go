package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Palette
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")). // Pink
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")). // Coral red
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("222")) // Warm yellow

	SystemStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("183")). // Soft purple
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")). // Green
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	AccentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("147")) // Light purple

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("212")).
			Padding(0, 1)
)

type Formatter struct {
	colored bool
}

func NewFormatter(colored bool) *Formatter {
	return &Formatter{colored: colored}
}

// Colored reports whether output is styled.
func (f *Formatter) Colored() bool {
	return f.colored
}

func (f *Formatter) render(style lipgloss.Style, s string) string {
	if f.colored {
		return style.Render(s)
	}
	return s
}

func (f *Formatter) FormatError(err error) string {
	return f.render(ErrorStyle, "Error: ") + err.Error()
}

func (f *Formatter) FormatInfo(info string) string {
	return f.render(InfoStyle, info)
}

func (f *Formatter) FormatSystem(msg string) string {
	return f.render(SystemStyle, msg)
}

func (f *Formatter) FormatSuccess(msg string) string {
	return f.render(SuccessStyle, "✓ ") + msg
}

func (f *Formatter) FormatHeader(title string) string {
	return f.render(HeaderStyle, title)
}

// FormatBox wraps content in a styled box
func (f *Formatter) FormatBox(title, content string) string {
	if f.colored {
		return HeaderStyle.Render(title) + "\n" + BoxStyle.Render(content)
	}
	return title + "\n" + content
}

func (f *Formatter) FormatWelcome() string {
	title := "N'Kahoots Beauty Bot"
	subtitle := "Find your skin type, products and routine"
	help := "Type /readme to get started, /help for commands"

	if !f.colored {
		return strings.Join([]string{"", title, subtitle, help, ""}, "\n")
	}

	body := lipgloss.JoinVertical(lipgloss.Left,
		HeaderStyle.Render(title),
		DimStyle.Render(subtitle),
		"",
		AccentStyle.Render(help),
	)
	return "\n" + BoxStyle.Render(body) + "\n"
}

// FormatPrompt returns a styled input prompt
func (f *Formatter) FormatPrompt(current string) string {
	label := "beauty"
	if current != "" {
		label = fmt.Sprintf("beauty[%s]", strings.ToLower(current))
	}
	if f.colored {
		return AccentStyle.Render(label) + SuccessStyle.Render(" > ")
	}
	return label + " > "
}

func (f *Formatter) FormatHelp() string {
	type entry struct{ cmd, desc string }
	sections := []struct {
		title   string
		entries []entry
	}{
		{"Skin types", []entry{
			{"/readme", "How to pick your skin type"},
			{"/types", "List skin types"},
			{"/skin [type]", "Select a skin type and show its products"},
			{"/schedule", "Show the skincare schedule and tips"},
		}},
		{"Reminders", []entry{
			{"/remind", "Set a reminder for the selected skin type"},
			{"/pending", "List reminders waiting to fire"},
			{"/cancel <id>", "Cancel a pending reminder"},
			{"/history", "Show recent reminder activity"},
		}},
		{"General", []entry{
			{"/help", "Show this help"},
			{"/quit", "Exit"},
		}},
	}

	var lines []string
	lines = append(lines, "", f.render(HeaderStyle, "Commands"))
	for _, sec := range sections {
		lines = append(lines, "", f.render(AccentStyle, sec.title))
		for _, e := range sec.entries {
			lines = append(lines, fmt.Sprintf("  %s %s", f.render(SuccessStyle, fmt.Sprintf("%-14s", e.cmd)), e.desc))
		}
	}
	lines = append(lines, "", f.render(DimStyle, "  Ctrl+C or Ctrl+D to exit"), "")

	return strings.Join(lines, "\n")
}
