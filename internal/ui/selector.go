package ui

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// ErrCancelled is returned when the user aborts a menu with Ctrl+C.
var ErrCancelled = errors.New("cancelled")

// MenuItem is one choice in a Menu. Detail, when set, is shown under the
// highlighted item.
type MenuItem struct {
	Label  string
	Detail string
}

// Menu is a single-choice list driven by arrow keys, j/k or digits. Without a
// terminal it falls back to a numbered prompt.
type Menu struct {
	question string
	items    []MenuItem
	cursor   int
	colored  bool
	drawn    int

	cursorStyle   lipgloss.Style
	activeStyle   lipgloss.Style
	itemStyle     lipgloss.Style
	detailStyle   lipgloss.Style
	questionStyle lipgloss.Style
	hintStyle     lipgloss.Style
}

func NewMenu(question string, items []MenuItem, colored bool) *Menu {
	return &Menu{
		question: question,
		items:    items,
		colored:  colored,

		cursorStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		activeStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		itemStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		detailStyle:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true).PaddingLeft(4),
		questionStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("219")).Bold(true),
		hintStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

type menuAction int

const (
	actionNone menuAction = iota
	actionUp
	actionDown
	actionPick
	actionCancel
)

// Run shows the menu and returns the chosen label.
func (m *Menu) Run() (string, error) {
	if len(m.items) == 0 {
		return "", errors.New("menu has no items")
	}

	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return m.runPlain(os.Stdin, os.Stdout)
	}

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return m.runPlain(os.Stdin, os.Stdout)
	}
	defer func() {
		term.Restore(fd, oldState)
		fmt.Print("\033[?25h")
	}()
	fmt.Print("\033[?25l")

	m.draw()

	reader := bufio.NewReader(os.Stdin)
	for {
		action, err := m.readAction(reader)
		if err != nil {
			m.erase()
			return "", err
		}

		switch action {
		case actionUp:
			m.move(-1)
		case actionDown:
			m.move(1)
		case actionPick:
			m.erase()
			return m.items[m.cursor].Label, nil
		case actionCancel:
			m.erase()
			return "", ErrCancelled
		}

		m.erase()
		m.draw()
	}
}

// readAction decodes one keypress. A digit jumps to that item and picks it.
func (m *Menu) readAction(r *bufio.Reader) (menuAction, error) {
	b, err := r.ReadByte()
	if err != nil {
		return actionNone, err
	}

	switch {
	case b == '\r' || b == '\n' || b == ' ':
		return actionPick, nil
	case b == 3:
		return actionCancel, nil
	case b == 'k':
		return actionUp, nil
	case b == 'j':
		return actionDown, nil
	case b == 27:
		if next, _ := r.ReadByte(); next != '[' {
			return actionNone, nil
		}
		switch arrow, _ := r.ReadByte(); arrow {
		case 'A':
			return actionUp, nil
		case 'B':
			return actionDown, nil
		}
	case b >= '1' && b <= '9':
		if idx := int(b - '1'); idx < len(m.items) {
			m.cursor = idx
			return actionPick, nil
		}
	}
	return actionNone, nil
}

func (m *Menu) move(delta int) {
	n := len(m.items)
	m.cursor = ((m.cursor+delta)%n + n) % n
}

func (m *Menu) style(s lipgloss.Style, text string) string {
	if !m.colored {
		return text
	}
	return s.Render(text)
}

// render returns the menu as raw-mode lines.
func (m *Menu) render() []string {
	lines := []string{
		m.style(m.questionStyle, m.question),
		m.style(m.hintStyle, "↑/↓ or j/k to move, enter to choose"),
		"",
	}

	for i, item := range m.items {
		if i != m.cursor {
			lines = append(lines, "  "+m.style(m.itemStyle, item.Label))
			continue
		}
		lines = append(lines, m.style(m.cursorStyle, "> ")+m.style(m.activeStyle, item.Label))
		if item.Detail != "" {
			for _, d := range strings.Split(item.Detail, "\n") {
				lines = append(lines, m.style(m.detailStyle, d))
			}
		}
	}
	return lines
}

func (m *Menu) draw() {
	lines := m.render()
	m.drawn = len(lines)
	fmt.Print(strings.Join(lines, "\r\n") + "\r\n")
	os.Stdout.Sync()
}

func (m *Menu) erase() {
	for i := 0; i < m.drawn; i++ {
		fmt.Print("\033[A\033[2K\r")
	}
	m.drawn = 0
}

func (m *Menu) runPlain(in io.Reader, out io.Writer) (string, error) {
	fmt.Fprintln(out, m.question)
	for i, item := range m.items {
		fmt.Fprintf(out, "  [%d] %s\n", i+1, item.Label)
	}
	fmt.Fprint(out, "Enter number: ")

	input, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && input == "" {
		return "", err
	}
	return m.pick(strings.TrimSpace(input))
}

// pick maps a typed answer, either a number or a label, to an item.
func (m *Menu) pick(input string) (string, error) {
	if idx, err := strconv.Atoi(input); err == nil && idx >= 1 && idx <= len(m.items) {
		return m.items[idx-1].Label, nil
	}
	for _, item := range m.items {
		if strings.EqualFold(item.Label, input) {
			return item.Label, nil
		}
	}
	return "", fmt.Errorf("invalid choice: %q", input)
}

// Choose runs a menu over plain labels.
func Choose(question string, labels []string, colored bool) (string, error) {
	items := make([]MenuItem, len(labels))
	for i, l := range labels {
		items[i] = MenuItem{Label: l}
	}
	return NewMenu(question, items, colored).Run()
}

// Confirm asks a yes/no question. Any error counts as "no".
func Confirm(question string, colored bool) bool {
	answer, err := Choose(question, []string{"Yes", "No"}, colored)
	return err == nil && answer == "Yes"
}
