package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
)

func (r *REPL) readInput() (string, error) {
	if r.rl == nil {
		return "", io.EOF
	}

	line, err := r.rl.Readline()
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(line), nil
}

// readField reads one line with a temporary prompt.
func (r *REPL) readField(prompt string) (string, error) {
	r.mu.Lock()
	if r.rl != nil {
		r.rl.SetPrompt(r.formatter.FormatInfo(prompt))
	}
	r.mu.Unlock()
	defer r.refreshPrompt()

	return r.readInput()
}

func (r *REPL) parseCommand(input string) (bool, string, string) {
	if !strings.HasPrefix(input, "/") {
		return false, "", ""
	}

	parts := strings.SplitN(input, " ", 2)
	command := strings.ToLower(parts[0])

	args := ""
	if len(parts) > 1 {
		args = strings.TrimSpace(parts[1])
	}

	return true, command, args
}

func setupReadline() (*readline.Instance, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:              "beauty > ",
		HistoryFile:         "",
		InterruptPrompt:     "^C",
		EOFPrompt:           "exit",
		HistorySearchFold:   true,
		AutoComplete:        completer,
		FuncFilterInputRune: filterInput,
	})

	return rl, err
}

var completer = readline.NewPrefixCompleter(
	readline.PcItem("/help"),
	readline.PcItem("/readme"),
	readline.PcItem("/types"),
	readline.PcItem("/skin",
		readline.PcItem("Dry"),
		readline.PcItem("Oily"),
		readline.PcItem("Combination"),
		readline.PcItem("Sensitive"),
	),
	readline.PcItem("/schedule"),
	readline.PcItem("/remind"),
	readline.PcItem("/pending"),
	readline.PcItem("/cancel"),
	readline.PcItem("/history"),
	readline.PcItem("/quit"),
)

func filterInput(r rune) (rune, bool) {
	switch r {
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func isEOF(err error) bool {
	return err == io.EOF || err == readline.ErrInterrupt
}
