package repl

import (
	"fmt"
	"os"
)

func (r *REPL) displayError(err error) {
	fmt.Println(r.formatter.FormatError(err))
	fmt.Println()
}

func (r *REPL) displayWelcome() {
	fmt.Print(r.formatter.FormatWelcome())
}

func (r *REPL) displayHelp() {
	fmt.Print(r.formatter.FormatHelp())
}

func (r *REPL) displayInfo(msg string) {
	fmt.Println(r.formatter.FormatInfo(msg))
	fmt.Println()
}

func (r *REPL) displaySystem(msg string) {
	fmt.Println(r.formatter.FormatSystem(msg))
	fmt.Println()
}

func (r *REPL) displaySuccess(msg string) {
	fmt.Println(r.formatter.FormatSuccess(msg))
	fmt.Println()
}

func (r *REPL) displayMarkdown(md string) {
	fmt.Println()
	fmt.Println(r.renderer.Render(md))
	fmt.Println()
	os.Stdout.Sync()
}
