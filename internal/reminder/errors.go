package reminder

import "fmt"

// FormatError reports user input that does not match the expected shape.
type FormatError struct {
	Kind  error  // ErrInvalidDate, ErrInvalidTime or ErrInvalidMeridiem
	Input string
	Hint  string
}

func (e *FormatError) Error() string {
	if e.Hint == "" {
		return fmt.Sprintf("%v: %q", e.Kind, e.Input)
	}
	return fmt.Sprintf("%v: %q (please enter it in the format %s)", e.Kind, e.Input, e.Hint)
}

func (e *FormatError) Unwrap() error {
	return e.Kind
}
