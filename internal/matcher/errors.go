package matcher

import "fmt"

// InputError indicates empty or unusable input text. The engine itself
// scores empty text as zero; request-handling boundaries use this error to
// reject blank input before an analysis is run and stored.
type InputError struct {
	Field string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s text is empty", e.Field)
}
