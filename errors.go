package morphology

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine is returned when a form line lacks the
	// WORD<TAB>TAGS structure. Index building stops at the first one.
	ErrMalformedLine = errors.New("malformed dictionary line")

	// ErrUngroupedForm is returned when a form line appears before any
	// group marker and WithUngroupedSingletons was not given.
	ErrUngroupedForm = errors.New("form line before any group marker")

	// ErrMalformedToken is returned for sentence tokens whose braces do not
	// form a single trailing {SPEC} block.
	ErrMalformedToken = errors.New("malformed token")
)

// LineError locates a dictionary error in the source.
type LineError struct {
	// Line is the 1-based line number in the dictionary source.
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// TokenError reports a sentence token that could not be parsed.
type TokenError struct {
	// Index is the 0-based position of the token in the sentence.
	Index int
	Token string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("token %d: %v: %q", e.Index, ErrMalformedToken, e.Token)
}

func (e *TokenError) Unwrap() error {
	return ErrMalformedToken
}
