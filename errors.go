package forth

import (
	"errors"
	"fmt"
	"strconv"
)

// The four ways an evaluation can fail. Evaluate returns a *TokenError
// wrapping exactly one of these; test for them with errors.Is.
var (
	ErrDivisionByZero = errors.New("division by zero")
	ErrStackUnderflow = errors.New("stack underflow")
	ErrUnknownWord    = errors.New("unknown word")
	ErrInvalidWord    = errors.New("invalid word")
)

// TokenError records where an evaluation stopped.
type TokenError struct {
	// Token is the input field being processed, or empty if the input ended
	// inside a definition.
	Token string

	// Index counts the fields of input before Token.
	Index int

	// Defining names the word whose definition was open, if any.
	Defining string

	Err error
}

func (te *TokenError) Error() string {
	var where string
	if te.Token == "" {
		where = "at end of input"
	} else {
		where = fmt.Sprintf("at token %v %q", te.Index, te.Token)
	}
	if te.Defining != "" {
		where += " while defining " + strconv.Quote(te.Defining)
	}
	return fmt.Sprintf("%v %v", te.Err, where)
}

func (te *TokenError) Unwrap() error { return te.Err }

type codeError uint8
type stateError uint8

func (code codeError) Error() string { return fmt.Sprintf("invalid op code %v", uint8(code)) }
func (st stateError) Error() string { return fmt.Sprintf("invalid evaluation state %v", uint8(st)) }
