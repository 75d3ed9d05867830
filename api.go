package forth

import "io"

// Interpreter holds a stack and a dictionary of words, both of which persist
// across calls to Evaluate. An Interpreter is not safe for concurrent use;
// callers that share one must serialize access to it themselves.
type Interpreter struct {
	logging
	stack []int32
	dict  dictionary
}

// New creates an Interpreter with an empty stack and the builtin words
// defined.
func New(opts ...Option) *Interpreter {
	in := &Interpreter{dict: newDictionary()}
	if opt := Options(opts...); opt != nil {
		opt.apply(in)
	}
	return in
}

// Evaluate reads and runs every token of text. It stops at the first error,
// returning a *TokenError; anything done before that stays done.
func (in *Interpreter) Evaluate(text string) error {
	return in.evaluate(tokenize(text))
}

// Stack returns a copy of the current stack, bottom first.
func (in *Interpreter) Stack() []int32 {
	return append([]int32{}, in.stack...)
}

// Words returns the sorted names of every defined word, builtins included.
func (in *Interpreter) Words() []string {
	return in.dict.sortedNames()
}

// Dump writes a description of the stack and of every word's current body
// to w.
func (in *Interpreter) Dump(w io.Writer) error {
	return (&dumper{in: in, out: w}).dump()
}
