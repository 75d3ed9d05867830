package forth

import (
	"strconv"
	"strings"
)

const (
	defineMarker = ":"
	endMarker    = ";"
)

// A token is one white space delimited field of input, classified as either a
// number or a (canonically named) word.
type token struct {
	text  string
	word  string
	val   int32
	isNum bool
}

func tokenize(text string) []string { return strings.Fields(text) }

func classify(text string) token {
	if n, err := strconv.ParseInt(text, 10, 32); err == nil {
		return token{text: text, val: int32(n), isNum: true}
	}
	return token{text: text, word: canonical(text)}
}

func (tok token) isMarker() bool {
	return tok.word == defineMarker || tok.word == endMarker
}

func (tok token) String() string {
	if tok.isNum {
		return strconv.FormatInt(int64(tok.val), 10)
	}
	return tok.word
}
