package forth

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// An op is one step of a word body: code says what kind of step, and val or
// ref carry any operand.
type op struct {
	code opCode
	val  int32 // codePushint
	ref  *body // codeCall
}

type opCode uint8

const (
	codePushint opCode = iota // <INTERNAL>  push val
	codeCall                  // <INTERNAL>  run the ref body

	// Here's a handy summary of all the builtin words:
	codeAdd  // +     a b -- a+b
	codeSub  // -     a b -- a-b
	codeMul  // *     a b -- a*b
	codeDiv  // /     a b -- a/b
	codeDup  // DUP   a -- a a
	codeDrop // DROP  a --
	codeSwap // SWAP  a b -- b a
	codeOver // OVER  a b -- a b a

	codeMax
	codeFirstBuiltin = codeAdd
)

var codeTable [codeMax]func(in *Interpreter) error
var codeNames [codeMax]string

func init() {
	codeTable = [...]func(in *Interpreter) error{
		nil,
		nil,

		(*Interpreter).add,
		(*Interpreter).sub,
		(*Interpreter).mul,
		(*Interpreter).div,
		(*Interpreter).dup,
		(*Interpreter).drop,
		(*Interpreter).swap,
		(*Interpreter).over,
	}

	codeNames = [...]string{
		"pushint",
		"call",

		"+",
		"-",
		"*",
		"/",
		"DUP",
		"DROP",
		"SWAP",
		"OVER",
	}
}

func (o op) String() string {
	switch o.code {
	case codePushint:
		return strconv.FormatInt(int64(o.val), 10)
	case codeCall:
		return o.ref.String()
	default:
		if o.code < codeMax {
			return codeNames[o.code]
		}
		return codeError(o.code).Error()
	}
}

// A body is what a word runs. Bodies are never modified once defined, so
// they're shared freely: compiling a reference to a word just points at its
// current body.
type body struct {
	id   uint   // definition sequence number
	name string // the name the body was defined under
	ops  []op
}

func (b *body) String() string { return b.name + "#" + strconv.FormatUint(uint64(b.id), 10) }

// The dictionary maps canonical word names to their current bodies. Names are
// interned in first-definition order, and each keeps one slot that is
// overwritten by every redefinition.
type dictionary struct {
	names  []string
	slots  map[string]int
	bodies []*body
	nextID uint
}

// canonical upper-cases each rune of name; invalid utf8 bytes pass through
// unchanged, so that names differing only in them stay distinct.
func canonical(name string) string {
	if utf8.ValidString(name) {
		return strings.ToUpper(name)
	}
	var sb strings.Builder
	sb.Grow(len(name))
	for i := 0; i < len(name); {
		r, n := utf8.DecodeRuneInString(name[i:])
		if r == utf8.RuneError && n == 1 {
			sb.WriteByte(name[i])
		} else {
			sb.WriteRune(unicode.ToUpper(r))
		}
		i += n
	}
	return sb.String()
}

func newDictionary() dictionary {
	var dict dictionary
	for code := codeFirstBuiltin; code < codeMax; code++ {
		dict.define(codeNames[code], []op{{code: code}})
	}
	return dict
}

func (dict *dictionary) lookup(name string) (*body, bool) {
	if i, defined := dict.slots[canonical(name)]; defined {
		return dict.bodies[i], true
	}
	return nil, false
}

func (dict *dictionary) define(name string, ops []op) *body {
	name = canonical(name)
	dict.nextID++
	b := &body{id: dict.nextID, name: name, ops: ops}
	if i, defined := dict.slots[name]; defined {
		dict.bodies[i] = b
		return b
	}
	if dict.slots == nil {
		dict.slots = make(map[string]int)
	}
	dict.slots[name] = len(dict.names)
	dict.names = append(dict.names, name)
	dict.bodies = append(dict.bodies, b)
	return b
}

func (dict *dictionary) sortedNames() []string {
	names := append([]string(nil), dict.names...)
	sort.Strings(names)
	return names
}
