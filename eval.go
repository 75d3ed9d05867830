package forth

// evalState tracks where evaluation is with respect to a definition.
type evalState uint8

const (
	// stateIdle runs words and pushes numbers as they're read.
	stateIdle evalState = iota

	// stateAwaitingName has just read a ":" and wants the new word's name.
	stateAwaitingName

	// stateCapturing compiles tokens into a body until ";" is read.
	stateCapturing
)

var stateNames = [...]string{"idle", "name", "compile"}

func (st evalState) String() string {
	if int(st) < len(stateNames) {
		return stateNames[st]
	}
	return stateError(st).Error()
}

// evaluation is the state of one Evaluate call: any definition being captured
// belongs to it, and is dropped with it.
type evaluation struct {
	*Interpreter

	state evalState
	name  string
	buf   []op
}

func (in *Interpreter) evaluate(fields []string) error {
	ev := evaluation{Interpreter: in}
	for i, field := range fields {
		tok := classify(field)
		if in.logfn != nil {
			in.logf(">", "%v %v s:%v", ev.state, tok, in.stack)
		}
		if err := ev.step(tok); err != nil {
			return in.fail(&TokenError{
				Token:    field,
				Index:    i,
				Defining: ev.name,
				Err:      err,
			})
		}
	}
	if ev.state != stateIdle {
		return in.fail(&TokenError{
			Index:    len(fields),
			Defining: ev.name,
			Err:      ErrInvalidWord,
		})
	}
	return nil
}

func (in *Interpreter) fail(err error) error {
	in.logf("!", "%v", err)
	return err
}

func (ev *evaluation) step(tok token) error {
	switch ev.state {

	case stateIdle:
		switch {
		case tok.isNum:
			ev.push(tok.val)
		case tok.word == defineMarker:
			ev.state = stateAwaitingName
		case tok.word == endMarker:
			return ErrInvalidWord
		default:
			b, defined := ev.dict.lookup(tok.word)
			if !defined {
				return ErrUnknownWord
			}
			return ev.run(b)
		}

	case stateAwaitingName:
		if tok.isNum || tok.isMarker() {
			return ErrInvalidWord
		}
		ev.name, ev.buf = tok.word, nil
		ev.state = stateCapturing

	case stateCapturing:
		switch {
		case tok.isNum:
			ev.buf = append(ev.buf, op{code: codePushint, val: tok.val})
		case tok.word == endMarker:
			if len(ev.buf) == 0 {
				return ErrInvalidWord
			}
			b := ev.dict.define(ev.name, ev.buf)
			ev.logf(":", "%v %v", b, b.ops)
			ev.state, ev.name, ev.buf = stateIdle, "", nil
		case tok.word == defineMarker:
			return ErrInvalidWord
		default:
			b, defined := ev.dict.lookup(tok.word)
			if !defined {
				return ErrUnknownWord
			}
			ev.buf = append(ev.buf, op{code: codeCall, ref: b})
		}

	default:
		return stateError(ev.state)
	}
	return nil
}

// run executes each op of a body in order, stopping at the first error.
func (in *Interpreter) run(b *body) error {
	if in.logfn != nil {
		in.logf("+", "run %v", b)
		defer in.withLogPrefix("  ")()
	}
	for _, o := range b.ops {
		if err := in.exec(o); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) exec(o op) error {
	if in.logfn != nil {
		in.logf("+", "exec %v -- s:%v", o, in.stack)
	}
	switch o.code {
	case codePushint:
		in.push(o.val)
		return nil
	case codeCall:
		return in.run(o.ref)
	default:
		if o.code < codeMax {
			return codeTable[o.code](in)
		}
		return codeError(o.code)
	}
}
