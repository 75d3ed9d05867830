package forth

//// Stack primitives

func (in *Interpreter) push(vals ...int32) {
	in.stack = append(in.stack, vals...)
}

func (in *Interpreter) pop() (val int32, err error) {
	i := len(in.stack) - 1
	if i < 0 {
		return 0, ErrStackUnderflow
	}
	val, in.stack = in.stack[i], in.stack[:i]
	return val, nil
}

// pop2 pops b then a; b is gone even if a is missing.
func (in *Interpreter) pop2() (a, b int32, err error) {
	if b, err = in.pop(); err == nil {
		a, err = in.pop()
	}
	return a, b, err
}

//// Integer Operations

// Symbol   Name           Function
//    +     plus           pop top 2 elements of stack, add, push
func (in *Interpreter) add() error {
	a, b, err := in.pop2()
	if err == nil {
		in.push(a + b)
	}
	return err
}

// Symbol   Name           Function
//    -     binary minus   pop top 2 elements of stack, subtract, push
func (in *Interpreter) sub() error {
	a, b, err := in.pop2()
	if err == nil {
		in.push(a - b)
	}
	return err
}

// Symbol   Name           Function
//    *     multiply       pop top 2 elements of stack, multiply, push
func (in *Interpreter) mul() error {
	a, b, err := in.pop2()
	if err == nil {
		in.push(a * b)
	}
	return err
}

// Symbol   Name           Function
//    /     divide         pop top 2 elements of stack, divide, push;
//                         both are consumed even when dividing by zero
func (in *Interpreter) div() error {
	a, b, err := in.pop2()
	if err == nil {
		if b == 0 {
			return ErrDivisionByZero
		}
		in.push(a / b)
	}
	return err
}

//// Stack Operations

// Name   Function
// DUP    copy the top of the stack
func (in *Interpreter) dup() error {
	a, err := in.pop()
	if err == nil {
		in.push(a, a)
	}
	return err
}

// Name   Function
// DROP   throw away the top of the stack
func (in *Interpreter) drop() error {
	_, err := in.pop()
	return err
}

// Name   Function
// SWAP   exchange the top two elements of the stack
func (in *Interpreter) swap() error {
	a, b, err := in.pop2()
	if err == nil {
		in.push(b, a)
	}
	return err
}

// Name   Function
// OVER   copy the second element of the stack over the top one
func (in *Interpreter) over() error {
	a, b, err := in.pop2()
	if err == nil {
		in.push(a, b, a)
	}
	return err
}
