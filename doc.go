/* Package forth: almost FORTH, minus almost everything

FORTH is a language mostly familiar to users of "small" machines.  FORTH is an
extendable language-- built-in primitives are indistinguishable from
user-defined _words_.  This package keeps only that last property: a stack of
32-bit integers, eight primitive words, and the ability to name new words in
terms of old ones.

Section 1: The Environment

An Interpreter has two pieces of state, both created by New and kept for the
life of the Interpreter:

The stack is a LIFO of int32 values.  Every primitive pops its operands from
it and pushes its results back.  Arithmetic is native 32-bit, so it wraps.

The dictionary maps (upper case) word names to their bodies.  A body is a
short list of operations: push a literal, run a primitive, or run another
body.  It starts out holding the primitives:

	Symbol   Function
	   +     pop b, pop a, push a+b
	   -     pop b, pop a, push a-b
	   *     pop b, pop a, push a*b
	   /     pop b, pop a, push a/b; fails if b is 0
	  DUP    pop a, push a, push a
	  DROP   pop a
	  SWAP   pop b, pop a, push b, push a
	  OVER   pop b, pop a, push a, push b, push a

Word names are case insensitive: dup, Dup and DUP are the same word.

Section 2: Reading

Input is split on white space.  Any token that reads as a base 10 int32 is a
number, and is pushed.  Any other token is a word, and runs.

The colon starts a definition: the next token names the new word, and every
token up to the closing semicolon becomes its body:

	: square dup * ;
	3 square          ( leaves 9 )

Inside a definition, a word is looked up right away, and the body it has right
now is what gets compiled.  So redefining a word later on leaves earlier users
of it alone, and a word may extend its own prior definition:

	: foo 10 ;
	: foo foo 1 + ;
	foo               ( leaves 11 )

Since bodies are shared rather than copied, a chain of words that each call
the prior one twice takes space linear in its length, even though running the
last one does an exponential amount of work.

Section 3: Failing

Evaluation stops at the first error, and nothing done before it is undone:
values pushed or popped stay that way, words defined stay defined.  See the
Err* variables for the kinds of failure.
*/
package forth
