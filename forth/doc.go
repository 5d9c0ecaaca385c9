/* Package forth implements a small Forth-like interpreter over 32-bit
signed integers.

Programs are whitespace-separated tokens. Integer literals are pushed onto
the stack; the binary operators + - * / pop two values and push the result
(the deeper value is the left operand, so "2 3 -" leaves -1); the stack
words DUP DROP SWAP and OVER shuffle the top of the stack. Words are case
insensitive.

New words are defined with ": NAME body ;". A definition is expanded when it
is declared: every word used in its body is replaced by that word's meaning
at the time, so redefining a word later only changes future uses; this
program leaves 5 6 on the stack:

	: FOO 5 ;
	: BAR FOO ;
	: FOO 6 ;
	BAR FOO

An evaluation either succeeds as a whole, replacing the stack, or fails with
one of the ErrorKind values and leaves the stack as it was. Definitions made
by earlier segments of a failed evaluation are kept.

An Interp is not safe for concurrent use; run one per goroutine.
*/
package forth
