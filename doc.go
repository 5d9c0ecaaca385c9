/* Command wordforth runs programs for the small Forth-like language of
package forth.

Given files, it evaluates each one in its own interpreter, up to -j at a
time, and prints the stack each leaves:

	wordforth -j 4 a.fs b.fs

Given -e, it evaluates that text and prints the stack. Otherwise it reads
standard input: interactively through a line editor when stdin is a
terminal, or line by line when it is not. A definition may span several
lines; input is gathered until its closing ";".

With -db, the interactive and standard input modes keep their words and
stack in a SQLite database, restoring them on the next run.

Settings may also come from a YAML file given by -config:

	trace: false
	strict: true
	db: session.db
	history: .wordforth_history
	jobs: 4
	timeout: 30s
	prelude:
	  - lib/math.fs

Prelude files are evaluated before anything else, in every interpreter.
Flags given on the command line override the file.
*/
package main
